package store

import (
	"fmt"
	"math"
	"sort"
)

// IncomePoint is one (income group, year) aggregate for the stacked area
// chart. CasesPerMillion is population-weighted: total cases over total
// population across the group's countries, per million.
type IncomePoint struct {
	IncomeGroup     string
	Year            int
	TotalCases      float64
	TotalPop        float64
	CasesPerMillion float64
}

// CountryPeriod is one (country, 3-year period) aggregate for the map view.
type CountryPeriod struct {
	Country         string
	Code            string
	PeriodStart     int
	PeriodLabel     string
	IncomeGroup     string
	Pol3Rate        float64
	CasesPerMillion float64
	TotalPop        float64
	Category        string
	BubbleSize      float64
}

const incomeSeriesQuery = `
SELECT m.income_group,
       c.year,
       SUM(c.num_cases)  AS total_cases,
       SUM(p.total_pop)  AS total_pop
FROM polio_cases c
JOIN country_metadata m ON m.code = c.code
JOIN population p ON p.code = c.code AND p.year = c.year
WHERE m.income_group <> '' AND length(c.code) = 3
GROUP BY m.income_group, c.year
ORDER BY m.income_group, c.year`

// IncomeSeries derives the stacked-area table. Income groups are ordered by
// their overall mean rate, largest first, so the heaviest band sits at the
// bottom of the stack; within a group rows are ordered by year.
func (s *Store) IncomeSeries() ([]IncomePoint, error) {
	rows, err := s.db.Query(incomeSeriesQuery)
	if err != nil {
		return nil, fmt.Errorf("income series query: %w", err)
	}
	defer rows.Close()

	var points []IncomePoint
	for rows.Next() {
		var p IncomePoint
		if err := rows.Scan(&p.IncomeGroup, &p.Year, &p.TotalCases, &p.TotalPop); err != nil {
			return nil, fmt.Errorf("income series scan: %w", err)
		}
		p.CasesPerMillion = p.TotalCases / p.TotalPop * 1e6
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("income series rows: %w", err)
	}

	// Rank groups by overall mean, keeping per-group year order.
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, p := range points {
		sums[p.IncomeGroup] += p.CasesPerMillion
		counts[p.IncomeGroup]++
	}
	mean := func(g string) float64 { return sums[g] / float64(counts[g]) }
	sort.SliceStable(points, func(i, j int) bool {
		gi, gj := points[i].IncomeGroup, points[j].IncomeGroup
		if gi != gj {
			if mean(gi) != mean(gj) {
				return mean(gi) > mean(gj)
			}
			return gi < gj
		}
		return points[i].Year < points[j].Year
	})

	return points, nil
}

const countryPeriodsQuery = `
WITH observed AS (
    SELECT c.country,
           c.code,
           c.year,
           c.num_cases / p.total_pop * 1000000.0 AS per_million,
           p.total_pop AS total_pop,
           COALESCE(m.income_group, '') AS income_group,
           COALESCE(v.pol3,
                    (SELECT AVG(v2.pol3) FROM vaccination v2 WHERE v2.country = c.country)) AS pol3
    FROM polio_cases c
    JOIN population p ON p.code = c.code AND p.year = c.year
    LEFT JOIN country_metadata m ON m.code = c.code
    LEFT JOIN vaccination v ON v.country = c.country AND v.year = c.year
    WHERE length(c.code) = 3
)
SELECT country,
       code,
       1980 + ((year - 1980) / 3) * 3 AS period_start,
       income_group,
       AVG(pol3)       AS pol3,
       AVG(per_million) AS per_million,
       AVG(total_pop)  AS total_pop
FROM observed
WHERE pol3 IS NOT NULL
GROUP BY country, code, period_start, income_group
ORDER BY period_start, country, code`

// CountryPeriods derives the map table: per-country averages over 3-year
// periods starting at 1980, with Pol3 gaps back-filled by the country mean.
// Countries with no Pol3 data at all are dropped, matching the source
// dashboard's behavior.
func (s *Store) CountryPeriods() ([]CountryPeriod, error) {
	rows, err := s.db.Query(countryPeriodsQuery)
	if err != nil {
		return nil, fmt.Errorf("country periods query: %w", err)
	}
	defer rows.Close()

	var out []CountryPeriod
	for rows.Next() {
		var cp CountryPeriod
		if err := rows.Scan(&cp.Country, &cp.Code, &cp.PeriodStart, &cp.IncomeGroup,
			&cp.Pol3Rate, &cp.CasesPerMillion, &cp.TotalPop); err != nil {
			return nil, fmt.Errorf("country periods scan: %w", err)
		}
		cp.PeriodLabel = periodLabel(cp.PeriodStart)
		cp.Category = CoverageCategory(cp.Pol3Rate)
		cp.BubbleSize = bubbleSize(cp.CasesPerMillion)
		out = append(out, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("country periods rows: %w", err)
	}

	return out, nil
}

// Periods returns the distinct period labels in chronological order.
func Periods(rows []CountryPeriod) []string {
	seen := map[string]bool{}
	var labels []string
	for _, cp := range rows {
		if !seen[cp.PeriodLabel] {
			seen[cp.PeriodLabel] = true
			labels = append(labels, cp.PeriodLabel)
		}
	}
	sort.Strings(labels)
	return labels
}

func periodLabel(start int) string {
	return fmt.Sprintf("%d-%d", start, start+2)
}

// CoverageCategory buckets a Pol3 rate into the five display categories.
func CoverageCategory(rate float64) string {
	switch {
	case rate >= 95:
		return "Very high (>=95%)"
	case rate >= 85:
		return "High (85-94%)"
	case rate >= 70:
		return "Medium (70-84%)"
	case rate >= 50:
		return "Low (50-69%)"
	default:
		return "Very low (<50%)"
	}
}

// bubbleSize maps cases per million to a marker size: sqrt scaling, clamped
// to [3, 40], with a floor of 3 for zero-case periods.
func bubbleSize(perMillion float64) float64 {
	if perMillion <= 0 {
		return 3
	}
	size := math.Sqrt(perMillion)*8 + 5
	if size < 3 {
		size = 3
	}
	if size > 40 {
		size = 40
	}
	return size
}
