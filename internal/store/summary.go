package store

import "fmt"

// Summary holds the headline figures shown above the charts.
type Summary struct {
	FirstYear    int
	LastYear     int
	TotalCases   float64
	PeakYear     int
	PeakCases    float64
	CountryCount int
}

const summaryQuery = `
SELECT MIN(year), MAX(year), SUM(num_cases), COUNT(DISTINCT code)
FROM polio_cases
WHERE length(code) = 3`

const peakYearQuery = `
SELECT year, SUM(num_cases) AS total
FROM polio_cases
WHERE length(code) = 3
GROUP BY year
ORDER BY total DESC, year ASC
LIMIT 1`

// Summarize computes the headline figures over the country-level case rows.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(summaryQuery).Scan(&sum.FirstYear, &sum.LastYear, &sum.TotalCases, &sum.CountryCount)
	if err != nil {
		return Summary{}, fmt.Errorf("summary query: %w", err)
	}

	err = s.db.QueryRow(peakYearQuery).Scan(&sum.PeakYear, &sum.PeakCases)
	if err != nil {
		return Summary{}, fmt.Errorf("peak year query: %w", err)
	}

	return sum, nil
}

const missingMetadataQuery = `
SELECT DISTINCT p.code
FROM population p
LEFT JOIN country_metadata m ON m.code = p.code
WHERE m.code IS NULL
ORDER BY p.code`

// MissingMetadataCodes returns population country codes that have no metadata
// row. A non-empty result means the income-group joins would silently drop
// data, so main logs it loudly at startup.
func (s *Store) MissingMetadataCodes() ([]string, error) {
	rows, err := s.db.Query(missingMetadataQuery)
	if err != nil {
		return nil, fmt.Errorf("missing metadata query: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
