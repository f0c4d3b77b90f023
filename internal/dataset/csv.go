package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Column headers the four source files must carry. Lookup is by name, not
// position, so extra columns (other vaccines, special notes) are ignored.
const (
	colCountryCode = "Country Code"
	colCountryName = "Country Name"
	colRegion      = "Region"
	colIncomeGroup = "IncomeGroup"
	colTableName   = "TableName"
	colEntity      = "Entity"
	colCode        = "Code"
	colYear        = "Year"
	colPol3        = "Pol3 (% of one-year-olds immunized)"
	colCases       = "Estimated number of paralytic polio cases using reported number of cases after polio free certification (WHO, 2018 and Tebbens et al., 2011)"
)

// header maps trimmed column names to their index, tolerating a UTF-8 BOM on
// the first cell.
type header map[string]int

func readTable(path string, required ...string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, errors.New("csv has no data rows")
	}

	head := records[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\uFEFF")
	}

	col := header{}
	for i, h := range head {
		col[strings.TrimSpace(h)] = i
	}
	for _, k := range required {
		if _, ok := col[k]; !ok {
			return nil, nil, fmt.Errorf("missing required column: %s", k)
		}
	}

	return col, records, nil
}

func (h header) get(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ParseMetadata reads the World Bank country metadata lookup table. Aggregate
// rows (no income group) are kept with an empty IncomeGroup so joins can still
// resolve their region.
func ParseMetadata(path string) ([]CountryMeta, error) {
	col, records, err := readTable(path, colCountryCode, colRegion, colIncomeGroup, colTableName)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []CountryMeta

	for i := 1; i < len(records); i++ {
		rec := records[i]
		code := col.get(rec, colCountryCode)
		if code == "" {
			return nil, fmt.Errorf("row %d: %s is required", i+1, colCountryCode)
		}
		if seen[code] {
			return nil, fmt.Errorf("row %d: duplicate country code %q", i+1, code)
		}
		seen[code] = true

		out = append(out, CountryMeta{
			Code:        code,
			Name:        col.get(rec, colTableName),
			Region:      col.get(rec, colRegion),
			IncomeGroup: col.get(rec, colIncomeGroup),
		})
	}

	return out, nil
}

// ParsePopulation reads the wide World Bank population file and melts it into
// long (code, year, total_pop) form. Year columns are recognized by their
// all-digit headers; empty cells are skipped, anything else must parse.
func ParsePopulation(path string) ([]PopulationRow, error) {
	col, records, err := readTable(path, colCountryName, colCountryCode)
	if err != nil {
		return nil, err
	}

	type yearCol struct {
		year int
		idx  int
	}
	var years []yearCol
	for name, idx := range col {
		if y, err := strconv.Atoi(name); err == nil {
			years = append(years, yearCol{year: y, idx: idx})
		}
	}
	if len(years) == 0 {
		return nil, errors.New("no year columns found")
	}
	sort.Slice(years, func(i, j int) bool { return years[i].year < years[j].year })

	var out []PopulationRow
	for i := 1; i < len(records); i++ {
		rec := records[i]
		code := col.get(rec, colCountryCode)
		if code == "" {
			return nil, fmt.Errorf("row %d: %s is required", i+1, colCountryCode)
		}
		for _, yc := range years {
			if yc.idx >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[yc.idx])
			if cell == "" {
				continue
			}
			pop, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad population for %s in %d: %q", i+1, code, yc.year, cell)
			}
			out = append(out, PopulationRow{Code: code, Year: yc.year, TotalPop: pop})
		}
	}

	return out, nil
}

// ParseCases reads the OWID paralytic polio case estimates. Entity may be a
// country, a region, an income group, or "World"; only countries carry a
// three-letter code, and downstream shaping filters on that.
func ParseCases(path string) ([]CaseRow, error) {
	col, records, err := readTable(path, colEntity, colCode, colYear, colCases)
	if err != nil {
		return nil, err
	}

	var out []CaseRow
	for i := 1; i < len(records); i++ {
		rec := records[i]
		entity := col.get(rec, colEntity)
		if entity == "" {
			return nil, fmt.Errorf("row %d: %s is required", i+1, colEntity)
		}
		year, err := strconv.Atoi(col.get(rec, colYear))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q", i+1, col.get(rec, colYear))
		}
		cell := col.get(rec, colCases)
		if cell == "" {
			continue
		}
		cases, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad case count %q", i+1, cell)
		}
		out = append(out, CaseRow{
			Country:  entity,
			Code:     col.get(rec, colCode),
			Year:     year,
			NumCases: cases,
		})
	}

	return out, nil
}

// ParseCoverage reads the OWID global vaccination coverage file, keeping only
// the Pol3 column. Rows with an empty Pol3 cell are dropped here; the store
// back-fills gaps with country means during shaping.
func ParseCoverage(path string) ([]CoverageRow, error) {
	col, records, err := readTable(path, colEntity, colYear, colPol3)
	if err != nil {
		return nil, err
	}

	var out []CoverageRow
	for i := 1; i < len(records); i++ {
		rec := records[i]
		entity := col.get(rec, colEntity)
		if entity == "" {
			return nil, fmt.Errorf("row %d: %s is required", i+1, colEntity)
		}
		year, err := strconv.Atoi(col.get(rec, colYear))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q", i+1, col.get(rec, colYear))
		}
		cell := col.get(rec, colPol3)
		if cell == "" {
			continue
		}
		pol3, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad Pol3 rate %q", i+1, cell)
		}
		out = append(out, CoverageRow{Country: entity, Year: year, Pol3: pol3})
	}

	return out, nil
}
