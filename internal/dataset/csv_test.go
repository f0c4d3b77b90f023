package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestParseMetadata_Valid(t *testing.T) {
	rows, err := ParseMetadata(filepath.Join("testdata", MetadataFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Code != "AAA" || first.Name != "Aland" || first.IncomeGroup != "Low income" {
		t.Errorf("unexpected first row: %+v", first)
	}

	// The aggregate entity keeps its row, with no income group.
	last := rows[3]
	if last.Code != "OWID_WRL" || last.IncomeGroup != "" {
		t.Errorf("unexpected aggregate row: %+v", last)
	}
}

func TestParseMetadata_MissingColumn(t *testing.T) {
	path := writeFile(t, "meta.csv", "Country Code,Region\nAAA,Testland\n")
	_, err := ParseMetadata(path)
	if err == nil || !strings.Contains(err.Error(), "missing required column") {
		t.Fatalf("expected missing-column error, got %v", err)
	}
}

func TestParseMetadata_DuplicateCode(t *testing.T) {
	path := writeFile(t, "meta.csv",
		"Country Code,Region,IncomeGroup,TableName\nAAA,R,Low income,Aland\nAAA,R,Low income,Aland\n")
	_, err := ParseMetadata(path)
	if err == nil || !strings.Contains(err.Error(), "duplicate country code") {
		t.Fatalf("expected duplicate-code error, got %v", err)
	}
}

func TestParseMetadata_BOMHeader(t *testing.T) {
	path := writeFile(t, "meta.csv",
		"\uFEFFCountry Code,Region,IncomeGroup,TableName\nAAA,R,Low income,Aland\n")
	rows, err := ParseMetadata(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Code != "AAA" {
		t.Errorf("BOM header not handled: %+v", rows)
	}
}

func TestParsePopulation_Melt(t *testing.T) {
	rows, err := ParsePopulation(filepath.Join("testdata", PopulationFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 countries x 6 years
	if len(rows) != 18 {
		t.Fatalf("expected 18 rows, got %d", len(rows))
	}

	if rows[0].Code != "AAA" || rows[0].Year != 1980 || rows[0].TotalPop != 1000000 {
		t.Errorf("unexpected first melted row: %+v", rows[0])
	}
	// Years come back in ascending column order for each country.
	if rows[5].Year != 1985 {
		t.Errorf("expected year 1985 at index 5, got %d", rows[5].Year)
	}
}

func TestParsePopulation_SkipsEmptyCells(t *testing.T) {
	path := writeFile(t, "pop.csv",
		"Country Name,Country Code,1980,1981\nAland,AAA,1000,\n")
	rows, err := ParsePopulation(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Year != 1980 {
		t.Errorf("expected only the 1980 observation, got %+v", rows)
	}
}

func TestParsePopulation_BadValue(t *testing.T) {
	path := writeFile(t, "pop.csv",
		"Country Name,Country Code,1980\nAland,AAA,abc\n")
	_, err := ParsePopulation(path)
	if err == nil || !strings.Contains(err.Error(), "bad population") {
		t.Fatalf("expected bad-population error, got %v", err)
	}
}

func TestParsePopulation_NoYearColumns(t *testing.T) {
	path := writeFile(t, "pop.csv",
		"Country Name,Country Code\nAland,AAA\n")
	_, err := ParsePopulation(path)
	if err == nil || !strings.Contains(err.Error(), "no year columns") {
		t.Fatalf("expected no-year-columns error, got %v", err)
	}
}

func TestParseCases_Valid(t *testing.T) {
	rows, err := ParseCases(filepath.Join("testdata", CasesFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 countries x 6 years + 6 World rows
	if len(rows) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(rows))
	}

	var world int
	for _, r := range rows {
		if r.Country == "World" {
			world++
			if r.Code != "OWID_WRL" {
				t.Errorf("World row with unexpected code %q", r.Code)
			}
		}
	}
	if world != 6 {
		t.Errorf("expected 6 World rows, got %d", world)
	}
}

func TestParseCases_BadYear(t *testing.T) {
	path := writeFile(t, "cases.csv",
		"Entity,Code,Year,\""+colCases+"\"\nAland,AAA,notayear,10\n")
	_, err := ParseCases(path)
	if err == nil || !strings.Contains(err.Error(), "bad year") {
		t.Fatalf("expected bad-year error, got %v", err)
	}
}

func TestParseCoverage_SkipsBlankPol3(t *testing.T) {
	rows, err := ParseCoverage(filepath.Join("testdata", CoverageFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Fixture has 15 filled Pol3 cells; the blank Cland 1982 row drops out.
	if len(rows) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Country == "Cland" && r.Year == 1982 {
			t.Errorf("blank Pol3 row should have been skipped: %+v", r)
		}
	}
}

func TestParseCoverage_IgnoresOtherVaccines(t *testing.T) {
	path := writeFile(t, "cov.csv",
		"Entity,Code,Year,BCG (% of one-year-olds immunized),Pol3 (% of one-year-olds immunized)\nAland,AAA,1980,50,75.5\n")
	rows, err := ParseCoverage(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Pol3 != 75.5 {
		t.Errorf("expected the Pol3 column only, got %+v", rows)
	}
}

func TestReadTable_NoDataRows(t *testing.T) {
	path := writeFile(t, "empty.csv", "Entity,Code,Year\n")
	_, _, err := readTable(path, "Entity")
	if err == nil || !strings.Contains(err.Error(), "no data rows") {
		t.Fatalf("expected no-data-rows error, got %v", err)
	}
}
