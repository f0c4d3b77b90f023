package dataset

// CountryMeta is one row of the World Bank country metadata file.
type CountryMeta struct {
	Code        string
	Name        string
	Region      string
	IncomeGroup string
}

// PopulationRow is one (country, year) observation after melting the wide
// World Bank population file into long form.
type PopulationRow struct {
	Code     string
	Year     int
	TotalPop float64
}

// CaseRow is one (entity, year) estimate of paralytic polio cases. Code is
// empty for aggregate entities (regions, income groups) that carry no ISO code.
type CaseRow struct {
	Country  string
	Code     string
	Year     int
	NumCases float64
}

// CoverageRow is one (country, year) Pol3 immunization rate, in percent of
// one-year-olds.
type CoverageRow struct {
	Country string
	Year    int
	Pol3    float64
}

// Tables holds the four source tables exactly as parsed. Nothing mutates a
// Tables value after Load returns it.
type Tables struct {
	Metadata   []CountryMeta
	Population []PopulationRow
	Cases      []CaseRow
	Coverage   []CoverageRow
}
