package dataset

import (
	"fmt"
	"path/filepath"
)

// File names under the data directory. Paths are fixed; no user input reaches
// the loader.
const (
	MetadataFile   = "country_metadata.csv"
	PopulationFile = "total_population.csv"
	CasesFile      = "number-of-estimated-paralytic-polio-cases-by-world-region.csv"
	CoverageFile   = "global-vaccination-coverage.csv"
)

// Load reads all four source files from dir. Any missing or malformed file is
// an error; callers treat that as startup-fatal. There is no partial result.
func Load(dir string) (*Tables, error) {
	metadata, err := ParseMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MetadataFile, err)
	}

	population, err := ParsePopulation(filepath.Join(dir, PopulationFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PopulationFile, err)
	}

	cases, err := ParseCases(filepath.Join(dir, CasesFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CasesFile, err)
	}

	coverage, err := ParseCoverage(filepath.Join(dir, CoverageFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CoverageFile, err)
	}

	t := &Tables{
		Metadata:   metadata,
		Population: population,
		Cases:      cases,
		Coverage:   coverage,
	}

	for name, n := range map[string]int{
		MetadataFile:   len(t.Metadata),
		PopulationFile: len(t.Population),
		CasesFile:      len(t.Cases),
		CoverageFile:   len(t.Coverage),
	} {
		if n == 0 {
			return nil, fmt.Errorf("%s: no usable rows", name)
		}
	}

	return t, nil
}
