package store

import (
	"database/sql"
	"fmt"
)

// createSchema creates the four source tables. The database is created fresh
// in memory on every startup, so there is no migration story.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Country metadata (World Bank lookup table)
CREATE TABLE country_metadata (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    region TEXT NOT NULL DEFAULT '',
    income_group TEXT NOT NULL DEFAULT ''
);

-- Total population, long form
CREATE TABLE population (
    code TEXT NOT NULL,
    year INTEGER NOT NULL,
    total_pop REAL NOT NULL CHECK (total_pop > 0),
    PRIMARY KEY (code, year)
);

-- Estimated paralytic polio cases per entity-year
CREATE TABLE polio_cases (
    country TEXT NOT NULL,
    code TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL,
    num_cases REAL NOT NULL CHECK (num_cases >= 0),
    PRIMARY KEY (country, year)
);

CREATE INDEX idx_polio_cases_code ON polio_cases(code);

-- Pol3 immunization rate per country-year
CREATE TABLE vaccination (
    country TEXT NOT NULL,
    year INTEGER NOT NULL,
    pol3 REAL NOT NULL CHECK (pol3 >= 0 AND pol3 <= 100),
    PRIMARY KEY (country, year)
);
`
