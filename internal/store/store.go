package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/healthviz/polio-dashboard/internal/dataset"
)

// Store holds the source tables in an in-memory SQLite database and derives
// the chart-ready tables from them. It is populated once at startup and
// read-only afterwards.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and loads the parsed tables into it.
func Open(t *dataset.Tables) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each pool connection would get its own empty in-memory database, so
	// the pool is pinned to a single connection.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := insertAll(db, t); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database. The process normally holds the store for its
// whole lifetime, so this mostly serves tests.
func (s *Store) Close() error {
	return s.db.Close()
}

func insertAll(db *sql.DB, t *dataset.Tables) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin load: %w", err)
	}
	defer tx.Rollback()

	meta, err := tx.Prepare(`INSERT INTO country_metadata (code, name, region, income_group) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer meta.Close()
	for _, m := range t.Metadata {
		if _, err := meta.Exec(m.Code, m.Name, m.Region, m.IncomeGroup); err != nil {
			return fmt.Errorf("metadata %s: %w", m.Code, err)
		}
	}

	pop, err := tx.Prepare(`INSERT INTO population (code, year, total_pop) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer pop.Close()
	for _, p := range t.Population {
		if _, err := pop.Exec(p.Code, p.Year, p.TotalPop); err != nil {
			return fmt.Errorf("population %s/%d: %w", p.Code, p.Year, err)
		}
	}

	cases, err := tx.Prepare(`INSERT INTO polio_cases (country, code, year, num_cases) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cases.Close()
	for _, c := range t.Cases {
		if _, err := cases.Exec(c.Country, c.Code, c.Year, c.NumCases); err != nil {
			return fmt.Errorf("cases %s/%d: %w", c.Country, c.Year, err)
		}
	}

	vac, err := tx.Prepare(`INSERT INTO vaccination (country, year, pol3) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer vac.Close()
	for _, v := range t.Coverage {
		if _, err := vac.Exec(v.Country, v.Year, v.Pol3); err != nil {
			return fmt.Errorf("vaccination %s/%d: %w", v.Country, v.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	return nil
}
