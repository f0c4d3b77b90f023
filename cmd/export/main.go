// Command export loads the dashboard data directory and writes the derived
// tables plus the income-trend SVG to an output directory. Useful for
// publishing static snapshots without running the server.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/healthviz/polio-dashboard/internal/charts"
	"github.com/healthviz/polio-dashboard/internal/dataset"
	"github.com/healthviz/polio-dashboard/internal/store"
)

func main() {
	dataDir := flag.String("data", "data", "data directory with the four source CSV files")
	outDir := flag.String("out", "export", "output directory")
	flag.Parse()

	tables, err := dataset.Load(*dataDir)
	if err != nil {
		log.Fatal("Failed to load data: ", err)
	}

	st, err := store.Open(tables)
	if err != nil {
		log.Fatal("Failed to build store: ", err)
	}
	defer st.Close()

	income, err := st.IncomeSeries()
	if err != nil {
		log.Fatal("Failed to derive income series: ", err)
	}
	countries, err := st.CountryPeriods()
	if err != nil {
		log.Fatal("Failed to derive country periods: ", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Failed to create output dir: ", err)
	}

	if err := writeIncomeCSV(filepath.Join(*outDir, "income_series.csv"), income); err != nil {
		log.Fatal("Failed to write income series: ", err)
	}
	if err := writeCountryCSV(filepath.Join(*outDir, "country_periods.csv"), countries); err != nil {
		log.Fatal("Failed to write country periods: ", err)
	}

	svgPath := filepath.Join(*outDir, "income-trend.svg")
	f, err := os.Create(svgPath)
	if err != nil {
		log.Fatal("Failed to create SVG: ", err)
	}
	if err := charts.IncomeTrendSVG(income, "Polio cases per million by income group", f); err != nil {
		f.Close()
		log.Fatal("Failed to render SVG: ", err)
	}
	if err := f.Close(); err != nil {
		log.Fatal("Failed to close SVG: ", err)
	}

	log.Printf("Wrote %d income rows, %d country rows and %s", len(income), len(countries), svgPath)
}

func writeIncomeCSV(path string, points []store.IncomePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"income_group", "year", "total_cases", "total_pop", "cases_per_million"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			p.IncomeGroup,
			fmt.Sprintf("%d", p.Year),
			fmt.Sprintf("%.2f", p.TotalCases),
			fmt.Sprintf("%.0f", p.TotalPop),
			fmt.Sprintf("%.4f", p.CasesPerMillion),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeCountryCSV(path string, rows []store.CountryPeriod) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"country", "code", "period", "income_group", "pol3_rate", "cases_per_million", "total_pop", "category"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, cp := range rows {
		rec := []string{
			cp.Country,
			cp.Code,
			cp.PeriodLabel,
			cp.IncomeGroup,
			fmt.Sprintf("%.2f", cp.Pol3Rate),
			fmt.Sprintf("%.4f", cp.CasesPerMillion),
			fmt.Sprintf("%.0f", cp.TotalPop),
			cp.Category,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
