package charts

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/healthviz/polio-dashboard/internal/store"
)

// IncomeTrend builds the stacked area chart of estimated paralytic polio
// cases per million, one band per World Bank income group. The input is
// already ordered by the store: groups by overall mean (largest first), years
// ascending within a group.
func IncomeTrend(points []store.IncomePoint, title string) *charts.Line {
	years := distinctYears(points)
	index := make(map[int]int, len(years))
	for i, y := range years {
		index[y] = i
	}

	// Group order follows first appearance in the input.
	var groups []string
	byGroup := map[string][]opts.LineData{}
	for _, p := range points {
		if _, ok := byGroup[p.IncomeGroup]; !ok {
			groups = append(groups, p.IncomeGroup)
			data := make([]opts.LineData, len(years))
			for i := range data {
				data[i] = opts.LineData{Value: 0.0}
			}
			byGroup[p.IncomeGroup] = data
		}
		byGroup[p.IncomeGroup][index[p.Year]] = opts.LineData{Value: round2(p.CasesPerMillion)}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1400px",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: "vertical",
			Right:  "1%",
			Top:    "middle",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Cases per million",
		}),
		charts.WithGridOpts(opts.Grid{
			Right: "16%",
		}),
	)

	line.SetXAxis(years)
	for _, g := range groups {
		line.AddSeries(g, byGroup[g],
			charts.WithLineChartOpts(opts.LineChart{Stack: "total"}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.9}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 0.5, Color: IncomeColor(g)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: IncomeColor(g)}),
		)
	}

	return line
}

func distinctYears(points []store.IncomePoint) []int {
	seen := map[int]bool{}
	var years []int
	for _, p := range points {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	// Points arrive grouped, not globally year-sorted.
	sort.Ints(years)
	return years
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
