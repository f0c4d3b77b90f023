package charts

import (
	"errors"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/healthviz/polio-dashboard/internal/store"
)

// IncomeTrendSVG renders the income-group trend as a static stacked-area SVG,
// for the download endpoint and the export tool. Bands are drawn as
// cumulative filled series, widest cumulative first so every band stays
// visible.
func IncomeTrendSVG(points []store.IncomePoint, title string, w io.Writer) error {
	if len(points) == 0 {
		return errors.New("no income series data")
	}

	years := distinctYears(points)
	index := make(map[int]int, len(years))
	xs := make([]float64, len(years))
	for i, y := range years {
		index[y] = i
		xs[i] = float64(y)
	}

	var groups []string
	byGroup := map[string][]float64{}
	for _, p := range points {
		if _, ok := byGroup[p.IncomeGroup]; !ok {
			groups = append(groups, p.IncomeGroup)
			byGroup[p.IncomeGroup] = make([]float64, len(years))
		}
		byGroup[p.IncomeGroup][index[p.Year]] = p.CasesPerMillion
	}

	// cumulative[k] = sum of groups[0..k] per year
	cumulative := make([][]float64, len(groups))
	running := make([]float64, len(years))
	for k, g := range groups {
		for i, v := range byGroup[g] {
			running[i] += v
		}
		cumulative[k] = append([]float64(nil), running...)
	}

	// Later series draw on top, so stack from the outermost band inward.
	var series []chart.Series
	for k := len(groups) - 1; k >= 0; k-- {
		col := drawing.ColorFromHex(strings.TrimPrefix(IncomeColor(groups[k]), "#"))
		series = append(series, chart.ContinuousSeries{
			Name:    groups[k],
			XValues: xs,
			YValues: cumulative[k],
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 1,
				FillColor:   col,
			},
		})
	}

	ch := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 640,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: "Year"},
		YAxis: chart.YAxis{Name: "Cases per million"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.SVG, w)
}
