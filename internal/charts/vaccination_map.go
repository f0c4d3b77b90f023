package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/healthviz/polio-dashboard/internal/store"
)

// CoverageMap builds the choropleth of Pol3 immunization coverage for one
// 3-year period. Countries are shaded on a fixed 0-100% red-to-green ramp so
// colors stay comparable across periods.
func CoverageMap(rows []store.CountryPeriod, period string) *charts.Map {
	var data []opts.MapData
	for _, cp := range rows {
		if cp.PeriodLabel != period {
			continue
		}
		data = append(data, opts.MapData{
			Name:  MapRegionName(cp.Country),
			Value: round2(cp.Pol3Rate),
		})
	}

	m := charts.NewMap()
	m.RegisterMapType("world")
	m.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Pol3 coverage " + period,
			Width:     "1500px",
			Height:    "760px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Pol3 vaccination coverage, %s", period),
			Subtitle: "Country color: % of one-year-olds immunized (period average)",
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}%",
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			Text:       []string{"High coverage", "Low coverage"},
			InRange: &opts.VisualMapInRange{
				Color: coverageScale,
			},
		}),
	)

	m.AddSeries("Pol3 coverage", data)
	return m
}

// Case-rate classes for the map overlay. Bubble sizes from the store are on
// the original 3-40 scale; the overlay collapses them into three ripple
// classes because the geo scatter sizes per series, not per point.
const (
	smallBubbleMax  = 15.0
	mediumBubbleMax = 28.0
)

// CaseBubbles builds the case-rate overlay for one period: an effect scatter
// at country centroids, one series per case-rate class so heavier outbreaks
// ripple harder. Countries without a centroid entry are skipped.
func CaseBubbles(rows []store.CountryPeriod, period string) *charts.Geo {
	classes := []struct {
		name  string
		scale float32
		max   float64
	}{
		{"Low case rate", 2, smallBubbleMax},
		{"Moderate case rate", 4, mediumBubbleMax},
		{"High case rate", 6, 41},
	}

	data := map[string][]opts.GeoData{}
	for _, cp := range rows {
		if cp.PeriodLabel != period {
			continue
		}
		coord, ok := countryCoords[cp.Country]
		if !ok {
			continue
		}
		for _, cl := range classes {
			if cp.BubbleSize <= cl.max {
				data[cl.name] = append(data[cl.name], opts.GeoData{
					Name: cp.Country,
					// lon, lat, then the hover value
					Value: []interface{}{coord[1], coord[0], round2(cp.CasesPerMillion)},
				})
				break
			}
		}
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Polio case rates " + period,
			Width:     "1500px",
			Height:    "760px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Estimated paralytic polio cases per million, %s", period),
			Subtitle: "Stronger ripple: higher case rate (period average)",
			Left:     "center",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map: "world",
			ItemStyle: &opts.ItemStyle{
				Color:       "#f3f3f3",
				BorderColor: "#cccccc",
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Left: "left",
			Top:  "bottom",
		}),
	)

	for _, cl := range classes {
		if len(data[cl.name]) == 0 {
			continue
		}
		geo.AddSeries(cl.name, types.ChartEffectScatter, data[cl.name],
			charts.WithRippleEffectOpts(opts.RippleEffect{
				Period:    4,
				Scale:     cl.scale,
				BrushType: "stroke",
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: bubbleColor}),
		)
	}

	return geo
}
