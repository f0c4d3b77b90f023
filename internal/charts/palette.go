package charts

// Income-group band colors, darkest for the historically heaviest burden.
var incomeColors = map[string]string{
	"Lower middle income": "#162C3F",
	"Low income":          "#2B6387",
	"Upper middle income": "#5EB2D5",
	"High income":         "#A4D5EE",
}

const defaultIncomeColor = "#5EB2D5"

// IncomeColor returns the band color for an income group.
func IncomeColor(group string) string {
	if c, ok := incomeColors[group]; ok {
		return c
	}
	return defaultIncomeColor
}

// coverageScale is the red-to-green choropleth ramp for Pol3 coverage, 0-100%.
var coverageScale = []string{"#D32F2F", "#FF7043", "#FDD835", "#66BB6A", "#2E7D32"}

// bubbleColor is the case-rate marker color on the map overlay.
const bubbleColor = "rgba(139,0,0,0.8)"
