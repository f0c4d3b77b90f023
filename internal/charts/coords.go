package charts

// countryCoords maps country names to [lat, lon] centroids for the map
// overlay. Countries without an entry simply get no case marker; the
// choropleth still colors them.
var countryCoords = map[string][2]float64{
	"Afghanistan":    {33.0, 65.0},
	"Algeria":        {28.0, 3.0},
	"Angola":         {-12.0, 18.5},
	"Argentina":      {-34.0, -64.0},
	"Australia":      {-25.0, 133.0},
	"Bangladesh":     {24.0, 90.0},
	"Brazil":         {-14.0, -51.0},
	"Canada":         {60.0, -95.0},
	"Chad":           {15.0, 19.0},
	"Chile":          {-30.0, -71.0},
	"China":          {35.0, 105.0},
	"Colombia":       {4.0, -72.0},
	"Congo":          {-1.0, 15.0},
	"Egypt":          {26.0, 30.0},
	"Ethiopia":       {9.1, 40.5},
	"France":         {46.0, 2.0},
	"Germany":        {51.0, 9.0},
	"Ghana":          {7.9, -1.0},
	"India":          {20.0, 77.0},
	"Indonesia":      {-0.8, 113.9},
	"Iran":           {32.4, 53.7},
	"Iraq":           {33.2, 43.7},
	"Kazakhstan":     {48.0, 66.9},
	"Kenya":          {-0.0, 37.9},
	"Libya":          {26.3, 17.2},
	"Madagascar":     {-18.8, 47.0},
	"Mali":           {17.6, -3.0},
	"Mexico":         {23.6, -102.5},
	"Mongolia":       {46.9, 103.8},
	"Morocco":        {31.8, -7.1},
	"Myanmar":        {21.9, 95.9},
	"Niger":          {17.6, 8.1},
	"Nigeria":        {9.1, 8.7},
	"Pakistan":       {30.4, 69.3},
	"Peru":           {-9.2, -75.0},
	"Philippines":    {12.9, 121.8},
	"Russia":         {61.5, 105.3},
	"Saudi Arabia":   {23.9, 45.1},
	"Somalia":        {5.2, 46.2},
	"South Africa":   {-30.6, 22.9},
	"Sudan":          {12.9, 30.2},
	"Tanzania":       {-6.4, 34.9},
	"Thailand":       {15.9, 100.6},
	"Turkey":         {38.8, 35.2},
	"Ukraine":        {48.4, 31.2},
	"United Kingdom": {55.4, -3.4},
	"United States":  {37.1, -95.7},
	"Uzbekistan":     {41.4, 64.6},
	"Venezuela":      {6.4, -66.6},
	"Vietnam":        {14.1, 108.3},
	"Yemen":          {15.6, 48.0},
	"Zambia":         {-13.1, 27.8},
}

// mapNames translates our country names to the names the echarts world map
// uses for its regions. Anything not listed passes through unchanged.
var mapNames = map[string]string{
	"United States":                    "United States of America",
	"Tanzania":                         "United Republic of Tanzania",
	"Democratic Republic of Congo":     "Democratic Republic of the Congo",
	"Congo":                            "Republic of the Congo",
	"Cote d'Ivoire":                    "Ivory Coast",
	"Czechia":                          "Czech Republic",
	"Serbia":                           "Republic of Serbia",
	"North Macedonia":                  "Macedonia",
	"Eswatini":                         "Swaziland",
	"Timor":                            "East Timor",
	"Guinea-Bissau":                    "Guinea Bissau",
	"Bahamas":                          "The Bahamas",
	"Micronesia (country)":             "Federated States of Micronesia",
}

// MapRegionName returns the echarts world-map region name for a country.
func MapRegionName(country string) string {
	if n, ok := mapNames[country]; ok {
		return n
	}
	return country
}
