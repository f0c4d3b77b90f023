package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/components"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/healthviz/polio-dashboard/internal/charts"
	"github.com/healthviz/polio-dashboard/internal/config"
	"github.com/healthviz/polio-dashboard/internal/store"
)

// Handler serves the dashboard pages. All derived tables are computed once at
// construction and never change; request handling is pure rendering.
type Handler struct {
	cfg config.Config

	income    []store.IncomePoint
	countries []store.CountryPeriod
	periods   []string
	periodSet map[string]bool
	summary   store.Summary

	printer *message.Printer
}

// NewHandler derives every chart table from the store up front. An empty
// derived table means the input files cannot feed the charts, which is a
// startup error, not a request-time one.
func NewHandler(st *store.Store, cfg config.Config) (*Handler, error) {
	income, err := st.IncomeSeries()
	if err != nil {
		return nil, err
	}
	countries, err := st.CountryPeriods()
	if err != nil {
		return nil, err
	}
	summary, err := st.Summarize()
	if err != nil {
		return nil, err
	}

	if len(income) == 0 {
		return nil, errors.New("income series is empty")
	}
	if len(countries) == 0 {
		return nil, errors.New("country period table is empty")
	}

	periods := store.Periods(countries)
	periodSet := make(map[string]bool, len(periods))
	for _, p := range periods {
		periodSet[p] = true
	}

	return &Handler{
		cfg:       cfg,
		income:    income,
		countries: countries,
		periods:   periods,
		periodSet: periodSet,
		summary:   summary,
		printer:   message.NewPrinter(language.English),
	}, nil
}

type indexData struct {
	Title          string
	Intro          string
	TotalCases     string
	PeakYear       int
	PeakCases      string
	CountryCount   string
	FirstYear      int
	LastYear       int
	DefaultPeriod  string
	MaxPeriodIndex int
	PeriodsJSON    template.JS
}

// Index renders the dashboard shell with both tabs.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	raw, err := json.Marshal(h.periods)
	if err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	data := indexData{
		Title:          h.cfg.Title,
		Intro:          h.cfg.Intro,
		TotalCases:     h.printer.Sprintf("%d", int64(h.summary.TotalCases+0.5)),
		PeakYear:       h.summary.PeakYear,
		PeakCases:      h.printer.Sprintf("%d", int64(h.summary.PeakCases+0.5)),
		CountryCount:   h.printer.Sprintf("%d", h.summary.CountryCount),
		FirstYear:      h.summary.FirstYear,
		LastYear:       h.summary.LastYear,
		DefaultPeriod:  h.periods[0],
		MaxPeriodIndex: len(h.periods) - 1,
		PeriodsJSON:    template.JS(raw),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// IncomeTrend renders the stacked area chart page, embedded by the income tab.
func (h *Handler) IncomeTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	line := charts.IncomeTrend(h.income, "Polio cases per million by income group, 1980-2016")
	if err := line.Render(w); err != nil {
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
	}
}

// VaccinationMap renders the map page for one 3-year period: the coverage
// choropleth stacked over the case-rate overlay.
func (h *Handler) VaccinationMap(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = h.periods[0]
	}
	if !h.periodSet[period] {
		http.Error(w, fmt.Sprintf("Unknown period %q", period), http.StatusBadRequest)
		return
	}

	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		charts.CoverageMap(h.countries, period),
		charts.CaseBubbles(h.countries, period),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		http.Error(w, "Failed to render map", http.StatusInternalServerError)
	}
}

// IncomeTrendSVG serves the static export of the income trend. The chart is
// rendered to a buffer first so a render failure still yields a clean 500.
func (h *Handler) IncomeTrendSVG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := charts.IncomeTrendSVG(h.income, "Polio cases per million by income group", &buf)
	if err != nil {
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", `inline; filename="income-trend.svg"`)
	w.Write(buf.Bytes())
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}
