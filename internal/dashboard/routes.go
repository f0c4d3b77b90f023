package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes wires the dashboard endpoints onto a fresh router.
func (h *Handler) SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/healthz", h.Healthz)

	r.Route("/charts", func(r chi.Router) {
		r.Get("/income-trend", h.IncomeTrend)
		r.Get("/income-trend.svg", h.IncomeTrendSVG)
		r.Get("/vaccination-map", h.VaccinationMap)
	})

	return r
}
