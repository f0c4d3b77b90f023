package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/healthviz/polio-dashboard/internal/config"
	"github.com/healthviz/polio-dashboard/internal/dashboard"
	"github.com/healthviz/polio-dashboard/internal/dataset"
	"github.com/healthviz/polio-dashboard/internal/middleware"
	"github.com/healthviz/polio-dashboard/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// All four files must load cleanly or the process does not come up.
	tables, err := dataset.Load(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to load data: ", err)
	}
	log.Printf("Loaded data: %d metadata, %d population, %d case, %d coverage rows",
		len(tables.Metadata), len(tables.Population), len(tables.Cases), len(tables.Coverage))

	st, err := store.Open(tables)
	if err != nil {
		log.Fatal("Failed to build store: ", err)
	}

	if missing, err := st.MissingMetadataCodes(); err != nil {
		log.Fatal("Failed to check metadata joins: ", err)
	} else if len(missing) > 0 {
		log.Printf("WARNING: %d population codes have no metadata row: %v", len(missing), missing)
	}

	h, err := dashboard.NewHandler(st, cfg)
	if err != nil {
		log.Fatal("Failed to derive chart tables: ", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)))
	r.Use(middleware.BasicAuth(cfg.AuthHash))

	r.Mount("/", h.SetupRoutes())

	log.Printf("Dashboard listening on %s", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
