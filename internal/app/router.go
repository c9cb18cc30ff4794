package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/newline-apparel/po-backend/internal/assets"
	"github.com/newline-apparel/po-backend/internal/directory/billto"
	"github.com/newline-apparel/po-backend/internal/directory/buyers"
	"github.com/newline-apparel/po-backend/internal/directory/suppliers"
	"github.com/newline-apparel/po-backend/internal/numbering"
	"github.com/newline-apparel/po-backend/internal/orders"
	"github.com/newline-apparel/po-backend/internal/settings"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	OrdersHandler    *orders.Handler
	NumberingHandler *numbering.Handler
	SettingsHandler  *settings.Handler
	LogoHandler      *assets.Handler
	BuyersHandler    *buyers.Handler
	SuppliersHandler *suppliers.Handler
	BillToHandler    *billto.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"Newline Apparel PO Generator API"}`))
		})
		params.OrdersHandler.MountRoutes(r)
		params.NumberingHandler.MountRoutes(r)
		params.SettingsHandler.MountRoutes(r)
		params.LogoHandler.MountRoutes(r)
		r.Route("/buyers", params.BuyersHandler.MountRoutes)
		r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
		r.Route("/billto", params.BillToHandler.MountRoutes)
	})

	// Uploaded logos are served as plain static assets.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(params.Config.UploadDir)))
	r.Handle("/uploads/*", staticCacheHandler(uploads))

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers so
// browsers keep uploaded assets for an hour.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
