package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	mw "veteranmentors.org/mentors-web/internal/middleware"
	"veteranmentors.org/mentors-web/public"
)

func (a *app) routes() (http.Handler, error) {
	assets, err := public.AssetsFS()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(a.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.AssetsWithCache(assets))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/sites", a.SitesAPIHandler)
		r.Get("/sites/{site}", a.SiteAPIHandler)
	})

	// websockets stay clear of compression and timeouts
	r.Get("/pages/{id}/live", a.LiveHandler)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Compress(5))
		r.Use(chimw.Timeout(30 * time.Second))
		r.Use(mw.Session)
		r.Use(mw.Locale(a.bundle))
		r.Use(mw.CSRF)
		r.Use(mw.VaryLocale)

		r.Get("/", a.HomeHandler)
		r.Get("/sites/{site}", a.SiteHandler)
		r.Post("/pages/{id}/menu", a.MenuToggleHandler)
		r.Post("/pages/{id}/testimonials", a.TestimonialsToggleHandler)
		r.Get("/pages/{id}/navbar", a.NavbarFrag)
		r.NotFound(a.NotFoundHandler)
	})
	return r, nil
}
