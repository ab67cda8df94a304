// Package http provides the HTTP delivery layer: the chi router, the bearer
// token authenticator, and the handlers that translate between JSON payloads
// and the use cases.
package http

import (
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
)

// NewRouter initializes a chi router with the middleware stack and all API routes.
func NewRouter(
	logger *httplog.Logger,
	jwtSecret string,
	categoryUC categoryUseCase,
	linkUC linkUseCase,
	dashboardUC dashboardUseCase,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Group(func(r chi.Router) {
			r.Use(authenticator(jwtSecret))

			validate := getValidate()

			r.Route("/categories", func(r chi.Router) {
				h := newCategoryHandler(categoryUC, validate)

				r.Get("/", h.list)
				r.Post("/", h.create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.get)
					r.Patch("/", h.update)
					r.Delete("/", h.delete)
				})
			})

			r.Route("/links", func(r chi.Router) {
				h := newLinkHandler(linkUC, validate)

				r.Get("/", h.list)
				r.Post("/", h.create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.get)
					r.Patch("/", h.update)
					r.Delete("/", h.delete)
				})
			})

			r.Get("/dashboard", newDashboardHandler(dashboardUC).summary)
		})
	})

	return r
}

func getValidate() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}
