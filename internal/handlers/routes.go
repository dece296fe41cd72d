package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vangoframework/wms/internal/middleware"
)

// HealthFunc reports whether a backing service is reachable.
type HealthFunc func(ctx context.Context) error

// Routes builds the application router. A nil health check always passes.
func (h *Handlers) Routes(health HealthFunc) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Session(h.sessions))
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.Write([]byte("ok"))
	})

	// Public routes
	r.Get("/", h.Home)
	r.Get("/login", h.Login)
	r.Post("/login", h.LoginSubmit)
	r.Post("/login/forgot", h.ForgotPassword)
	r.Get("/logout", h.Logout)

	// Protected pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/personnel", h.Personnel)
		r.Get("/employee-form", h.EmployeeForm)
		r.Post("/employee-form", h.SaveEmployee)
		r.Post("/employee-form/delete", h.DeleteEmployee)
		r.Get("/work", h.Work)
	})

	// Protected JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAPIAuth)

		r.Get("/employees", h.APIListEmployees)
		r.Get("/employees/{id}", h.APIGetEmployee)
		r.Get("/work", h.APIListWork)
	})

	return r
}
