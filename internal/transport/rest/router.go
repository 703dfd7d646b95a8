package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/complaint-redressal/internal/auth"
	"github.com/frahmantamala/complaint-redressal/internal/category"
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
	"github.com/frahmantamala/complaint-redressal/internal/department"
	"github.com/frahmantamala/complaint-redressal/internal/report"
	"github.com/frahmantamala/complaint-redressal/internal/transport/middleware"
	"github.com/frahmantamala/complaint-redressal/internal/transport/swagger"
	"github.com/frahmantamala/complaint-redressal/internal/user"
	"github.com/go-chi/chi"
)

// Handlers groups everything the router mounts. OpenAPIJSON may be nil when
// the document could not be loaded.
type Handlers struct {
	Auth        *auth.Handler
	RBAC        *auth.RBACAuthorization
	User        *user.Handler
	Complaint   *complaint.Handler
	Department  *department.Handler
	Category    *category.Handler
	Report      *report.Handler
	Health      *HealthHandler
	OpenAPIPath string
	OpenAPIJSON http.Handler
}

type RouterOptions struct {
	AllowedOrigins string
	Logger         *slog.Logger
}

func RegisterAllRoutes(router chi.Router, h Handlers, opts RouterOptions) {
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(opts.Logger))
	router.Use(middleware.RecoveryMiddleware(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))

	router.Get("/health", h.Health.Health)
	router.Get("/ping", h.Health.Ping)

	if h.OpenAPIPath != "" {
		router.Method(http.MethodGet, "/openapi.yml", swagger.YAMLHandler(h.OpenAPIPath))
	}
	if h.OpenAPIJSON != nil {
		router.Method(http.MethodGet, "/openapi.json", h.OpenAPIJSON)
	}
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", h.User.Register)
			ar.Post("/login", h.Auth.Login)
			ar.Post("/admin/login", h.Auth.Login)
		})

		r.Get("/categories", h.Category.GetCategories)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Group(func(ur chi.Router) {
				ur.Use(h.RBAC.RequireUser())
				ur.Post("/complaints", h.Complaint.CreateComplaint)
				ur.Get("/complaints/my", h.Complaint.GetMyComplaints)
				ur.Get("/users/me", h.User.GetCurrentUser)
			})

			pr.Get("/complaints/{id}", h.Complaint.GetComplaint)
			pr.Get("/complaints/{id}/history", h.Complaint.GetComplaintHistory)

			pr.Route("/admin", func(adm chi.Router) {
				adm.Use(h.RBAC.RequireAdmin())
				adm.Get("/complaints", h.Complaint.ListAllComplaints)
				adm.Get("/complaints/summary", h.Report.GetSummary)
				adm.Put("/complaints/{id}/status", h.Complaint.UpdateComplaintStatus)
				adm.Get("/departments", h.Department.ListDepartments)
			})
		})
	})
}
