package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/transport"
)

// RBACAuthorization guards routes by the role carried in the session token.
// It must run after AuthMiddleware.
type RBACAuthorization struct {
	*transport.BaseHandler
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		BaseHandler: transport.NewBaseHandler(logger),
		logger:      logger,
	}
}

func (ra *RBACAuthorization) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := internal.PrincipalFromContext(r.Context())
			if !ok {
				ra.logger.Warn("authorization check failed: principal not found in context")
				ra.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			ra.logger.WarnContext(r.Context(), "access denied: insufficient role",
				"principal_id", principal.ID,
				"role", principal.Role,
				"required_roles", roles)
			ra.WriteAppError(w, internal.ErrInsufficientRole)
		})
	}
}

func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.RequireRole(internal.RoleAdmin)
}

func (ra *RBACAuthorization) RequireUser() func(http.Handler) http.Handler {
	return ra.RequireRole(internal.RoleUser)
}
