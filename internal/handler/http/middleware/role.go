package middleware

import (
	"net/http"

	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/hrmstack/hrms-backend-go/internal/handler/http/response"
)

// RequireElevated requires admin or HR role
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := auth.ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		if !actor.Elevated() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
