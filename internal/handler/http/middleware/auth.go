package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrmstack/hrms-backend-go/internal/domain/auth"
	"github.com/hrmstack/hrms-backend-go/internal/domain/user"
	"github.com/hrmstack/hrms-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token and attaches
// the verified identity to the request context for the service layer.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			actor, ok := actorFromClaims(claims)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(hfn)
	}
}

func actorFromClaims(claims map[string]interface{}) (auth.Actor, bool) {
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return auth.Actor{}, false
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return auth.Actor{}, false
	}

	employeeIDStr, ok := claims["employee_id"].(string)
	if !ok {
		return auth.Actor{}, false
	}
	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		return auth.Actor{}, false
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).Valid() {
		return auth.Actor{}, false
	}

	return auth.Actor{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       user.Role(roleStr),
	}, true
}
