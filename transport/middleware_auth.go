package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/application/auth"
	"github.com/muhammadheryan/bhrc-portal/constant"
	utilsContext "github.com/muhammadheryan/bhrc-portal/utils/context"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// AuthMiddleware attaches the principal of a valid Bearer token to the request.
// Requests without a usable token pass through anonymously; the role gate decides
// whether the route needs one.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			p, err := authApp.ValidateToken(r.Context(), strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(utilsContext.WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireCapability answers 401 without a principal and 403 when the role is not allowed.
func RequireCapability(need constant.Capability, next http.Handler) http.Handler {
	if need == constant.CapPublic {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := utilsContext.GetPrincipal(r.Context())
		if !ok {
			response.Unauthorized(w, "authentication required")
			return
		}
		if !constant.Allowed(p.Role, need) {
			response.Forbidden(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}
