package transport

import (
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// InternalMiddleware guards operational endpoints such as /metrics with a static key.
// An empty key leaves the endpoint open.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+apiKey {
				response.Forbidden(w, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
