package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/bhrc-portal/transport"
	utilsContext "github.com/muhammadheryan/bhrc-portal/utils/context"
	"github.com/stretchr/testify/assert"
)

func TestClientIPMiddleware(t *testing.T) {
	proxies := transport.ParseTrustedProxies([]string{"10.0.0.0/8", "127.0.0.1", "not-an-ip"})

	tests := []struct {
		name    string
		peer    string
		forward string
		realIP  string
		want    string
	}{
		{name: "direct caller cannot spoof", peer: "203.0.113.9:5000", forward: "198.51.100.1", want: "203.0.113.9"},
		{name: "direct caller real ip ignored", peer: "203.0.113.9:5000", realIP: "198.51.100.1", want: "203.0.113.9"},
		{name: "trusted proxy forwards client", peer: "10.1.2.3:443", forward: "198.51.100.7", want: "198.51.100.7"},
		{name: "prepended hops are ignored", peer: "10.1.2.3:443", forward: "1.1.1.1, 2.2.2.2, 198.51.100.7", want: "198.51.100.7"},
		{name: "chained trusted proxies skipped", peer: "127.0.0.1:80", forward: "198.51.100.7, 10.9.9.9", want: "198.51.100.7"},
		{name: "trusted proxy real ip", peer: "10.1.2.3:443", realIP: "198.51.100.8", want: "198.51.100.8"},
		{name: "trusted proxy without headers", peer: "10.1.2.3:443", want: "10.1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := transport.ClientIPMiddleware(proxies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utilsContext.GetClientIP(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			req.RemoteAddr = tt.peer
			if tt.forward != "" {
				req.Header.Set("X-Forwarded-For", tt.forward)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}
