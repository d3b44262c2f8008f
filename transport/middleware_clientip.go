package transport

import (
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	utilsContext "github.com/muhammadheryan/bhrc-portal/utils/context"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

// ParseTrustedProxies accepts IPs and CIDR ranges; unparsable entries are skipped.
func ParseTrustedProxies(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "/") {
			if ip := net.ParseIP(e); ip != nil && ip.To4() != nil {
				e += "/32"
			} else {
				e += "/128"
			}
		}
		_, n, err := net.ParseCIDR(e)
		if err != nil {
			logger.Warn("[ParseTrustedProxies] skipping entry", zap.String("entry", e), zap.String("error", err.Error()))
			continue
		}
		nets = append(nets, n)
	}
	return nets
}

func trusted(nets []*net.IPNet, addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIPMiddleware resolves the caller address. Forwarding headers are only
// read when the peer is a trusted proxy, and X-Forwarded-For is walked from the
// right so hops a client prepends are ignored.
func ClientIPMiddleware(proxies []*net.IPNet) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := peerIP(r)
			if trusted(proxies, ip) {
				if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
					hops := strings.Split(fwd, ",")
					for i := len(hops) - 1; i >= 0; i-- {
						hop := strings.TrimSpace(hops[i])
						if hop == "" {
							continue
						}
						ip = hop
						if !trusted(proxies, hop) {
							break
						}
					}
				} else if xr := strings.TrimSpace(r.Header.Get("X-Real-IP")); xr != "" {
					ip = xr
				}
			}
			next.ServeHTTP(w, r.WithContext(utilsContext.WithClientIP(r.Context(), ip)))
		})
	}
}
