package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ParseTrustedSubnet accepts a CIDR or a single address. An empty or invalid
// value yields nil, which trusts nobody.
func ParseTrustedSubnet(subnet string) *net.IPNet {
	subnet = strings.TrimSpace(subnet)
	if subnet == "" {
		return nil
	}
	if _, ipNet, err := net.ParseCIDR(subnet); err == nil {
		return ipNet
	}
	ip := net.ParseIP(subnet)
	if ip == nil {
		return nil
	}
	bits := 8 * net.IPv4len
	if ip.To4() == nil {
		bits = 8 * net.IPv6len
	}
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}
}

// WithSubnet only lets through requests whose X-Real-IP belongs to subnet.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	trusted := ParseTrustedSubnet(subnet)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP")))

			if trusted == nil || ip == nil || !trusted.Contains(ip) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
