package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/xy-planning-network/trailmap"
)

// IANA defined IPv4 non-public ranges
var privateNets = mustParseCIDRs(
	"10.0.0.0/8",
	"100.64.0.0/10",
	"172.16.0.0/12",
	"192.0.0.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
)

// InjectIPAddress stores the client's IP address, cf. GetIPAddress,
// in the request's context under [trailmap.IpAddrKey].
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), trailmap.IpAddrKey, GetIPAddress(r))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// IPAddressFromContext retrieves what InjectIPAddress stored in ctx.
func IPAddressFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(trailmap.IpAddrKey).(string)
	return ip, ok
}

// GetIPAddress finds the client's IP address in the X-Forwarded-For and X-Real-Ip headers,
// skipping addresses from non-public ranges,
// or, if neither holds one, in r.RemoteAddr.
func GetIPAddress(r *http.Request) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(r.Header.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := net.ParseIP(strings.TrimSpace(addresses[i]))
			if ip == nil || !ip.IsGlobalUnicast() || isPrivate(ip) {
				continue
			}

			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// isPrivate checks whether ip is in a private IPv4 subnet.
func isPrivate(ip net.IP) bool {
	for _, n := range privateNets {
		if n.Contains(ip) {
			return true
		}
	}

	return false
}

func mustParseCIDRs(cidrs ...string) []*net.IPNet {
	nets := make([]*net.IPNet, len(cidrs))
	for i, cidr := range cidrs {
		_, n, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}
		nets[i] = n
	}

	return nets
}
