package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitorTTL is how long a Visitor is remembered after its last request.
const visitorTTL = time.Hour

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst int
	limit rate.Limit
	val   map[string]*Visitor

	sync.Mutex
}

// NewVisitors constructs a Visitors limiting each IP address
// to limit requests per second with bursts of up to burst.
func NewVisitors(limit float64, burst int) *Visitors {
	return &Visitors{burst: burst, limit: rate.Limit(limit), val: make(map[string]*Visitor)}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) *Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = &Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
		vs.val[ip] = v
	}

	v.LastSeen = time.Now().UTC()
	return v
}

// cleanup forgets every Visitor not seen in over visitorTTL.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()

	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit responds with 429 to requests from IP addresses, cf. GetIPAddress,
// exceeding the rate visitors allows.
//
// If visitors is nil, NoopAdapter returns and this middleware does nothing.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(GetIPAddress(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
