package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/trailmap"
)

// ReportPanic encloses the env and returns an Adapter
// which recovers and reports panics to Sentry through sentryhttp.
//
// Environments not reporting panics, cf. [trailmap.Environment.ReportsPanics],
// get NoopAdapter, so panics surface as they would without it.
func ReportPanic(env trailmap.Environment) Adapter {
	if !env.ReportsPanics() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(h)
	}
}
