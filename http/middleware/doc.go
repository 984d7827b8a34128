/*
The middleware package defines what a middleware is in trailmap and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- MountPrefix
- RateLimit
- ReportPanic
- RequestID

ranger assembles a default chain from these; a hand-built *router.Router can use, e.g.:

	adpts := []middleware.Adapter{
		middleware.RateLimit(middleware.NewVisitors(5, 20)),
		middleware.ForceHTTPS(env, baseURL),
		middleware.InjectIPAddress(),
		middleware.CORS(origin),
	}
*/
package middleware
