package middleware

import "net/http"

// SecurityHeaders sets headers for HTML fragments. No scripts are ever
// served, so the CSP forbids them outright.
func SecurityHeaders(isProd bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if isProd {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			w.Header().Set("Content-Security-Policy",
				"default-src 'none'; "+
					"style-src 'self' 'unsafe-inline'; "+
					"frame-ancestors 'self';")

			next.ServeHTTP(w, r)
		})
	}
}
