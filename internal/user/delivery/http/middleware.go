package http

import "net/http"

// CORSMiddleware decorates every response with access-control headers,
// whatever route or status produced it. The request's Origin is echoed back
// when present, otherwise "*". It never touches the body or the status and
// is composed at the outermost layer of the pipeline.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		header := w.Header()
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Methods", "POST, GET, PATCH, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "*")
		header.Set("Access-Control-Allow-Credentials", "true")

		next.ServeHTTP(w, r)
	})
}
