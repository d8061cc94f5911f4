package middleware

import "net/http"

// CacheControl returns middleware that marks every response as
// non-cacheable. Applied to all routes with no exceptions: neither the
// query endpoint nor static assets may be stored or reused by browser or
// proxy caches.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
