package api

import "net/http"

// Limiter returns middleware bounding the number of concurrently served
// requests to n. A value below 1 disables the bound.
func Limiter(n int) func(http.Handler) http.Handler {
	if n < 0 {
		n = 0
	}
	counter := make(chan struct{}, n)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n < 1 {
				h.ServeHTTP(w, r)
				return
			}
			counter <- struct{}{}
			defer func() { <-counter }()

			h.ServeHTTP(w, r)
		})
	}
}
