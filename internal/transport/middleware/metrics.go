package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records a counter and a latency histogram per request, labelled
// with the matched mux pattern. The mux must be wrapped in CaptureRoute.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			r, slot := withRouteSlot(r)

			next.ServeHTTP(sw, r)

			obs.ObserveHTTP(r.Method, routeLabel(slot, r), sw.status, time.Since(start))
		})
	}
}
