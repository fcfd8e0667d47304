package middleware

import (
	"context"
	"net/http"
)

// The mux records the matched pattern on the request it dispatches, which is
// a copy once any middleware has called WithContext. routeSlot carries the
// pattern back out to the middleware that logs and measures the request.
type routeSlot struct {
	pattern string
}

type routeSlotKey struct{}

// withRouteSlot returns r carrying a route slot, reusing one placed by an
// outer middleware.
func withRouteSlot(r *http.Request) (*http.Request, *routeSlot) {
	if slot, ok := r.Context().Value(routeSlotKey{}).(*routeSlot); ok {
		return r, slot
	}
	slot := &routeSlot{}
	return r.WithContext(context.WithValue(r.Context(), routeSlotKey{}, slot)), slot
}

// CaptureRoute wraps the innermost mux and publishes its matched pattern.
func CaptureRoute(mux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r)
		if slot, ok := r.Context().Value(routeSlotKey{}).(*routeSlot); ok {
			slot.pattern = r.Pattern
		}
	})
}

// routeLabel names the matched route, keeping label cardinality bounded.
func routeLabel(slot *routeSlot, r *http.Request) string {
	switch {
	case slot != nil && slot.pattern != "":
		return slot.pattern
	case r.Pattern != "":
		return r.Pattern
	default:
		return "unmatched"
	}
}
