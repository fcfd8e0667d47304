package dataloader

import "net/http"

// Middleware instantiates per-request DataLoaders and stores them in the
// request context.
func Middleware(categories categoryRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(categories))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
