package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. Chain(a, b)(h) is a(b(h)): a runs
// first. Nil entries are skipped so optional middleware can be passed
// unconditionally.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Wrap applies per-route middleware to a handler function.
func Wrap(fn http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(fn)
}
