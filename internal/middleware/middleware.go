// Package middleware contains the HTTP middleware chain.
package middleware

import "net/http"

// Stack composes middlewares so the first one listed runs outermost.
//
// Usage:
//
//	chain := middleware.Stack(logging.Handler, security.Handler)
//	mux.Handle("GET /users", chain(handler))
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
