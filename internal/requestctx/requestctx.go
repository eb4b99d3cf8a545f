// Package requestctx carries per-request values from middleware to handlers
// and templ components.
//
// This package is designed to be imported by middleware, handler and templ
// packages without causing import cycles.
package requestctx

import (
	"context"
	"net/http"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	pathContextKey      contextKey = "path"
	requestIDContextKey contextKey = "request_id"
)

// Path returns the request path stored by the middleware, without the
// query string. Returns "" if none was stored.
//
// Usage in a component:
//
//	if requestctx.Path(ctx) == "/users" {
//	    // mark the nav link active
//	}
func Path(ctx context.Context) string {
	path, _ := ctx.Value(pathContextKey).(string)
	return path
}

// WithPath stores the request path in the context.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathContextKey, path)
}

// RequestID returns the request ID stored by the logging middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// Middleware stores the request path for downstream components.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithPath(r.Context(), r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
