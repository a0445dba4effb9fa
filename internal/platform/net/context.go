// Package net carries request-scoped values shared by middleware and handlers
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores the request id where chi middleware expects it, so
// one key serves both our code and chi's
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID reads the request id off ctx, empty when absent
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
