// Package net holds request scoped helpers shared by transports
package net

import (
	"context"

	"bizquery/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequestID stores reqID where chi's RequestID middleware would, and tags the logger context
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
