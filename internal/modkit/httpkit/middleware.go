package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"bizquery/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins defaults to "*" when empty
	CORSOrigins []string

	// Timeout caps handler time, 0 means 30s
	Timeout time.Duration

	// Slow marks access log lines as warn
	Slow time.Duration
}

// CommonStack returns the baseline middleware slice mounted under /api/v1
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
