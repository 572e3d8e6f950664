package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "bizquery/internal/platform/errors"
	"bizquery/internal/platform/logger"
	pnet "bizquery/internal/platform/net"
	phttp "bizquery/internal/platform/net/http"
)

// RecoverJSON converts panics into the standard JSON error envelope and logs the stack.
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
