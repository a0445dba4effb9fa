package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "spamwatch/internal/platform/errors"
	"spamwatch/internal/platform/logger"
	pnet "spamwatch/internal/platform/net"
)

// RecoverJSON turns a handler panic into a JSON 500 without leaking the
// panic value to the client; the value and stack go to the log
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				reqID := pnet.RequestID(r.Context())

				logger.C(r.Context()).Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(stdhttp.StatusInternalServerError)
				_ = stdjson.NewEncoder(w).Encode(perr.WireFrom(perr.PanicErrf("internal error")))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
