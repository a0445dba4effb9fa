package middleware

import (
	"net/http"

	"spamwatch/internal/platform/logger"
	pnet "spamwatch/internal/platform/net"
)

// RequestContext copies the request id assigned by RequestID into the
// logger context so logger.C picks it up. Mount after RequestID
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
