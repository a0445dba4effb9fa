package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix, typically "/debug"
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	// the profiler ships as a mux of its own, so strip our prefix first
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())

	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) { h.ServeHTTP(w, req) }
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
