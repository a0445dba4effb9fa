package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter wraps any chi.Router behind the platform Router seam.
// chi subrouters implement chi.Router too, so one wrapper covers both
// the top-level mux and everything produced by Group/Route
type chiRouter struct{ r chi.Router }

// AdaptChi wraps a *chi.Mux in the Router seam
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) method(verb, p string, h Handler) {
	c.r.Method(verb, p, http.HandlerFunc(h))
}

func (c chiRouter) Get(p string, h Handler)     { c.method(http.MethodGet, p, h) }
func (c chiRouter) Post(p string, h Handler)    { c.method(http.MethodPost, p, h) }
func (c chiRouter) Put(p string, h Handler)     { c.method(http.MethodPut, p, h) }
func (c chiRouter) Patch(p string, h Handler)   { c.method(http.MethodPatch, p, h) }
func (c chiRouter) Delete(p string, h Handler)  { c.method(http.MethodDelete, p, h) }
func (c chiRouter) Head(p string, h Handler)    { c.method(http.MethodHead, p, h) }
func (c chiRouter) Options(p string, h Handler) { c.method(http.MethodOptions, p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

// Mux exposes the underlying chi router as an http.Handler
func (c chiRouter) Mux() http.Handler { return c.r }
