// Package module mounts the meta endpoints as a modkit module
package module

import (
	"net/http"
	"time"

	modkit "spamwatch/internal/modkit"
	"spamwatch/internal/modkit/httpkit"
	str "spamwatch/internal/platform/strings"

	metahttp "spamwatch/internal/services/api/meta/http"
)

// Module serves health, readiness, and build info
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New builds the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "spamwatch-api",
			StartedAt:   m.startedAt,
			PG:          deps.PG,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes attaches the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name reports the module name
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix reports the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares reports the per-module middleware
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports reports nothing; meta exposes no cross-module ports
func (m *Module) Ports() any { return nil }
