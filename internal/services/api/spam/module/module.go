// Package module wires spam checks into the API using modkit
package module

import (
	"net/http"

	"spamwatch/internal/core/lexicon"
	modkit "spamwatch/internal/modkit"
	"spamwatch/internal/modkit/httpkit"
	str "spamwatch/internal/platform/strings"
	alertdom "spamwatch/internal/services/alert/domain"
	alertsvc "spamwatch/internal/services/alert/service"
	spamhttp "spamwatch/internal/services/api/spam/http"
	spamrepo "spamwatch/internal/services/api/spam/repo"
	spamsvc "spamwatch/internal/services/api/spam/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc spamsvc.Service
}

// New constructs a spam module with the provided dependencies and options
func New(deps modkit.Deps, lex *lexicon.Lexicon, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("spam"), modkit.WithPrefix("/spam")}, opts...)...)

	alertCfg := deps.Cfg.Prefix("ALERT_")
	cfg := spamsvc.Config{
		DefaultRecipient: alertCfg.MayString("DEFAULT_RECIPIENT", ""),
		ThresholdPct:     alertCfg.MayFloat64("THRESHOLD_PCT", 40),
		AsyncNotify:      alertCfg.MayBool("ASYNC", true),
	}

	// the notifier is optional; without a mail seam alerts are never attempted
	var notifier alertdom.NotifierPort
	if deps.Mail != nil {
		notifier = alertsvc.New(deps.Mail, deps.Log)
	}

	repo := spamrepo.NewPG()
	svc := spamsvc.New(deps.PG, repo, lex, notifier, cfg, deps.Log)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSpamPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		spamhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
