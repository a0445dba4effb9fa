// Package api provides the HTTP API for the application
package api

import (
	"spamwatch/internal/core/lexicon"
	"spamwatch/internal/platform/config"
	"spamwatch/internal/platform/logger"
	"spamwatch/internal/platform/mail"
	phttp "spamwatch/internal/platform/net/http"
	"spamwatch/internal/platform/store"

	modkit "spamwatch/internal/modkit"
	"spamwatch/internal/modkit/httpkit"
	"spamwatch/internal/modkit/module"
	"spamwatch/internal/modkit/swaggerkit"

	metamod "spamwatch/internal/services/api/meta/module"
	spammod "spamwatch/internal/services/api/spam/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Mail           mail.Sender
	Lexicon        *lexicon.Lexicon
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:  *log,
		Cfg:  opt.Config,
		PG:   opt.Store.PG,
		Mail: opt.Mail,
	}

	mods := []module.Module{
		metamod.New(deps),
		spammod.New(deps, opt.Lexicon),
	}

	httpkit.MountAPI(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// docs and profiler live beside the API, not under its middleware stack
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
