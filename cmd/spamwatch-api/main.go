// @title         Spamwatch API
// @version       0.1.0
// @description   Spam classification with alerting and an auditable check log

package main

import (
	"context"

	"spamwatch/internal/core/lexicon"
	"spamwatch/internal/platform/config"
	"spamwatch/internal/platform/logger"
	"spamwatch/internal/platform/mail"
	phttp "spamwatch/internal/platform/net/http"
	"spamwatch/internal/platform/store"

	"spamwatch/internal/services/api"
	spamrepo "spamwatch/internal/services/api/spam/repo"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_") // http server, docs, profiler
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	alertCfg := root.Prefix("ALERT_")

	// bring up logging early
	l := logger.Get()

	// indicator phrases: embedded default with optional file override
	var (
		lex *lexicon.Lexicon
		err error
	)
	if path := root.MayString("SPAM_LEXICON_PATH", ""); path != "" {
		lex, err = lexicon.LoadFile(path)
	} else {
		lex, err = lexicon.Load()
	}
	if err != nil {
		l.Panic().Err(err).Msg("lexicon load failed")
	}
	l.Info().Int("indicators", lex.Len()).Msg("lexicon loaded")

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// self-provision the check log table
	if err := spamrepo.NewPG().Bind(st.PG).EnsureSchema(context.Background()); err != nil {
		l.Panic().Err(err).Msg("schema bootstrap failed")
	}

	// mail transport is optional; without SMTP config alerts are disabled
	var sender mail.Sender
	if alertCfg.MayString("SMTP_HOST", "") != "" {
		sender = mail.NewSMTP(mail.FromConf(alertCfg), *l)
	} else {
		l.Warn().Msg("ALERT_SMTP_HOST not set; spam alerts disabled")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API; modules read their own env namespaces off the root conf
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Mail:           sender,
			Lexicon:        lex,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
