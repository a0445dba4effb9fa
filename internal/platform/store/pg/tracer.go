package pg

import (
	"context"
	"strings"

	"spamwatch/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes a single executed statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives query events from the sql adapter
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer builds a tracer that always prints SQL when LOG_SQL is on,
// independent of the process-wide root level
func Tracer(root logger.Logger) QueryTracer {
	return &sqlTracer{
		log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
	}
}

type sqlTracer struct{ log logger.Logger }

func (t *sqlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := t.log.Info()
	if ev.Slow {
		evt = t.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// compact collapses whitespace runs so multiline SQL logs on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
