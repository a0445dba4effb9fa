package store

import (
	"context"
	"fmt"
	"time"

	"spamwatch/internal/platform/logger"
	"spamwatch/internal/platform/store/pg"
)

// openPG connects the pool and proves it healthy before handing it out
func openPG(ctx context.Context, cfg PGConfig, log logger.Logger) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.LogSQL {
		tracer = pg.Tracer(log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.URL,
		MaxConns: cfg.MaxConns,
		SlowMs:   cfg.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	// ping the pool directly so boot probes do not land in the sql trace
	var lastErr error
	backoff := 150 * time.Millisecond
	const ceiling = 2 * time.Second
	for i := 0; i < attempts; i++ {
		probe, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(probe)
		cancel()

		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff *= 2; backoff > ceiling {
			backoff = ceiling
		}
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}
