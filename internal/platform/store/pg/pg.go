// Package pg provides a postgres client over pgxpool with optional query tracing
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds the pool settings Open cares about
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
}

// PG bundles the pool with its tracer and slow threshold
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

// Open parses cfg.URL and builds the pool. tune, when non nil, gets the
// parsed pool config before the pool is created
func Open(ctx context.Context, cfg Config, tracer QueryTracer, tune func(*pgxpool.Config)) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if tune != nil {
		tune(pc)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close releases the pool; safe on nil
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
