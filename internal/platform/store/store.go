// Package store provides a narrow sql seam over the postgres backend
package store

import (
	"context"
	"errors"
	"fmt"

	"spamwatch/internal/platform/logger"
)

// Store owns the process-wide storage handles.
// The zero value is inert; Open fills in whatever cfg enables
type Store struct {
	// Log is shared with subclients such as the sql tracer
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG TxRunner
}

// Row is the single-row scan contract
type Row interface {
	Scan(dest ...any) error
}

// Rows is the result-set contract: iterate, scan, close
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports the outcome of a write
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the surface repos get to run sql against
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner adds transactional execution on top of RowQuerier
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger reports backend readiness
type Pinger interface{ Ping(context.Context) error }

// Open builds a Store from cfg. Backends cfg leaves disabled stay nil
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// normalize a zero logger so subclients can use it unconditionally
	s.Log = s.Log.With().Logger()

	if cfg.PG.Enabled {
		adapter, err := openPG(ctx, cfg.PG, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = adapter
	}

	return s, nil
}

// Guard pings every seam the Store holds and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.PG != nil {
		if p, ok := any(s.PG).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("pg: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close releases every initialized backend; nil seams are skipped
func (s *Store) Close(ctx context.Context) error {
	var errs []error

	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}
