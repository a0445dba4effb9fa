package store

import (
	"context"
	"errors"
	"time"

	"spamwatch/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is the slice of pgxpool.Pool and pgx.Tx the adapter needs,
// so pool and transaction queries share one traced code path
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// emitter forwards query timings to an optional tracer
type emitter struct {
	tracer pg.QueryTracer
	slowUS int64
}

func (e emitter) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if e.tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	e.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      e.slowUS >= 0 && us >= e.slowUS,
	})
}

// traced implements RowQuerier over any pgx querier with tracing attached
type traced struct {
	q pgxQuerier
	emitter
}

func (t traced) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	return cmdTag{ct}, err
}

func (t traced) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	t.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowSet{rs: rs}, nil
}

func (t traced) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	// emitted after Scan so the timing covers the full round trip
	return scanRow{
		r:    t.q.QueryRow(ctx, sql, args...),
		done: func(scanErr error) { t.emit(ctx, sql, args, start, scanErr) },
	}
}

// pgAdapter exposes a pg pool as a TxRunner with optional tracing
type pgAdapter struct {
	p *pg.PG
	traced
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		p: p,
		traced: traced{
			q:       p.Pool,
			emitter: emitter{tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000},
		},
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	q := traced{q: tx, emitter: a.emitter}
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// thin wrappers from pgx types to the store interfaces

type scanRow struct {
	r    pgx.Row
	done func(error)
}

func (s scanRow) Scan(dest ...any) error {
	err := s.r.Scan(dest...)
	if s.done != nil {
		s.done(err)
	}
	return err
}

type rowSet struct{ rs pgx.Rows }

func (r rowSet) Next() bool             { return r.rs.Next() }
func (r rowSet) Scan(dest ...any) error { return r.rs.Scan(dest...) }
func (r rowSet) Err() error             { return r.rs.Err() }
func (r rowSet) Close()                 { r.rs.Close() }
func (r rowSet) Columns() []string {
	fields := r.rs.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

type cmdTag struct{ t pgconn.CommandTag }

func (c cmdTag) String() string      { return c.t.String() }
func (c cmdTag) RowsAffected() int64 { return c.t.RowsAffected() }
