// Package repo provides postgres access for the spam check log
package repo

import (
	"context"
	"time"

	"spamwatch/internal/modkit/repokit"

	"github.com/google/uuid"
)

// Repo defines the repository contract for the append-only check log
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, row RowCheck) (RowCheck, error)
	Recent(ctx context.Context, limit int) ([]RowCheck, error)
}

// RowCheck represents one classification row
type RowCheck struct {
	ID          string
	Text        string
	Verdict     string
	Probability float64
	Matched     []string
	CreatedAt   time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// EnsureSchema provisions the check log table. Idempotent, run at boot.
// seq breaks createdAt ties so recency order matches insertion order
func (r *queries) EnsureSchema(ctx context.Context) error {
	const ddl = `
create table if not exists spam_checks (
	id uuid primary key,
	seq bigserial,
	text text not null,
	verdict text not null,
	probability double precision not null,
	matched text[] not null default '{}',
	created_at timestamptz not null default now()
)`
	if _, err := r.q.Exec(ctx, ddl); err != nil {
		return err
	}
	const idx = `create index if not exists spam_checks_recent_idx on spam_checks (created_at desc, seq desc)`
	_, err := r.q.Exec(ctx, idx)
	return err
}

// Append inserts one row, assigning id and created_at. Rows are never
// updated or deleted afterwards
func (r *queries) Append(ctx context.Context, row RowCheck) (RowCheck, error) {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.Matched == nil {
		row.Matched = []string{}
	}
	const sql = `
insert into spam_checks (id, text, verdict, probability, matched)
values ($1, $2, $3, $4, $5)
returning created_at`
	err := r.q.QueryRow(ctx, sql, row.ID, row.Text, row.Verdict, row.Probability, row.Matched).
		Scan(&row.CreatedAt)
	if err != nil {
		return RowCheck{}, err
	}
	return row, nil
}

// Recent returns up to limit rows newest first
func (r *queries) Recent(ctx context.Context, limit int) ([]RowCheck, error) {
	const sql = `
select id::text, text, verdict, probability, matched, created_at
from spam_checks
order by created_at desc, seq desc
limit $1`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowCheck
	for rows.Next() {
		var rr RowCheck
		if err := rows.Scan(
			&rr.ID,
			&rr.Text,
			&rr.Verdict,
			&rr.Probability,
			&rr.Matched,
			&rr.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
