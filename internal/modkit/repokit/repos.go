// Package repokit holds the shared types repository implementations build on
package repokit

import (
	"context"

	"spamwatch/internal/platform/store"
)

type (
	// Queryer is the minimal sql surface a repo runs against
	Queryer = store.RowQuerier

	// TxRunner can run a function inside a transaction
	TxRunner = store.TxRunner

	// Rows is a query result set
	Rows = store.Rows

	// Row is a single scanned row
	Row = store.Row

	// CommandTag is the outcome of a write
	CommandTag = store.CommandTag
)

// WithTx runs fn transactionally on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
