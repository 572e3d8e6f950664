// Package repokit provides the transaction and binding helpers repos share
package repokit

import (
	"context"

	"bizquery/internal/platform/store"
)

type (
	// Queryer is the read and write surface repos bind to
	Queryer = store.RowQuerier

	// TxRunner can execute a function inside a transaction
	TxRunner = store.TxRunner

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// TxValue runs fn inside a transaction and returns its value. The zero T is
// returned whenever the transaction fails, including on commit
func TxValue[T any](ctx context.Context, tx TxRunner, fn func(q Queryer) (T, error)) (T, error) {
	var out T
	err := tx.Tx(ctx, func(q Queryer) error {
		v, err := fn(q)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
