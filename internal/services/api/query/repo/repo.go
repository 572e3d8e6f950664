// Package repo runs generated SQL against postgres
package repo

import (
	"context"

	"bizquery/internal/modkit/repokit"
	"bizquery/internal/platform/store"
)

// Repo defines the repository contract for query execution
type Repo interface {
	// Run executes sql and returns at most limit rows
	Run(ctx context.Context, sql string, limit int) (store.ResultSet, error)
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

func (r *queries) Run(ctx context.Context, sql string, limit int) (store.ResultSet, error) {
	return store.Collect(ctx, r.q, limit, sql)
}
