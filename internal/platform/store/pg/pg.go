// Package pg opens the pgx pool generated queries run on
package pg

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool and the session defaults every connection starts with
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int

	// AppName is reported as application_name
	AppName string

	// ReadOnly sets default_transaction_read_only on every session, so even
	// statements run outside an explicit read-only tx cannot write
	ReadOnly bool

	// StatementTimeoutMs sets a session statement_timeout when > 0
	StatementTimeoutMs int
}

// PG is a postgres pool with an optional tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// RuntimeParams returns the session parameters cfg asks for
func (c Config) RuntimeParams() map[string]string {
	out := map[string]string{}
	if c.AppName != "" {
		out["application_name"] = c.AppName
	}
	if c.ReadOnly {
		out["default_transaction_read_only"] = "on"
	}
	if c.StatementTimeoutMs > 0 {
		out["statement_timeout"] = strconv.Itoa(c.StatementTimeoutMs)
	}
	return out
}

// Open parses cfg, applies the session defaults, then creates the pool.
// The pool connects lazily; callers ping before use
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	for k, v := range cfg.RuntimeParams() {
		pcfg.ConnConfig.RuntimeParams[k] = v
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
