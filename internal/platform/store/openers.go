package store

import (
	"context"
	"fmt"
	"time"

	"bizquery/internal/platform/store/pg"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// sleep is swapped in tests
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// pinger is the slice of *pgxpool.Pool openPG needs, swapped in tests
type pinger interface {
	Ping(context.Context) error
	Close()
}

var openPool = func(ctx context.Context, cfg Config, tracer pg.QueryTracer) (*pg.PG, pinger, error) {
	p, err := pg.Open(ctx, pg.Config{
		URL:                cfg.PG.URL,
		MaxConns:           cfg.PG.MaxConns,
		SlowMs:             cfg.PG.SlowQueryMs,
		AppName:            cfg.AppName,
		ReadOnly:           cfg.PG.ReadOnly,
		StatementTimeoutMs: int(cfg.PG.StatementTimeout.Milliseconds()),
	}, tracer)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Pool, nil
}

// openPG opens pg and wraps it with our sql adapter once the pool answers a ping
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, pool, err := openPool(ctx, cfg, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = defaultConnectRetries
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	var lastErr error
	backoff := backoffStart
	for i := range attempts {
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pool.Ping(toCtx)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}

		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Int("of", attempts).Msg("postgres not ready")
		if i == attempts-1 {
			break
		}
		if err := sleep(ctx, backoff); err != nil {
			pool.Close()
			return nil, err
		}
		backoff = min(backoff*2, backoffCeiling)
	}

	pool.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}
