package repokit

import (
	"context"

	"bizquery/internal/platform/store"
)

type fakeTag struct{}

func (fakeTag) String() string      { return "SET" }
func (fakeTag) RowsAffected() int64 { return 0 }

// fakeQ records every Exec it sees
type fakeQ struct {
	execs   []string
	execErr error
}

func (f *fakeQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return fakeTag{}, f.execErr
}

func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }

func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row { return nil }

// fakeTx hands its fakeQ to fn and counts transactions
type fakeTx struct {
	fakeQ
	txCalls int
}

func (f *fakeTx) Tx(_ context.Context, fn func(q Queryer) error) error {
	f.txCalls++
	return fn(&f.fakeQ)
}

type fakeGuard struct{ err error }

func (f fakeGuard) Guard(context.Context) error { return f.err }
