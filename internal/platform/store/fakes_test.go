package store

import (
	"context"
	"errors"

	"bizquery/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakePgxRows implements pgx.Rows over an in-memory table
type fakePgxRows struct {
	cols    []string
	data    [][]any
	idx     int
	err     error
	scanErr error
	closed  bool
}

func newFakePgxRows(cols []string, data ...[]any) *fakePgxRows {
	return &fakePgxRows{cols: cols, data: data, idx: -1}
}

func (r *fakePgxRows) Close()                        { r.closed = true }
func (r *fakePgxRows) Err() error                    { return r.err }
func (r *fakePgxRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakePgxRows) Conn() *pgx.Conn               { return nil }
func (r *fakePgxRows) RawValues() [][]byte           { return nil }
func (r *fakePgxRows) Values() ([]any, error)        { return r.data[r.idx], nil }

func (r *fakePgxRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}

func (r *fakePgxRows) Next() bool {
	if r.idx+1 >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakePgxRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return assignAll(dest, r.data[r.idx])
}

func assignAll(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return errors.New("scan: arity mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *any:
			*p = vals[i]
		case *int:
			*p = vals[i].(int)
		case *string:
			*p = vals[i].(string)
		default:
			return errors.New("scan: unsupported dest")
		}
	}
	return nil
}

type fakePgxRow struct {
	vals []any
	err  error
}

func (r fakePgxRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(dest, r.vals)
}

// fakePgx implements pgxQuerier and records statements
type fakePgx struct {
	sqls    []string
	execErr error
	rows    *fakePgxRows
	rowsErr error
	row     fakePgxRow
}

func (f *fakePgx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	return pgconn.NewCommandTag("SET"), f.execErr
}

func (f *fakePgx) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.sqls = append(f.sqls, sql)
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.rows, nil
}

func (f *fakePgx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.sqls = append(f.sqls, sql)
	return f.row
}

// recTracer collects query events
type recTracer struct{ events []pg.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { r.events = append(r.events, ev) }

// fakeCommitter records which way a transaction ended
type fakeCommitter struct {
	committed, rolledBack bool
	commitErr             error
}

func (f *fakeCommitter) Commit(context.Context) error   { f.committed = true; return f.commitErr }
func (f *fakeCommitter) Rollback(context.Context) error { f.rolledBack = true; return nil }

// fakePool satisfies pinger and fails the first n pings
type fakePool struct {
	failFirst int
	pings     int
	closed    bool
}

func (f *fakePool) Ping(context.Context) error {
	f.pings++
	if f.pings <= f.failFirst {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakePool) Close() { f.closed = true }
