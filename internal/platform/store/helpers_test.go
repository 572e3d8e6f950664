package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	cols := []string{"company_name", "country"}
	data := [][]any{{"Acme", "CY"}, {"Globex", "PL"}, {"Initech", "DE"}}

	tests := []struct {
		name      string
		limit     int
		wantRows  int
		truncated bool
	}{
		{"under cap", 5, 3, false},
		{"exact cap", 3, 3, false},
		{"over cap", 2, 2, true},
		{"no cap", 0, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rows := newFakePgxRows(cols, data...)
			q := traced{q: &fakePgx{rows: rows}}

			rs, err := Collect(context.Background(), q, tc.limit, "SELECT company_name, country FROM group_companies")
			if err != nil {
				t.Fatalf("Collect: %v", err)
			}
			if !reflect.DeepEqual(rs.Columns, cols) {
				t.Fatalf("Columns = %v", rs.Columns)
			}
			if len(rs.Rows) != tc.wantRows || rs.Truncated != tc.truncated {
				t.Fatalf("rows=%d truncated=%v", len(rs.Rows), rs.Truncated)
			}
			if rs.Rows[0]["company_name"] != "Acme" {
				t.Fatalf("first row = %v", rs.Rows[0])
			}
			if !rows.closed {
				t.Fatalf("rows must be closed")
			}
		})
	}
}

func TestCollect_EmptyAndErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rs, err := Collect(ctx, traced{q: &fakePgx{rows: newFakePgxRows([]string{"id"})}}, 10, "SELECT id FROM t")
	if err != nil || rs.Rows == nil || len(rs.Rows) != 0 {
		t.Fatalf("empty result = %+v, %v", rs, err)
	}

	boom := errors.New("boom")
	if _, err := Collect(ctx, traced{q: &fakePgx{rowsErr: boom}}, 10, "SELECT"); !errors.Is(err, boom) {
		t.Fatalf("query err = %v", err)
	}

	bad := newFakePgxRows([]string{"id"}, []any{1})
	bad.scanErr = boom
	if _, err := Collect(ctx, traced{q: &fakePgx{rows: bad}}, 10, "SELECT"); !errors.Is(err, boom) {
		t.Fatalf("scan err = %v", err)
	}

	iter := newFakePgxRows([]string{"id"})
	iter.err = boom
	if _, err := Collect(ctx, traced{q: &fakePgx{rows: iter}}, 10, "SELECT"); !errors.Is(err, boom) {
		t.Fatalf("iteration err = %v", err)
	}
}

func TestDeref(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var nilTime *time.Time
	var num pgtype.Numeric
	if err := num.Scan("1250000.50"); err != nil {
		t.Fatalf("numeric scan: %v", err)
	}
	id := [16]byte{0x12, 0x34}

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"time ptr", &now, now},
		{"nil time ptr", nilTime, nil},
		{"numeric", num, 1250000.5},
		{"null numeric", pgtype.Numeric{}, nil},
		{"uuid bytes", id, "12340000-0000-0000-0000-000000000000"},
		{"bytes", []byte("PLN"), "PLN"},
		{"passthrough", int64(7), int64(7)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := deref(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("deref(%v) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}
