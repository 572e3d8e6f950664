package repokit

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestWithBeginHooks_RunsHooksInOrderThenFn(t *testing.T) {
	t.Parallel()

	inner := &fakeTx{}
	var seq []string
	h1 := func(context.Context, Queryer) error { seq = append(seq, "h1"); return nil }
	h2 := func(context.Context, Queryer) error { seq = append(seq, "h2"); return nil }

	err := WithBeginHooks(inner, h1, h2).Tx(context.Background(), func(q Queryer) error {
		if q != &inner.fakeQ {
			t.Fatalf("fn received a different Queryer")
		}
		seq = append(seq, "fn")
		return nil
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if want := []string{"h1", "h2", "fn"}; !reflect.DeepEqual(seq, want) {
		t.Fatalf("seq = %v, want %v", seq, want)
	}
	if inner.txCalls != 1 {
		t.Fatalf("txCalls = %d", inner.txCalls)
	}
}

func TestWithBeginHooks_HookErrorSkipsFn(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ran := false
	err := WithBeginHooks(&fakeTx{}, func(context.Context, Queryer) error { return boom }).
		Tx(context.Background(), func(Queryer) error { ran = true; return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if ran {
		t.Fatalf("fn must not run after a failing hook")
	}
}

func TestWithBeginHooks_DelegatesOutsideTx(t *testing.T) {
	t.Parallel()

	inner := &fakeTx{}
	runner := WithBeginHooks(inner, ReadOnly())
	if _, err := runner.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if want := []string{"SELECT 1"}; !reflect.DeepEqual(inner.execs, want) {
		t.Fatalf("hooks must not run outside Tx, execs = %v", inner.execs)
	}
}

func TestReadOnlyAndStatementTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hooks []BeginHook
		want  []string
	}{
		{"read only", []BeginHook{ReadOnly()}, []string{"SET TRANSACTION READ ONLY"}},
		{"timeout", []BeginHook{StatementTimeout(1500 * time.Millisecond)}, []string{"SET LOCAL statement_timeout = 1500"}},
		{"zero timeout", []BeginHook{StatementTimeout(0)}, nil},
		{
			"both",
			[]BeginHook{ReadOnly(), StatementTimeout(5 * time.Second)},
			[]string{"SET TRANSACTION READ ONLY", "SET LOCAL statement_timeout = 5000"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			inner := &fakeTx{}
			err := WithBeginHooks(inner, tc.hooks...).Tx(context.Background(), func(Queryer) error { return nil })
			if err != nil {
				t.Fatalf("Tx: %v", err)
			}
			if !reflect.DeepEqual(inner.execs, tc.want) {
				t.Fatalf("execs = %v, want %v", inner.execs, tc.want)
			}
		})
	}
}

func TestReadOnly_PropagatesExecError(t *testing.T) {
	t.Parallel()

	inner := &fakeTx{fakeQ: fakeQ{execErr: errors.New("conn closed")}}
	err := WithBeginHooks(inner, ReadOnly()).Tx(context.Background(), func(Queryer) error { return nil })
	if err == nil || err.Error() != "conn closed" {
		t.Fatalf("err = %v", err)
	}
}
