package repokit

import (
	"testing"

	kit "bizquery/internal/platform/testkit"
)

func TestBindFunc(t *testing.T) {
	t.Parallel()

	q := &fakeQ{}
	b := BindFunc[Queryer](func(in Queryer) Queryer { return in })
	if got := b.Bind(q); got != q {
		t.Fatalf("Bind did not pass the Queryer through")
	}
	if got := MustBind[Queryer](b, q); got != q {
		t.Fatalf("MustBind did not pass the Queryer through")
	}
}

func TestMustBind_PanicsOnNil(t *testing.T) {
	t.Parallel()

	b := BindFunc[int](func(Queryer) int { return 42 })
	kit.MustPanic(t, func() { _ = MustBind[int](b, nil) })
}
