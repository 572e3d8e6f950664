package repokit

// Binder binds a domain repo to a Queryer, either the pool or a tx bound one
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain constructor into a Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds b to q, panicking on a nil Queryer
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
