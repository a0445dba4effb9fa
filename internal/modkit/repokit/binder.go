package repokit

// Binder binds a domain repo implementation to a concrete Queryer.
// Modules hold a Binder so tests can bind the same repo to a fake
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function to the Binder interface
type BindFunc[T any] func(Queryer) T

// Bind calls fn
func (fn BindFunc[T]) Bind(q Queryer) T { return fn(q) }

// MustBind binds after rejecting a nil Queryer, which is always programmer error
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
