package pred

// Pred is a single-argument boolean function over T. Being a func value, a
// Pred (and anything Not returns) is freely copyable whenever the underlying
// closure is safe to share.
type Pred[T any] func(T) bool

// Not returns a predicate that evaluates p and negates its result. p runs
// exactly once per call, so any side effect it has (a dedup set updated by a
// stateful closure, state consumed by a one-shot closure) happens as if p
// had been called directly.
func Not[T any](p Pred[T]) Pred[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// And is a lifted version of the && operation over predicates. The second
// predicate is not evaluated when the first returns false.
func And[T any](p0, p1 Pred[T]) Pred[T] {
	return func(v T) bool {
		return p0(v) && p1(v)
	}
}

// Or is a lifted version of the || operation over predicates. The second
// predicate is not evaluated when the first returns true.
func Or[T any](p0, p1 Pred[T]) Pred[T] {
	return func(v T) bool {
		return p0(v) || p1(v)
	}
}
