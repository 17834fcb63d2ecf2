package funcy

// Cloner is the duplication capability. Clone returns an independent copy
// sufficient for testing without disturbing the original.
type Cloner[T any] interface {
	Clone() T
}

// Dereferencer exposes exactly one level of indirection to an underlying
// target value.
type Dereferencer[T any] interface {
	Deref() *T
}

// Box is the simplest Dereferencer: an owning pointer around a value.
type Box[T any] struct {
	target *T
}

func NewBox[T any](v T) Box[T] {
	return Box[T]{target: &v}
}

func (b Box[T]) Deref() *T {
	return b.target
}
