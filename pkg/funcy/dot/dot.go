package dot

import "github.com/Inityx/funcy/pkg/funcy"

// Call invokes fn as a value-receiver method of recv: Call(x, f) == f(x).
func Call[T, B any](recv T, fn func(T) B) B {
	return fn(recv)
}

// CallRef invokes fn on the value recv points at. fn receives the value, not
// the pointer, so the caller's variable is left unchanged.
func CallRef[T, B any](recv *T, fn func(T) B) B {
	return fn(*recv)
}

// CallMut invokes fn as a pointer-receiver method of the value recv points
// at; fn may mutate it in place.
func CallMut[T, B any](recv *T, fn func(*T) B) B {
	return fn(recv)
}

// CallDeref invokes fn on recv's indirection target. fn receives the target
// value, so the target is left unchanged.
func CallDeref[T funcy.Dereferencer[U], U, B any](recv T, fn func(U) B) B {
	return fn(*recv.Deref())
}

// CallDerefMut invokes fn on recv's indirection target through a pointer;
// fn may mutate the target in place.
func CallDerefMut[T funcy.Dereferencer[U], U, B any](recv T, fn func(*U) B) B {
	return fn(recv.Deref())
}
