package ref

import "github.com/Inityx/funcy/pkg/funcy"

// MapIter lazily applies fn to each source element value.
//
// Created by Map.
type MapIter[T, B any] struct {
	src funcy.Iterator[T]
	fn  func(T) B
}

// Map adapts src into the sequence fn(src[0]), fn(src[1]), ... where fn
// observes each element without being able to mutate the original.
func Map[T, B any](src funcy.Iterator[T], fn func(T) B) *MapIter[T, B] {
	return &MapIter[T, B]{src: src, fn: fn}
}

func (it *MapIter[T, B]) Next() (B, bool) {
	v, ok := it.src.Next()
	if !ok {
		var zero B
		return zero, false
	}
	return it.fn(v), true
}

// MutIter lazily applies fn to a pointer to each source element.
//
// Created by MapMut.
type MutIter[T, B any] struct {
	src funcy.Iterator[T]
	fn  func(*T) B
}

// MapMut adapts src into the sequence fn(&src[0]), fn(&src[1]), ... where fn
// may mutate the element in place before it is discarded. The mutation never
// outlives the call: only fn's return value is yielded.
func MapMut[T, B any](src funcy.Iterator[T], fn func(*T) B) *MutIter[T, B] {
	return &MutIter[T, B]{src: src, fn: fn}
}

func (it *MutIter[T, B]) Next() (B, bool) {
	v, ok := it.src.Next()
	if !ok {
		var zero B
		return zero, false
	}
	return it.fn(&v), true
}

// DerefIter lazily applies fn to each element's indirection target.
//
// Created by MapDeref.
type DerefIter[T funcy.Dereferencer[U], U, B any] struct {
	src funcy.Iterator[T]
	fn  func(U) B
}

// MapDeref is Map applied one level of indirection down: fn receives the
// value each element points at rather than the element itself.
func MapDeref[T funcy.Dereferencer[U], U, B any](src funcy.Iterator[T], fn func(U) B) *DerefIter[T, U, B] {
	return &DerefIter[T, U, B]{src: src, fn: fn}
}

func (it *DerefIter[T, U, B]) Next() (B, bool) {
	v, ok := it.src.Next()
	if !ok {
		var zero B
		return zero, false
	}
	return it.fn(*v.Deref()), true
}

// DerefMutIter lazily applies fn to a pointer to each element's indirection
// target.
//
// Created by MapDerefMut.
type DerefMutIter[T funcy.Dereferencer[U], U, B any] struct {
	src funcy.Iterator[T]
	fn  func(*U) B
}

// MapDerefMut is MapMut applied one level of indirection down: fn may mutate
// the value each element points at.
func MapDerefMut[T funcy.Dereferencer[U], U, B any](src funcy.Iterator[T], fn func(*U) B) *DerefMutIter[T, U, B] {
	return &DerefMutIter[T, U, B]{src: src, fn: fn}
}

func (it *DerefMutIter[T, U, B]) Next() (B, bool) {
	v, ok := it.src.Next()
	if !ok {
		var zero B
		return zero, false
	}
	return it.fn(v.Deref()), true
}
