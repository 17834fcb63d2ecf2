package funcy

import "iter"

// Iterator yields elements one at a time. Next returns the next element and
// true, or the zero value and false once the sequence is exhausted. Adapters
// built on an Iterator do no work until their consumer calls Next.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEnded is an Iterator with a known remaining length that can also be
// consumed from the back.
type DoubleEnded[T any] interface {
	Iterator[T]
	// NextBack yields the last remaining element
	NextBack() (T, bool)
	// Len reports how many elements remain
	Len() int
}

// NextFunc adapts a plain function into an Iterator. Useful for ad-hoc and
// infinite sequences.
type NextFunc[T any] func() (T, bool)

func (f NextFunc[T]) Next() (T, bool) {
	return f()
}

// SliceIter iterates a slice from both ends without copying it.
type SliceIter[T any] struct {
	items []T
	front int
	back  int
}

func FromSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items, back: len(items)}
}

func (it *SliceIter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	v := it.items[it.front]
	it.front++
	return v, true
}

func (it *SliceIter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--
	return it.items[it.back], true
}

func (it *SliceIter[T]) Len() int {
	return it.back - it.front
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Values exposes it as a range-over-func sequence.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq adapts a range-over-func sequence into an Iterator. Call Stop when
// abandoning the iterator before exhaustion.
func FromSeq[T any](s iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(s)
	return &SeqIter[T]{next: next, stop: stop}
}

type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *SeqIter[T]) Next() (T, bool) {
	return it.next()
}

func (it *SeqIter[T]) Stop() {
	it.stop()
}
