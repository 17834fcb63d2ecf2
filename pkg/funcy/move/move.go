package move

import "github.com/Inityx/funcy/pkg/funcy"

// FilterIter lazily yields the source elements whose clone satisfies pred.
//
// Created by Filter. Not restartable: it consumes the source as it goes.
type FilterIter[T funcy.Cloner[T]] struct {
	src  funcy.Iterator[T]
	pred func(T) bool
}

// Filter adapts src into a sequence of the elements for which pred, given a
// duplicate, returns true, in source order. pred may consume its argument
// freely; the yielded element is always the original.
func Filter[T funcy.Cloner[T]](src funcy.Iterator[T], pred func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{src: src, pred: pred}
}

func (it *FilterIter[T]) Next() (T, bool) {
	for {
		v, ok := it.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if it.pred(v.Clone()) {
			return v, true
		}
	}
}

// Find scans src in order, duplicating and testing each element, and returns
// the first original element whose duplicate satisfies pred. Stops pulling
// from src on the first match.
func Find[T funcy.Cloner[T]](src funcy.Iterator[T], pred func(T) bool) (T, bool) {
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		if pred(v.Clone()) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether any element of src satisfies pred. Elements are handed
// to pred directly. Short-circuits true on the first match; false when src
// is exhausted.
func Any[T any](src funcy.Iterator[T], pred func(T) bool) bool {
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element of src satisfies pred. Elements are
// handed to pred directly. Short-circuits false on the first non-match; true
// when src is exhausted.
func All[T any](src funcy.Iterator[T], pred func(T) bool) bool {
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Position returns the zero-based index of the first element of src
// satisfying pred. Elements are handed to pred directly.
func Position[T any](src funcy.Iterator[T], pred func(T) bool) (int, bool) {
	for i := 0; ; i++ {
		v, ok := src.Next()
		if !ok {
			return 0, false
		}
		if pred(v) {
			return i, true
		}
	}
}

// RPosition scans src from the back and returns the index, in forward order,
// of the last element satisfying pred. Requires a double-ended source with a
// known length.
func RPosition[T any](src funcy.DoubleEnded[T], pred func(T) bool) (int, bool) {
	for {
		i := src.Len() - 1
		v, ok := src.NextBack()
		if !ok {
			return 0, false
		}
		if pred(v) {
			return i, true
		}
	}
}
