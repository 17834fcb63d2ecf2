// Package ref provides lazy map adapters whose mapping function borrows each
// element instead of consuming it, in one of four modes:
//
// - Map: the function receives the element value and cannot reach the
//   original; pairs with value-receiver method expressions
// - MapMut: the function receives a pointer and may mutate the element in
//   place before it is discarded; pairs with pointer-receiver method
//   expressions
// - MapDeref/MapDerefMut: the same two modes applied to the element's
//   indirection target (via the funcy.Dereferencer capability) rather than
//   the element itself
//
// Every adapter produces exactly one output per input, in order, pulling
// from the source only as the output is pulled, and never buffers more than
// the element in flight. The borrowed element is discarded after mapping;
// an in-place mutation is observable only through the function's return
// value.
package ref
