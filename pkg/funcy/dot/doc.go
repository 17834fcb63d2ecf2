// Package dot lets a free function or closure be invoked as though it were a
// method of a value, under each of the four passing modes:
//
// - Call: by value; the receiver is handed over
// - CallRef: the receiver is observed but cannot be mutated
// - CallMut: the receiver is borrowed mutably through a pointer
// - CallDeref/CallDerefMut: the same two modes applied to the receiver's
//   indirection target (via the funcy.Dereferencer capability)
//
// Each helper is pure forwarding: no validation, no effects of its own.
// Whatever the supplied function does — including panicking — happens
// exactly as if it had been called directly.
package dot
