// Package pred contains predicate types and modifiers for building test
// functions without writing negation closures by hand.
//
// Highlights:
// - Pred[T]: a single-argument boolean function over T
// - Not: invert a predicate's result while preserving its side effects
// - And/Or: lifted boolean combinators over predicates
//
// Not works with every calling discipline a predicate may have: a pure
// function, a stateful closure that mutates captured state on each call, or
// a one-shot closure that consumes what it captured. The wrapped predicate
// is invoked exactly once per call, so its effects land unchanged; only the
// boolean result is flipped.
package pred
