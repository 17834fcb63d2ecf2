// Package bind pre-binds a receiver to a two-argument operation, producing a
// reusable unary function — the missing piece for feeding methods to
// combinators that expect a function of one argument.
//
// Two binding forms exist, chosen at the call site:
// - Var/VarEffect: bind a variable through a pointer; every call of the
//   bound function re-borrows the variable and so observes its then-current
//   value
// - Expr/ExprEffect: bind a value; the receiver expression at the call site
//   is evaluated exactly once at bind time, and every subsequent call
//   operates on that one captured value
//
// The Effect variants cover operations with no return value, such as a
// container's Push.
package bind
