package bind

// Var binds op to the variable v points at, producing a unary function. Each
// call re-borrows the variable, so op always sees its current value and any
// mutation op makes is visible to later calls and to the caller.
func Var[T, A, B any](v *T, op func(*T, A) B) func(A) B {
	return func(a A) B {
		return op(v, a)
	}
}

// VarEffect is Var for operations with no return value.
func VarEffect[T, A any](v *T, op func(*T, A)) func(A) {
	return func(a A) {
		op(v, a)
	}
}

// Expr binds op to recv, producing a unary function. The receiver expression
// is evaluated exactly once, at the Expr call site; every call of the bound
// function operates on that one value.
func Expr[T, A, B any](recv T, op func(T, A) B) func(A) B {
	return func(a A) B {
		return op(recv, a)
	}
}

// ExprEffect is Expr for operations with no return value.
func ExprEffect[T, A any](recv T, op func(T, A)) func(A) {
	return func(a A) {
		op(recv, a)
	}
}
