// Package lambda implements an evaluator for the untyped lambda calculus.
//
// This package contains:
//   - Expression: lambda terms as first-class Go values
//   - The standard combinator library (booleans, Y, SKI, Church
//     arithmetic, Scott lists)
//   - Codecs between native naturals and Church numerals, and between
//     native slices and Scott-encoded lists
//   - RunOnIntegerSequence: running an arbitrary lambda term as a pure
//     transformation over a sequence of naturals
//
// Every value in the calculus is a function; numerals, booleans and lists
// are all Expressions that encode their meaning in how they behave when
// applied to further arguments. There is no surface syntax and no parser:
// programs are assembled directly from the combinator library and
// [NewExpression].
package lambda

// Expression represents a term of the untyped lambda calculus: a value
// that, given another Expression, produces another Expression.
//
// Expressions are immutable. Application never mutates the receiver or
// the argument; it produces a new Expression. Captured values are
// snapshotted at construction, so no Expression can observe later changes
// to its environment.
//
// An Expression is created either with [NewExpression] or as the result
// of [Expression.Apply]. The zero Expression is not a valid term and must
// not be applied.
type Expression struct {
	fn func(Expression) Expression
}

// NewExpression builds an Expression from a native unary mapping.
//
// The mapping is the body of the term; it runs only when the Expression
// is eventually forced, not at construction time.
func NewExpression(fn func(Expression) Expression) Expression {
	return Expression{fn: fn}
}

// Apply applies e to arg by name: it does not run the underlying mapping
// now, but returns a new Expression that performs the reduction when it
// is itself applied.
//
// This one-step deferral is what makes the fixed-point combinator [Y]
// expressible on top of Go's eager function calls: a chain of Apply calls
// builds up suspended reductions, and the innermost bodies only run once
// the overall result is forced. Application is total; applying a term
// that does not have the shape its consumer expects yields a structurally
// valid but meaningless Expression, never an error.
func (e Expression) Apply(arg Expression) Expression {
	return Expression{fn: func(next Expression) Expression {
		return e.invoke(arg).invoke(next)
	}}
}

// invoke applies e to arg by value, running the underlying mapping
// immediately and returning the true one-step reduction result.
//
// Only the combinator and codec code in this package may force a
// reduction eagerly: exposing invoke would let callers bypass the
// deferral that Apply guarantees, and a direct self-application through
// it diverges.
func (e Expression) invoke(arg Expression) Expression {
	return e.fn(arg)
}
