// Package golambda provides a minimal evaluator for the untyped lambda
// calculus.
//
// Lambda terms are first-class [lambda.Expression] values. The library
// ships a standard combinator set (booleans, the Y fixed-point
// combinator, the SKI basis, Church-numeral arithmetic, Scott lists) and
// bridges between native integer sequences and their calculus-level
// encodings, so an arbitrary term can be run as a pure transformation
// over a sequence of naturals.
//
// # Quick Start
//
//	// Church round-trip
//	n := golambda.Decode(golambda.Encode(42)) // 42
//
//	// Arithmetic entirely inside the calculus
//	five := lambda.Add.Apply(golambda.Encode(2)).Apply(golambda.Encode(3))
//	golambda.Decode(five) // 5
//
//	// Run a term over a native sequence
//	out := golambda.Run([]uint{1, 2, 3, 4}, programs.Sum) // [10]
//
// # Evaluation model
//
// Public application ([lambda.Expression.Apply]) is call-by-name: it
// defers the underlying computation by exactly one step, which is what
// makes the fixed-point combinator expressible on top of Go's eager
// function calls. The decoders know how many times to force a deferred
// value to observe its result.
//
// # Divergence
//
// The calculus is untyped and Turing-complete: an unguarded recursive
// term loops forever, and the library provides no guard, timeout or
// step bound. Callers must supply terms they know to be
// well-founded, or impose an external bound (see cmd/lambdaseq for an
// example of a caller-side timeout).
//
// # More Information
//
//   - Core calculus and codecs: github.com/sandrolain/golambda/pkg/lambda
//   - Ready-made programs: github.com/sandrolain/golambda/pkg/programs
package golambda

import (
	"github.com/sandrolain/golambda/pkg/lambda"
)

// Version returns the current version of GoLambda.
func Version() string {
	return "v0.1.0-dev"
}

// Encode encodes a native natural as a Church numeral.
func Encode(n uint) lambda.Expression {
	return lambda.ChurchEncode(n)
}

// Decode decodes a Church numeral back to a native natural. Behavior is
// undefined if e is not a Church numeral; see [lambda.ChurchDecode].
func Decode(e lambda.Expression) uint {
	return lambda.ChurchDecode(e)
}

// Run runs program over input through the encode/apply/decode pipeline
// and returns the resulting sequence.
//
// program must map a Scott-encoded list of Church numerals to another
// such list and must terminate on the given input; see
// [lambda.RunOnIntegerSequence].
func Run(input []uint, program lambda.Expression) []uint {
	out := make([]uint, 0, len(input))
	lambda.RunOnIntegerSequence(input, program, func(n uint) {
		out = append(out, n)
	})
	return out
}
