// Package programs provides ready-made lambda terms for
// [lambda.RunOnIntegerSequence].
//
// Each program is a closed term assembled purely from the combinator
// library: it receives the Scott-encoded list of Church numerals built by
// the pipeline and must produce another Scott-encoded list of Church
// numerals. Recursive programs are built with [lambda.Y]; their recursion
// depth at decode time grows with the input length.
//
// # Example
//
//	var out []uint
//	lambda.RunOnIntegerSequence([]uint{1, 2, 3, 4}, programs.Sum, func(n uint) {
//	    out = append(out, n)
//	})
//	// out == []uint{10}
package programs

import (
	"sort"

	"github.com/sandrolain/golambda/pkg/lambda"
)

func term(fn func(lambda.Expression) lambda.Expression) lambda.Expression {
	return lambda.NewExpression(fn)
}

// branch selects between the empty and cons cases of a Scott list. Both
// cases are only constructed here, never evaluated; selection happens
// when the result is eventually forced.
func branch(l, whenEmpty, whenCons lambda.Expression) lambda.Expression {
	return lambda.IsEmpty.Apply(l).Apply(whenEmpty).Apply(whenCons)
}

// mapTerm builds the term mapping fn over every element of a Scott list:
// Y (λm l. isEmpty l ? [] : cons (fn (car l)) (m (cdr l))).
func mapTerm(fn lambda.Expression) lambda.Expression {
	return lambda.Y.Apply(term(func(m lambda.Expression) lambda.Expression {
		return term(func(l lambda.Expression) lambda.Expression {
			return branch(l,
				lambda.EmptyList,
				lambda.Cons.
					Apply(fn.Apply(lambda.Car.Apply(l))).
					Apply(m.Apply(lambda.Cdr.Apply(l))))
		})
	}))
}

// foldTerm builds the term folding step over a Scott list from the right,
// seeded with zero: Y (λf l. isEmpty l ? zero : step (car l) (f (cdr l))).
func foldTerm(step, zero lambda.Expression) lambda.Expression {
	return lambda.Y.Apply(term(func(f lambda.Expression) lambda.Expression {
		return term(func(l lambda.Expression) lambda.Expression {
			return branch(l,
				zero,
				step.
					Apply(lambda.Car.Apply(l)).
					Apply(f.Apply(lambda.Cdr.Apply(l))))
		})
	}))
}

// single wraps a list-to-numeral term into a list-to-list program whose
// output is the single-element list holding the numeral.
func single(fn lambda.Expression) lambda.Expression {
	return term(func(l lambda.Expression) lambda.Expression {
		return lambda.Cons.Apply(fn.Apply(l)).Apply(lambda.EmptyList)
	})
}

// Identity leaves the input sequence unchanged.
var Identity = lambda.I

// Sum reduces the input to a single-element sequence holding the sum of
// its elements; the empty input sums to [0].
var Sum = single(foldTerm(lambda.Add, lambda.ChurchEncode(0)))

// Length reduces the input to a single-element sequence holding its
// length.
var Length = single(foldTerm(
	term(func(x lambda.Expression) lambda.Expression {
		return term(func(acc lambda.Expression) lambda.Expression {
			return lambda.Succ.Apply(acc)
		})
	}),
	lambda.ChurchEncode(0)))

// MapSucc replaces every element with its successor.
var MapSucc = mapTerm(lambda.Succ)

// MapDouble doubles every element.
var MapDouble = mapTerm(lambda.Mult.Apply(lambda.ChurchEncode(2)))

// Head reduces the input to the single-element sequence holding its first
// element. Like everything in the calculus it performs no validation: on
// an empty input the decoded result is undefined.
var Head = single(term(func(l lambda.Expression) lambda.Expression {
	return lambda.Car.Apply(l)
}))

var byName = map[string]lambda.Expression{
	"identity": Identity,
	"sum":      Sum,
	"length":   Length,
	"succ":     MapSucc,
	"double":   MapDouble,
	"head":     Head,
}

// ByName returns the named program, or false if the name is unknown.
func ByName(name string) (lambda.Expression, bool) {
	p, ok := byName[name]
	return p, ok
}

// Names returns the published program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
