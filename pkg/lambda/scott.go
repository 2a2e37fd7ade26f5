package lambda

// ScottEncode encodes a sequence of Expressions as one Scott-encoded
// list: a right fold of [Cons] over the elements, seeded with
// [EmptyList].
func ScottEncode(elements []Expression) Expression {
	list := EmptyList
	for i := len(elements) - 1; i >= 0; i-- {
		list = Cons.Apply(elements[i]).Apply(list)
	}
	return list
}

// ScottDecode decomposes a Scott-encoded list, calling yield once per
// element in list order.
//
// It builds a recursive uncons-and-emit routine with [Y]: at each step it
// forces [IsEmpty] on the current list; if empty the recursion halts,
// otherwise it emits [Car] of the list and recurses on [Cdr]. The
// top-level call is driven to completion with the same double forcing
// idiom as [ChurchDecode].
//
// The behavior is defined only for terms that behave as Scott lists;
// anything else yields whatever the probes observed, without error. A
// term encoding an unbounded list never returns.
func ScottDecode(list Expression, yield func(Expression)) {
	uncons := NewExpression(func(f Expression) Expression {
		return NewExpression(func(l Expression) Expression {
			return IsEmpty.invoke(l).
				invoke(EmptyList).
				invoke(NewExpression(func(next Expression) Expression {
					yield(Car.invoke(l))
					return f.invoke(Cdr.invoke(l)).invoke(next)
				}))
		})
	})
	Y.invoke(uncons).invoke(list).invoke(I).invoke(I)
}
