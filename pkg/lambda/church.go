package lambda

// ChurchEncode encodes a native natural as a Church numeral: a term that
// applies its first argument to its second exactly n times.
//
// n is bounded only by the host integer range.
func ChurchEncode(n uint) Expression {
	return NewExpression(func(f Expression) Expression {
		return NewExpression(func(x Expression) Expression {
			for i := uint(0); i < n; i++ {
				x = f.Apply(x)
			}
			return x
		})
	})
}

// ChurchDecode decodes a Church numeral back to a native natural.
//
// It value-calls e with a counting probe that increments a local counter
// and returns its argument unchanged, then forces the result with I
// twice. Two forcing applications are needed because each Apply defers
// exactly one step: the first flushes the deferred outer application, the
// second the innermost application of the probe.
//
// The result is meaningful only if e actually behaves as a Church
// numeral. Any other shape yields whatever count the probe happened to
// observe; this is undefined behavior, not an error.
func ChurchDecode(e Expression) uint {
	var decoded uint
	e.invoke(
		NewExpression(func(x Expression) Expression {
			decoded++
			return x
		})).
		invoke(I).
		invoke(I)
	return decoded
}
