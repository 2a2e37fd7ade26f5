package lambda

// RunOnIntegerSequence runs a lambda term as a pure transformation over a
// sequence of naturals, calling yield once per output element in order.
//
// Each input is Church-encoded, the encodings are Scott-encoded into a
// single list term L, program is applied to L, and the result is Scott-
// then Church-decoded back to naturals. All transformation logic happens
// through calculus-level application; program receives no validation.
//
// program must be well-founded on the given input: the calculus is
// Turing-complete, so an unguarded recursive term can diverge, and
// recursion depth during decoding grows with the output list length.
// Callers needing liveness guarantees must bound their terms and inputs
// themselves.
func RunOnIntegerSequence(input []uint, program Expression, yield func(uint)) {
	encoded := make([]Expression, len(input))
	for i, n := range input {
		encoded[i] = ChurchEncode(n)
	}
	var decoded []Expression
	ScottDecode(program.Apply(ScottEncode(encoded)), func(e Expression) {
		decoded = append(decoded, e)
	})
	for _, e := range decoded {
		yield(ChurchDecode(e))
	}
}
