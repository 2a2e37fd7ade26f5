package lambda

import "testing"

func BenchmarkChurchRoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if ChurchDecode(ChurchEncode(64)) != 64 {
			b.Fatal("round-trip failed")
		}
	}
}

func BenchmarkChurchAdd(b *testing.B) {
	n, m := ChurchEncode(20), ChurchEncode(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ChurchDecode(Add.Apply(n).Apply(m)) != 50 {
			b.Fatal("add failed")
		}
	}
}

func BenchmarkPipelineIdentity(b *testing.B) {
	input := []uint{3, 1, 4, 1, 5, 9, 2, 6}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count := 0
		RunOnIntegerSequence(input, I, func(uint) { count++ })
		if count != len(input) {
			b.Fatal("pipeline lost elements")
		}
	}
}
