package lambda

import "testing"

func TestApplyIsDeferred(t *testing.T) {
	ran := false
	e := NewExpression(func(x Expression) Expression {
		ran = true
		return x
	})

	deferred := e.Apply(I)
	if ran {
		t.Fatal("Apply ran the body eagerly; it must defer by one step")
	}

	deferred.invoke(I)
	if !ran {
		t.Fatal("forcing the deferred application did not run the body")
	}
}

func TestInvokeIsEager(t *testing.T) {
	ran := false
	e := NewExpression(func(x Expression) Expression {
		ran = true
		return x
	})

	e.invoke(I)
	if !ran {
		t.Fatal("invoke must run the body immediately")
	}
}

func TestApplicationDoesNotMutate(t *testing.T) {
	two := ChurchEncode(2)

	// Applying Succ produces a new value; the original must be untouched.
	three := Succ.Apply(two)

	if got := ChurchDecode(three); got != 3 {
		t.Errorf("Succ 2 = %d, want 3", got)
	}
	if got := ChurchDecode(two); got != 2 {
		t.Errorf("original numeral changed to %d after application, want 2", got)
	}
}

func TestDeferredChainsCollapseUnderForcing(t *testing.T) {
	// A long chain of identity applications stays suspended until forced,
	// then reduces all the way through.
	e := ChurchEncode(5)
	for i := 0; i < 50; i++ {
		e = I.Apply(e)
	}
	if got := ChurchDecode(e); got != 5 {
		t.Errorf("I^50 5 = %d, want 5", got)
	}
}
