package lambda

// The standard combinator library. Each entry is a closed term defined
// purely through application; none has hidden state. They are plain
// package-level values so programs can be assembled by composing them
// with [Expression.Apply].

// Truth is the Church boolean true: λx y. x.
var Truth = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return x
	})
})

// Falsity is the Church boolean false: λx y. y.
var Falsity = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return y
	})
})

// Y is the fixed-point combinator: λf. (λx. f (x x)) (λx. f (x x)).
//
// The self-application is performed with a single eager invoke per
// unfolding; everything inside the body stays deferred. Without that
// asymmetry Y applied to any function would unfold forever before
// producing a usable result.
var Y = NewExpression(func(f Expression) Expression {
	g := NewExpression(func(x Expression) Expression {
		return f.Apply(x.Apply(x))
	})
	return g.invoke(g)
})

// I is the identity combinator: λx. x.
var I = NewExpression(func(x Expression) Expression {
	return x
})

// K is the constant combinator: λx y. x.
var K = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return x
	})
})

// S is the substitution combinator: λx y z. x z (y z).
var S = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return NewExpression(func(z Expression) Expression {
			return x.Apply(z).Apply(y.Apply(z))
		})
	})
})

// Iota is the iota combinator: λf. f S K. Both S and K (and hence any
// term) are derivable from it alone.
var Iota = NewExpression(func(f Expression) Expression {
	return f.Apply(S).Apply(K)
})

// Succ is the successor of a Church numeral: λn f x. f (n f x).
var Succ = NewExpression(func(n Expression) Expression {
	return NewExpression(func(f Expression) Expression {
		return NewExpression(func(x Expression) Expression {
			return f.Apply(n.Apply(f).Apply(x))
		})
	})
})

// Pred is the predecessor of a Church numeral, via the pair-rotation
// trick: iterate n times a step that rotates an (ignore, value) pair,
// seeded with (K x, x), and keep the value before the last rotation.
// Pred of 0 is 0.
var Pred = NewExpression(func(n Expression) Expression {
	return NewExpression(func(f Expression) Expression {
		return NewExpression(func(x Expression) Expression {
			return n.Apply(
				NewExpression(func(g Expression) Expression {
					return NewExpression(func(h Expression) Expression {
						return h.Apply(g.Apply(f))
					})
				})).Apply(
				NewExpression(func(y Expression) Expression {
					return x
				})).Apply(
				NewExpression(func(y Expression) Expression {
					return y
				}))
		})
	})
})

// Add adds two Church numerals: λn m. n Succ m.
var Add = NewExpression(func(n Expression) Expression {
	return NewExpression(func(m Expression) Expression {
		return n.Apply(Succ).Apply(m)
	})
})

// Sub subtracts the second Church numeral from the first: λn m. m Pred n.
// Since Pred saturates at 0, so does Sub.
var Sub = NewExpression(func(n Expression) Expression {
	return NewExpression(func(m Expression) Expression {
		return m.Apply(Pred).Apply(n)
	})
})

// Mult multiplies two Church numerals: λn m. n (Add m) 0.
var Mult = NewExpression(func(n Expression) Expression {
	return NewExpression(func(m Expression) Expression {
		return n.Apply(Add.Apply(m)).Apply(ChurchEncode(0))
	})
})

// IsZero tests a Church numeral for zero: λn. n (λx. Falsity) Truth.
var IsZero = NewExpression(func(n Expression) Expression {
	return n.Apply(
		NewExpression(func(x Expression) Expression {
			return Falsity
		})).Apply(Truth)
})

// Cons builds a Scott pair: λa b f. f a b.
var Cons = NewExpression(func(a Expression) Expression {
	return NewExpression(func(b Expression) Expression {
		return NewExpression(func(f Expression) Expression {
			return f.Apply(a).Apply(b)
		})
	})
})

// Car selects the head of a Scott pair: λp. p (λx y. x).
var Car = NewExpression(func(p Expression) Expression {
	return p.Apply(
		NewExpression(func(x Expression) Expression {
			return NewExpression(func(y Expression) Expression {
				return x
			})
		}))
})

// Cdr selects the tail of a Scott pair: λp. p (λx y. y).
var Cdr = NewExpression(func(p Expression) Expression {
	return p.Apply(
		NewExpression(func(x Expression) Expression {
			return NewExpression(func(y Expression) Expression {
				return y
			})
		}))
})

// EmptyList is the Scott-encoded empty list: λf x y. x. Under [IsEmpty]
// it behaves as [Truth], where any Cons cell behaves as [Falsity].
var EmptyList = NewExpression(func(f Expression) Expression {
	return NewExpression(func(x Expression) Expression {
		return NewExpression(func(y Expression) Expression {
			return x
		})
	})
})

// IsEmpty tests a Scott list for emptiness: λl. l (λx y. Falsity).
var IsEmpty = NewExpression(func(l Expression) Expression {
	return l.Apply(
		NewExpression(func(x Expression) Expression {
			return NewExpression(func(y Expression) Expression {
				return Falsity
			})
		}))
})
