package bignum

// Difference subtracts the smaller of a and b from the larger. Unlike Sub,
// it never wraps.
func Difference(a, b Number) Number {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Larger returns the larger of a and b by value. If they are equal, a is
// returned.
func Larger(a, b Number) Number {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b by value. If they are equal, a is
// returned.
func Smaller(a, b Number) Number {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
