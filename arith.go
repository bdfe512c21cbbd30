package bignum

import (
	"math/bits"
)

// adc returns the sum of a, b and carry modulo 2^64, along with the carry
// out of the top bit. carry must be 0 or 1; carryOut is always 0 or 1.
func adc(a, b, carry uint64) (sum, carryOut uint64) {
	sum = a + b + carry

	// Adapted from Warren, Hacker's Delight, p. 31. The top bit is set if both
	// inputs had it set, or if either did and the sum lost it:
	carryOut = ((a & b) | ((a | b) &^ sum)) >> (limbBits - 1)
	return sum, carryOut
}

// muladd returns a*b + acc split into its low and high limbs. The result
// can't overflow 128 bits: (2^64-1)^2 + (2^64-1) == (2^64-1) * 2^64.
func muladd(a, b, acc uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var c uint64
	lo, c = bits.Add64(lo, acc, 0)
	hi += c
	return lo, hi
}

// addLimbs returns x+y. A missing limb in the shorter operand reads as
// zero. If the top limbs carry, the result is one limb longer than the
// longer operand.
func addLimbs(x, y []uint64) []uint64 {
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make([]uint64, len(x), len(x)+1)

	var c uint64
	for i := range x {
		var yi uint64
		if i < len(y) {
			yi = y[i]
		}
		z[i], c = adc(x[i], yi, c)
	}

	if c != 0 {
		z = append(z, c)
	}
	return z
}

// subLimbs returns x-y modulo 2^(64*n), where n is the length of the longer
// operand, using x + ^y + 1. The result is always exactly n limbs long; the
// final carry is dropped.
func subLimbs(x, y []uint64) []uint64 {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}

	z := make([]uint64, n)

	var c uint64 = 1
	for i := 0; i < n; i++ {
		var xi, yi uint64
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		z[i], c = adc(xi, ^yi, c)
	}

	return z
}

// mulLimbs returns x*y using the schoolbook method. The result is always
// len(x)+len(y) limbs long and may carry high zero limbs.
func mulLimbs(x, y []uint64) []uint64 {
	z := make([]uint64, len(x)+len(y))

	for i, xi := range x {
		var mc, ac uint64 // multiply carry, add carry
		k := i

		for _, yj := range y {
			var lo uint64
			lo, mc = muladd(xi, yj, mc)
			z[k], ac = adc(lo, z[k], ac)
			k++
		}

		// z[i+len(y)] hasn't been written by any earlier row (row i-1 stops
		// at i-1+len(y)), and z[0:i+len(y)+1] holds a partial product that
		// is less than 2^(64*(i+len(y)+1)), so the top limb can be stored
		// directly without overflowing.
		z[k] = ac + mc
	}

	return z
}
