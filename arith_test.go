package bignum

import (
	"fmt"
	"math/big"
	"math/bits"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAdc(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c   uint64
		sum, cout uint64
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0},
		{1, 2, 0, 3, 0},
		{maxUint64, 1, 0, 0, 1},
		{maxUint64, 0, 1, 0, 1},
		{maxUint64, maxUint64, 0, maxUint64 - 1, 1},
		{maxUint64, maxUint64, 1, maxUint64, 1},
		{1 << 63, 1 << 63, 0, 0, 1},
		{1 << 63, 1<<63 - 1, 0, maxUint64, 0},
		{1 << 63, 1<<63 - 1, 1, 0, 1},
		{1<<63 - 1, 1<<63 - 1, 1, maxUint64, 0},
	} {
		t.Run(fmt.Sprintf("%d/%#x+%#x+%d", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			sum, cout := adc(tc.a, tc.b, tc.c)
			tt.MustEqual(tc.sum, sum)
			tt.MustEqual(tc.cout, cout)
		})
	}
}

func TestAdcRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	source := &rando{rng: globalRNG}

	for i := 0; i < 50000; i++ {
		a, b, c := source.limb(), source.limb(), uint64(source.rng.Intn(2))
		sum, cout := adc(a, b, c)
		esum, ecout := bits.Add64(a, b, c)
		tt.MustEqual(esum, sum, "%#x+%#x+%d", a, b, c)
		tt.MustEqual(ecout, cout, "%#x+%#x+%d", a, b, c)
	}
}

func TestMuladd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, acc uint64
		lo, hi    uint64
	}{
		{0, 0, 0, 0, 0},
		{0, 0, maxUint64, maxUint64, 0},
		{2, 3, 4, 10, 0},
		{maxUint64, 2, 0, maxUint64 - 1, 1},
		{1 << 32, 1 << 32, 0, 0, 1},
		{maxUint64, maxUint64, 0, 1, maxUint64 - 1},

		// The largest possible result: (2^64-1)^2 + (2^64-1) == (2^64-1) << 64
		{maxUint64, maxUint64, maxUint64, 0, maxUint64},
	} {
		t.Run(fmt.Sprintf("%d/%#x*%#x+%#x", idx, tc.a, tc.b, tc.acc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			lo, hi := muladd(tc.a, tc.b, tc.acc)
			tt.MustEqual(tc.lo, lo)
			tt.MustEqual(tc.hi, hi)
		})
	}
}

func TestMuladdRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	source := &rando{rng: globalRNG}

	for i := 0; i < 50000; i++ {
		a, b, acc := source.limb(), source.limb(), source.limb()
		lo, hi := muladd(a, b, acc)

		rb := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		rb.Add(rb, new(big.Int).SetUint64(acc))
		tt.MustEqual(bigHex(rb), bigHex(bigFromLimbs([]uint64{lo, hi})), "%#x*%#x+%#x", a, b, acc)
	}
}

func TestAddLimbsGrowth(t *testing.T) {
	for idx, tc := range []struct {
		x, y []uint64
		out  []uint64
	}{
		{nil, nil, []uint64{}},
		{[]uint64{1}, nil, []uint64{1}},
		{nil, []uint64{1}, []uint64{1}},
		{[]uint64{maxUint64}, []uint64{1}, []uint64{0, 1}},
		{[]uint64{1}, []uint64{maxUint64, maxUint64}, []uint64{0, 0, 1}},
		{[]uint64{maxUint64, maxUint64}, []uint64{maxUint64, maxUint64}, []uint64{maxUint64 - 1, maxUint64, 1}},
		{[]uint64{0, 0}, []uint64{0}, []uint64{0, 0}},
	} {
		t.Run(fmt.Sprintf("%d/%x+%x", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, addLimbs(tc.x, tc.y))
		})
	}
}

func TestSubLimbsLength(t *testing.T) {
	for idx, tc := range []struct {
		x, y []uint64
		out  []uint64
	}{
		{nil, nil, []uint64{}},
		{[]uint64{5}, []uint64{3}, []uint64{2}},
		{[]uint64{3}, []uint64{5}, []uint64{maxUint64 - 1}},
		{[]uint64{0, 1}, []uint64{1}, []uint64{maxUint64, 0}},
		{[]uint64{1}, []uint64{0, 1}, []uint64{1, maxUint64}},
		{nil, []uint64{1}, []uint64{maxUint64}},
		{[]uint64{7, 7, 7}, []uint64{7, 7, 7}, []uint64{0, 0, 0}},
	} {
		t.Run(fmt.Sprintf("%d/%x-%x", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, subLimbs(tc.x, tc.y))
		})
	}
}

func TestMulLimbsTopLimb(t *testing.T) {
	// All-ones operands produce the longest carry chains, so every row's top
	// limb write lands next to a fully populated partial product.
	for xn := 1; xn <= 6; xn++ {
		for yn := 1; yn <= 6; yn++ {
			t.Run(fmt.Sprintf("%dx%d", xn, yn), func(t *testing.T) {
				tt := assert.WrapTB(t)
				x, y := make([]uint64, xn), make([]uint64, yn)
				for i := range x {
					x[i] = maxUint64
				}
				for i := range y {
					y[i] = maxUint64
				}

				z := mulLimbs(x, y)
				tt.MustEqual(xn+yn, len(z))

				rb := new(big.Int).Mul(bigFromLimbs(x), bigFromLimbs(y))
				tt.MustEqual(bigHex(rb), bigHex(bigFromLimbs(z)))
			})
		}
	}
}

func TestMulLimbsEmpty(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual([]uint64{}, mulLimbs(nil, nil))
	tt.MustEqual([]uint64{0, 0}, mulLimbs(nil, []uint64{1, 2}))
	tt.MustEqual([]uint64{0, 0, 0}, mulLimbs([]uint64{1, 2, 3}, nil))
}

func BenchmarkAdc(b *testing.B) {
	var c uint64
	for i := 0; i < b.N; i++ {
		BenchUint64Result, c = adc(BenchUint641, BenchUint642, c)
	}
}

func BenchmarkMuladd(b *testing.B) {
	var hi uint64
	for i := 0; i < b.N; i++ {
		BenchUint64Result, hi = muladd(BenchUint641, BenchUint642, hi)
	}
}
