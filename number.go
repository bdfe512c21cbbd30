package bignum

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Number is an arbitrary-precision unsigned integer stored as a sequence of
// 64-bit limbs, least significant limb first. The zero value is zero.
//
// Numbers are not normalised: a Number may carry high zero limbs (after Sub,
// Mul or NumberFromHex with leading zeros), so two Numbers with the same
// value can have different Len()s. Use Equal or Cmp to compare them, never
// reflect.DeepEqual or the raw limbs.
type Number struct {
	limbs []uint64
}

func NumberFrom64(v uint64) Number { return Number{limbs: []uint64{v}} }

// NumberFromLimbs creates a Number from limbs, least significant first. The
// slice is copied.
func NumberFromLimbs(limbs ...uint64) Number {
	if len(limbs) == 0 {
		return zeroNumber
	}
	out := make([]uint64, len(limbs))
	copy(out, limbs)
	return Number{limbs: out}
}

// NumberFromBigInt creates a Number from a big.Int. Negative values can't be
// represented; they return zero and set accurate to 'false'.
func NumberFromBigInt(v *big.Int) (out Number, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) == 0 {
			return zeroNumber, true
		}
		limbs := make([]uint64, len(words))
		for i, w := range words {
			limbs[i] = uint64(w)
		}
		return Number{limbs: limbs}, true

	case 32:
		lw := len(words)
		if lw == 0 {
			return zeroNumber, true
		}
		limbs := make([]uint64, (lw+1)/2)
		for i, w := range words {
			limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return Number{limbs: limbs}, true

	default:
		panic("bignum: unsupported bit size")
	}
}

// Limbs returns a copy of the limbs of n, least significant first, including
// any high zero limbs.
func (n Number) Limbs() []uint64 {
	out := make([]uint64, len(n.limbs))
	copy(out, n.limbs)
	return out
}

// Len returns the number of limbs in n, including any high zero limbs.
func (n Number) Len() int { return len(n.limbs) }

// used returns the number of limbs in n once high zero limbs are ignored.
func (n Number) used() int {
	i := len(n.limbs)
	for i > 0 && n.limbs[i-1] == 0 {
		i--
	}
	return i
}

// trimmed returns n without its high zero limbs. The result shares n's
// backing array, so it must only be read.
func (n Number) trimmed() Number { return Number{limbs: n.limbs[:n.used()]} }

func (n Number) IsZero() bool { return n.used() == 0 }

// BitLen returns the length of the absolute value of n in bits. The bit
// length of 0 is 0.
func (n Number) BitLen() int {
	u := n.used()
	if u == 0 {
		return 0
	}
	return (u-1)*limbBits + bits.Len64(n.limbs[u-1])
}

func (n Number) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := make([]big.Word, len(n.limbs))
		for i, l := range n.limbs {
			words[i] = big.Word(l)
		}
		b.SetBits(words)

	case 32:
		words := make([]big.Word, len(n.limbs)*2)
		for i, l := range n.limbs {
			words[i*2] = big.Word(l & 0xFFFFFFFF)
			words[i*2+1] = big.Word(l >> 32)
		}
		b.SetBits(words)

	default:
		b.SetUint64(0)
		for i := len(n.limbs) - 1; i >= 0; i-- {
			var l big.Int
			l.SetUint64(n.limbs[i])
			b.Lsh(b, limbBits)
			b.Add(b, &l)
		}
	}
}

func (n Number) AsBigInt() (b *big.Int) {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

// Add returns n+m. The result is as long as the longer operand, plus one
// limb if the top limbs carry.
func (n Number) Add(m Number) Number {
	return Number{limbs: addLimbs(n.limbs, m.limbs)}
}

// Sub returns n-m. The result is exactly as long as the longer operand.
//
// Number has no negative form: if m is greater than n, Sub returns the
// unsigned wraparound value 2^(64*len) - (m - n), where len is the limb
// count of the longer operand. See Difference if you want the distance
// between two Numbers instead.
func (n Number) Sub(m Number) Number {
	return Number{limbs: subLimbs(n.limbs, m.limbs)}
}

// Mul returns n*m using schoolbook multiplication. The result is exactly
// n.Len()+m.Len() limbs long and may carry high zero limbs.
func (n Number) Mul(m Number) Number {
	return Number{limbs: mulLimbs(n.limbs, m.limbs)}
}

// Pow returns n**exp by square-and-multiply, consuming the bits of exp from
// the least significant end. Pow(0) is 1 for any n, including zero.
//
// Unlike Mul, the length of the result isn't fixed: high zero limbs are
// dropped from the operands before each multiplication, otherwise every
// squaring would double the limb count whether or not the value needed it.
func (n Number) Pow(exp uint64) Number {
	result := NumberFrom64(1)
	base := n.trimmed()

	for {
		if exp&1 == 1 {
			result = result.trimmed().Mul(base)
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base = base.Mul(base).trimmed()
	}

	return result
}

// Cmp compares n and m by value and returns:
//
//	-1 if n <  m
//	 0 if n == m
//	+1 if n >  m
func (n Number) Cmp(m Number) int {
	nu, mu := n.used(), m.used()
	if nu > mu {
		return 1
	} else if nu < mu {
		return -1
	}
	for i := nu - 1; i >= 0; i-- {
		if n.limbs[i] > m.limbs[i] {
			return 1
		} else if n.limbs[i] < m.limbs[i] {
			return -1
		}
	}
	return 0
}

// Equal reports whether n and m have the same value, regardless of any high
// zero limbs.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

func (n Number) GreaterThan(m Number) bool {
	return n.Cmp(m) > 0
}

func (n Number) GreaterOrEqualTo(m Number) bool {
	return n.Cmp(m) >= 0
}

func (n Number) LessThan(m Number) bool {
	return n.Cmp(m) < 0
}

func (n Number) LessOrEqualTo(m Number) bool {
	return n.Cmp(m) <= 0
}

// MarshalText encodes n using Hex(), so zero is encoded as empty text.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.Hex()), nil
}

func (n *Number) UnmarshalText(bts []byte) (err error) {
	v, err := NumberFromHex(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.Hex() + `"`), nil
}

func (n *Number) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := NumberFromHex(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
