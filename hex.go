package bignum

import (
	"fmt"
	"unicode/utf8"
)

const upperHexDigits = "0123456789ABCDEF"

// ParseError is returned by NumberFromHex when the input contains a
// character outside [0-9A-Fa-f].
type ParseError struct {
	Input  string
	Offset int  // Byte offset of the first invalid character
	Char   rune // The invalid character, or utf8.RuneError if not valid UTF-8
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bignum: invalid hex digit %q at offset %d in %q", e.Char, e.Offset, e.Input)
}

// NumberFromHex creates a Number from a big-endian hexadecimal string: most
// significant digit first, no "0x" prefix, no sign and no separators. Upper
// and lower case digits are both accepted.
//
// The empty string is zero. Leading zeros are kept as high zero limbs, which
// does not affect the value.
//
// If s contains anything that isn't a hex digit, a *ParseError is returned
// along with the zero Number.
func NumberFromHex(s string) (out Number, err error) {
	ln := len(s)
	if ln == 0 {
		return zeroNumber, nil
	}

	limbs := make([]uint64, (ln+limbHexDigits-1)/limbHexDigits)

	// Limbs are counted from the least significant (rightmost) digit. Each
	// run of limbHexDigits characters becomes one limb; whatever is left over
	// at the front becomes the top limb.
	for i := 0; i < ln; i++ {
		d := hexDigitValue(s[i])
		if d < 0 {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return zeroNumber, &ParseError{Input: s, Offset: i, Char: r}
		}
		pos := ln - 1 - i
		limbs[pos/limbHexDigits] |= uint64(d) << (4 * uint(pos%limbHexDigits))
	}

	return Number{limbs: limbs}, nil
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// Hex returns n as an uppercase hexadecimal string with no prefix and no
// leading zeros.
//
// Zero, including a Number with high zero limbs and no other bits set, is
// formatted as the empty string rather than "0". Use String() if you want
// "0".
func (n Number) Hex() string {
	if len(n.limbs) == 0 {
		return ""
	}

	out := make([]byte, len(n.limbs)*limbHexDigits)
	pos := 0
	for i := len(n.limbs) - 1; i >= 0; i-- {
		limb := n.limbs[i]
		for shift := limbBits - 4; shift >= 0; shift -= 4 {
			out[pos] = upperHexDigits[(limb>>uint(shift))&0xF]
			pos++
		}
	}

	start := 0
	for start < len(out) && out[start] == '0' {
		start++
	}
	return string(out[start:])
}

func (n Number) String() string {
	if s := n.Hex(); s != "" {
		return s
	}
	return "0"
}

// Format implements fmt.Formatter. Only the hex verbs (%x, %X) and the
// string verbs (%s, %v) are supported. %x and %X follow Hex(), so zero is
// empty; the '#' flag adds a "0x" or "0X" prefix.
func (n Number) Format(s fmt.State, c rune) {
	switch c {
	case 'X', 'x':
		out := n.Hex()
		if c == 'x' {
			out = lowerHex(out)
		}
		if s.Flag('#') {
			if c == 'x' {
				out = "0x" + out
			} else {
				out = "0X" + out
			}
		}
		fmt.Fprint(s, out)

	case 's', 'v':
		fmt.Fprint(s, n.String())

	default:
		fmt.Fprintf(s, "%%!%c(bignum.Number=%s)", c, n.String())
	}
}

func lowerHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
