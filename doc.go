/*
Package bignum provides an arbitrary-precision unsigned integer (Number)
built from 64-bit limbs, supporting addition, subtraction, multiplication
and exponentiation.

Number is a value type; all operations return new values and never modify
their operands, so a Number can be shared between goroutines freely.

Simple example:

	a, _ := NumberFromHex("FFFFFFFFFFFFFFFF")
	b := NumberFrom64(1)
	fmt.Println(a.Add(b).Hex())
	// Output: 10000000000000000

Numbers can be created from a variety of sources:

	NumberFromHex(s string) (Number, error)
	NumberFrom64(v uint64) Number
	NumberFromLimbs(limbs ...uint64) Number
	NumberFromBigInt(v *big.Int) (out Number, accurate bool)

Subtraction does not produce negative values. If the subtrahend is larger
than the minuend, the result wraps modulo 2^(64*n), where n is the limb
count of the longer operand:

	one := NumberFrom64(1)
	fmt.Println(one.Sub(NumberFrom64(2)).Hex())
	// Output: FFFFFFFFFFFFFFFF

Hex() formats zero as the empty string; String() formats it as "0".

Number supports the following formatting and marshalling interfaces:

  - fmt.Formatter (%x, %X, %s, %v)
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package bignum
