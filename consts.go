package bignum

const (
	maxUint64 = 1<<64 - 1

	// limbBits is the width of a single limb; limbHexDigits is the number of
	// hex characters needed to render one.
	limbBits      = 64
	limbHexDigits = limbBits / 4

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zeroNumber Number
)
