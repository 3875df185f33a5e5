package bignum

import (
	"math/big"
)

// Capacity is the number of limbs every BigNum holds. Len may never exceed
// it.
const Capacity = 32

const (
	// Three-way results returned by Compare and BigNum.Cmp.
	CmpGreater = 1
	CmpEqual   = 0
	CmpLess    = -1

	// CmpErrNil is returned by Compare if either argument is nil. It lies
	// outside {-1, 0, 1} so it can never be mistaken for an ordering.
	CmpErrNil = minInt
)

const (
	maxUint64 = 1<<64 - 1

	limbBits = 64

	intSize = 32 << (^uint(0) >> 63)
	minInt  = -1 << (intSize - 1)
)

var (
	MaxBigNum = maxBigNum()

	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)

	// maxBigBigNum is (1 << (64 * Capacity)) - 1:
	maxBigBigNum = new(big.Int).Sub(new(big.Int).Lsh(big1, limbBits*Capacity), big1)
)

func maxBigNum() (out BigNum) {
	for i := range out.Limbs {
		out.Limbs[i] = maxUint64
	}
	out.Len = Capacity
	return out
}
