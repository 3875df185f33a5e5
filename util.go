package bignum

type RandSource interface {
	Uint64() uint64
}

// RandBigNum generates a normalized BigNum of exactly n limbs from an external
// source. It panics if n is outside [0, Capacity].
func RandBigNum(source RandSource, n int) (out BigNum) {
	if n < 0 || n > Capacity {
		panic("bignum: random limb count out of range")
	}
	for i := 0; i < n; i++ {
		out.Limbs[i] = source.Uint64()
	}
	for n > 0 && out.Limbs[n-1] == 0 {
		out.Limbs[n-1] = source.Uint64()
	}
	out.Len = n
	return out
}

// LargerBigNum returns whichever of a and b Compare orders higher, or a if
// they are equal. Both must be non-nil.
func LargerBigNum(a, b *BigNum) *BigNum {
	if compare(a, b) < 0 {
		return b
	}
	return a
}

// SmallerBigNum returns whichever of a and b Compare orders lower, or a if
// they are equal. Both must be non-nil.
func SmallerBigNum(a, b *BigNum) *BigNum {
	if compare(a, b) > 0 {
		return b
	}
	return a
}
