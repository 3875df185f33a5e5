/*
Package bignum provides BigNum, an unsigned integer held in a fixed-capacity
array of 64-bit limbs with an explicit used-length, and a comparator for it.

BigNum is a plain value type. Callers own it and may fill the fields
directly; nothing in this package normalizes, grows or otherwise rewrites a
BigNum behind the caller's back.

Simple example:

	a, _ := FromLimbs(1, 1)           // 2^64 + 1
	b := FromUint64(math.MaxUint64)   // 2^64 - 1
	fmt.Println(Compare(&a, &b))
	// Output: 1

Compare returns CmpGreater (1), CmpEqual (0), CmpLess (-1), or CmpErrNil
(the minimum int) if either argument is nil. CompareChecked returns an
Ordering and ErrNilArgument instead of the sentinel.

Ordering is decided by Len first, then by limbs from the most-significant
down. A BigNum whose top limb is zero is therefore still "longer" than a
normalized one; call Normalize first if you need numeric ordering of
untrusted values.

BigNum can be created from a variety of sources:

	FromLimbs(limbs ...uint64) (BigNum, error)
	FromUint64(v uint64) BigNum
	FromBigInt(v *big.Int) (out BigNum, accurate bool)
	FromUint256(v *uint256.Int) BigNum
	FromString(s string) (out BigNum, accurate bool, err error)

BigNum supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bignum
