package bignum

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var (
	// ErrCapacity is returned when a value needs more than Capacity limbs.
	ErrCapacity = errors.New("bignum: value exceeds limb capacity")

	// ErrRange is returned when decoding a negative or oversized value.
	ErrRange = errors.New("bignum: value out of range")
)

// BigNum is an unsigned integer stored as Len little-endian 64-bit limbs.
// Limbs at or above Len are not part of the value.
//
// The zero value is 0. BigNum does not keep itself normalized: a caller is
// free to set Len past a zero top limb, and Compare will take Len at its word.
type BigNum struct {
	Limbs [Capacity]uint64
	Len   int
}

// FromLimbs copies limbs, least-significant first, into a BigNum with Len set
// to len(limbs). Zero limbs at the top are kept.
func FromLimbs(limbs ...uint64) (out BigNum, err error) {
	if len(limbs) > Capacity {
		return out, errors.Wrapf(ErrCapacity, "%d limbs", len(limbs))
	}
	copy(out.Limbs[:], limbs)
	out.Len = len(limbs)
	return out, nil
}

func FromUint64(v uint64) (out BigNum) {
	if v != 0 {
		out.Limbs[0] = v
		out.Len = 1
	}
	return out
}

// FromBigInt creates a normalized BigNum from a big.Int. Overflow truncates
// to MaxBigNum and sets accurate to 'false'. Negative numbers produce zero and
// also set accurate to 'false'.
func FromBigInt(v *big.Int) (out BigNum, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > limbBits*Capacity {
		return MaxBigNum, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		for i, w := range words {
			out.Limbs[i] = uint64(w)
		}
		out.Len = len(words)

	case 32:
		for i, w := range words {
			out.Limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		out.Len = (len(words) + 1) / 2

	default:
		panic("bignum: unsupported bit size")
	}

	return out, true
}

// FromUint256 creates a normalized BigNum from a uint256.Int.
func FromUint256(v *uint256.Int) (out BigNum) {
	for i := 0; i < len(v); i++ {
		out.Limbs[i] = v[i]
		if v[i] != 0 {
			out.Len = i + 1
		}
	}
	return out
}

// FromString creates a normalized BigNum from a decimal string. Overflow
// truncates to MaxBigNum and sets accurate to 'false'.
func FromString(s string) (out BigNum, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, errors.Errorf("bignum: string %q invalid", s)
	}
	out, accurate = FromBigInt(b)
	return out, accurate, nil
}

// Valid reports whether Len is within [0, Capacity].
func (u BigNum) Valid() bool { return u.Len >= 0 && u.Len <= Capacity }

// IsZero reports whether no limb below Len is set. A BigNum with Len > 0 and
// all-zero limbs is zero in value, but Compare still orders it by Len.
func (u BigNum) IsZero() bool {
	for i := 0; i < u.Len; i++ {
		if u.Limbs[i] != 0 {
			return false
		}
	}
	return true
}

// IsNormalized reports whether the top limb in use is non-zero, or Len is 0.
func (u BigNum) IsNormalized() bool {
	return u.Len == 0 || u.Limbs[u.Len-1] != 0
}

// Normalize returns a copy of u with zero top limbs dropped from Len.
func (u BigNum) Normalize() BigNum {
	for u.Len > 0 && u.Limbs[u.Len-1] == 0 {
		u.Len--
	}
	return u
}

// Words returns a copy of the limbs in use, least-significant first.
func (u BigNum) Words() []uint64 {
	out := make([]uint64, u.Len)
	copy(out, u.Limbs[:u.Len])
	return out
}

func (u BigNum) String() string {
	// Fast paths avoid big.Int for single-limb values.
	switch {
	case u.Len == 0:
		return "0"
	case u.Len == 1:
		return strconv.FormatUint(u.Limbs[0], 10)
	}
	return u.AsBigInt().String()
}

func (u BigNum) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u BigNum) IntoBigInt(b *big.Int) {
	n := u.Len

	switch intSize {
	case 64:
		bits := b.Bits()
		if cap(bits) < n {
			bits = make([]big.Word, n)
		}
		bits = bits[:n]
		for i := 0; i < n; i++ {
			bits[i] = big.Word(u.Limbs[i])
		}
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		if cap(bits) < n*2 {
			bits = make([]big.Word, n*2)
		}
		bits = bits[:n*2]
		for i := 0; i < n; i++ {
			bits[i*2] = big.Word(uint32(u.Limbs[i]))
			bits[i*2+1] = big.Word(u.Limbs[i] >> 32)
		}
		b.SetBits(bits)

	default:
		panic("bignum: unsupported bit size")
	}
}

func (u BigNum) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint256 truncates u to its low four limbs. accurate is false if any limb
// in use above those four is set.
func (u BigNum) AsUint256() (out *uint256.Int, accurate bool) {
	out = new(uint256.Int)
	accurate = true
	for i := 0; i < u.Len; i++ {
		if i < len(out) {
			out[i] = u.Limbs[i]
		} else if u.Limbs[i] != 0 {
			accurate = false
		}
	}
	return out, accurate
}

func (u BigNum) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *BigNum) UnmarshalText(bts []byte) (err error) {
	v, accurate, err := FromString(string(bts))
	if err != nil {
		return err
	}
	if !accurate {
		return errors.Wrapf(ErrRange, "unmarshal text %q", string(bts))
	}
	*u = v
	return nil
}

func (u BigNum) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *BigNum) UnmarshalJSON(bts []byte) (err error) {
	ln := len(bts)
	if ln > 0 && bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, accurate, err := FromString(string(bts))
	if err != nil {
		return errors.Wrap(err, "unmarshal JSON")
	}
	if !accurate {
		return errors.Wrapf(ErrRange, "unmarshal JSON %q", string(bts))
	}
	*u = v
	return nil
}
