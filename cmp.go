package bignum

import (
	"github.com/pkg/errors"
)

// ErrNilArgument is returned by CompareChecked if either argument is nil.
var ErrNilArgument = errors.New("bignum: nil argument")

// Ordering is the result of CompareChecked.
type Ordering int

const (
	Less    Ordering = CmpLess
	Equal   Ordering = CmpEqual
	Greater Ordering = CmpGreater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Compare orders a and b, returning CmpGreater, CmpEqual or CmpLess. If
// either argument is nil, it returns CmpErrNil without touching the other.
//
// The longer number is always greater; Len is trusted as given, so a zero top
// limb still counts. Numbers of equal Len are compared limb by limb from the
// most-significant end, and the first difference decides.
//
// Compare never writes to, allocates for, or retains a or b. It panics if
// a.Len == b.Len and Len is outside [0, Capacity].
func Compare(a, b *BigNum) int {
	if a == nil || b == nil {
		return CmpErrNil
	}
	return compare(a, b)
}

// CompareChecked is Compare with ErrNilArgument in place of CmpErrNil.
func CompareChecked(a, b *BigNum) (Ordering, error) {
	if a == nil || b == nil {
		return 0, ErrNilArgument
	}
	return Ordering(compare(a, b)), nil
}

func compare(a, b *BigNum) int {
	if a.Len > b.Len {
		return CmpGreater
	} else if a.Len < b.Len {
		return CmpLess
	}

	for i := a.Len - 1; i >= 0; i-- {
		if a.Limbs[i] > b.Limbs[i] {
			return CmpGreater
		} else if a.Limbs[i] < b.Limbs[i] {
			return CmpLess
		}
	}
	return CmpEqual
}

func (u *BigNum) Cmp(n *BigNum) int { return Compare(u, n) }

// The boolean helpers return false if either side is nil.
func (u *BigNum) Equal(n *BigNum) bool            { return checked(u, n) && compare(u, n) == CmpEqual }
func (u *BigNum) GreaterThan(n *BigNum) bool      { return checked(u, n) && compare(u, n) > 0 }
func (u *BigNum) GreaterOrEqualTo(n *BigNum) bool { return checked(u, n) && compare(u, n) >= 0 }
func (u *BigNum) LessThan(n *BigNum) bool         { return checked(u, n) && compare(u, n) < 0 }
func (u *BigNum) LessOrEqualTo(n *BigNum) bool    { return checked(u, n) && compare(u, n) <= 0 }

func checked(a, b *BigNum) bool { return a != nil && b != nil }
