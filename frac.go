// Package fraction implements exact rational arithmetic over Go's signed
// integer types.
//
// A Frac is always kept reduced with its sign carried by the numerator. A
// denominator of zero is representable and reported by IsLegal; no method
// guards against it, and integer overflow follows the semantics of T.
package fraction

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Frac is the reduced fraction num/den.
//
// The zero value is 0/0, which is not legal. Use Zero or New.
type Frac[T constraints.Signed] struct {
	num T
	den T
}

// New returns num/den reduced.
func New[T constraints.Signed](num, den T) Frac[T] {
	f := Frac[T]{num: num, den: den}
	f.normalize()
	return f
}

// FromInt returns v/1.
func FromInt[T constraints.Signed](v T) Frac[T] {
	return New(v, 1)
}

// Zero returns 0/1.
func Zero[T constraints.Signed]() Frac[T] {
	return New[T](0, 1)
}

// 約分
func (f *Frac[T]) normalize() *Frac[T] {
	g := gcd(abs(f.num), abs(f.den))
	if g == 0 { // 0/0
		return f
	}

	var m T = 1
	if f.den < 0 {
		m = -1
	}
	f.num = f.num / g * m
	f.den = f.den / g * m
	return f
}

func (f *Frac[T]) reset(num, den T) *Frac[T] {
	f.num = num
	f.den = den
	return f.normalize()
}

// Set replaces f with v/1.
func (f *Frac[T]) Set(v T) *Frac[T] {
	*f = FromInt(v)
	return f
}

func (f Frac[T]) Num() T { return f.num }
func (f Frac[T]) Den() T { return f.den }

func (f Frac[T]) IsIntegral() bool { return f.den == 1 }
func (f Frac[T]) IsLegal() bool    { return f.den != 0 }

// Not reports whether the numerator is non-zero.
//
// NOTE: Not and Bool keep the polarity of the operators they were modelled
// on: Not is true for non-zero values and Bool is true for zero. This is the
// reverse of the usual truthiness and is kept on purpose until callers agree
// to flip it.
func (f Frac[T]) Not() bool { return f.num != 0 }

// Bool reports whether the numerator is zero. See Not.
func (f Frac[T]) Bool() bool { return f.num == 0 }

func (f Frac[T]) Pos() Frac[T] { return f }

// Neg returns -f. The denominator is untouched, so the result stays reduced.
func (f Frac[T]) Neg() Frac[T] { return Frac[T]{num: -f.num, den: f.den} }

func (f *Frac[T]) AddAssign(rhs Frac[T]) *Frac[T] {
	return f.reset(f.num*rhs.den+f.den*rhs.num, f.den*rhs.den)
}

func (f *Frac[T]) SubAssign(rhs Frac[T]) *Frac[T] {
	return f.reset(f.num*rhs.den-f.den*rhs.num, f.den*rhs.den)
}

func (f *Frac[T]) MulAssign(rhs Frac[T]) *Frac[T] {
	return f.reset(f.num*rhs.num, f.den*rhs.den)
}

// QuoAssign sets f to f/rhs. Dividing by a zero rhs leaves f illegal.
func (f *Frac[T]) QuoAssign(rhs Frac[T]) *Frac[T] {
	return f.reset(f.num*rhs.den, f.den*rhs.num)
}

func (f *Frac[T]) AddAssignInt(v T) *Frac[T] { return f.AddAssign(FromInt(v)) }
func (f *Frac[T]) SubAssignInt(v T) *Frac[T] { return f.SubAssign(FromInt(v)) }
func (f *Frac[T]) MulAssignInt(v T) *Frac[T] { return f.MulAssign(FromInt(v)) }
func (f *Frac[T]) QuoAssignInt(v T) *Frac[T] { return f.QuoAssign(FromInt(v)) }

func (f Frac[T]) Add(n Frac[T]) Frac[T] { return *f.AddAssign(n) }
func (f Frac[T]) Sub(n Frac[T]) Frac[T] { return *f.SubAssign(n) }
func (f Frac[T]) Mul(n Frac[T]) Frac[T] { return *f.MulAssign(n) }
func (f Frac[T]) Quo(n Frac[T]) Frac[T] { return *f.QuoAssign(n) }

func (f Frac[T]) AddInt(v T) Frac[T] { return *f.AddAssignInt(v) }
func (f Frac[T]) SubInt(v T) Frac[T] { return *f.SubAssignInt(v) }
func (f Frac[T]) MulInt(v T) Frac[T] { return *f.MulAssignInt(v) }
func (f Frac[T]) QuoInt(v T) Frac[T] { return *f.QuoAssignInt(v) }

// Inv returns 1/f. The reciprocal of zero is the illegal 1/0.
func (f Frac[T]) Inv() Frac[T] {
	return New(f.den, f.num)
}

func (f Frac[T]) Abs() Frac[T] {
	return Frac[T]{num: abs(f.num), den: f.den}
}

// Pow returns f**n. A negative n raises the reciprocal.
func (f Frac[T]) Pow(n int) Frac[T] {
	if n < 0 {
		return f.Inv().Pow(-n)
	}

	result := FromInt[T](1)
	for base := f; n > 0; n >>= 1 {
		if n&1 == 1 {
			result.MulAssign(base)
		}
		if n > 1 {
			base.MulAssign(base)
		}
	}
	return result
}

func (f Frac[T]) Float() float64 {
	return ToReal[float64](f)
}

func (f Frac[T]) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// ToReal converts f to the floating point type R. A zero denominator gives
// ±Inf or NaN.
func ToReal[R constraints.Float, T constraints.Signed](f Frac[T]) R {
	return R(f.num) / R(f.den)
}
