package mesh

import (
	"errors"
	"math"
	"math/big"
	"slices"

	"github.com/aatomu/fraction"
)

const (
	// MaxCoord bounds the magnitude of every corner coordinate so that squared
	// edge lengths and lattice weights stay within int64.
	MaxCoord = 1 << 29
	// MaxDivisions bounds n, and with it the (n+1)(n+2)/2 points of a face.
	MaxDivisions = 1 << 10
)

var (
	ErrIllegalSpacing = errors.New("spacing must be a legal positive fraction")
	ErrOutOfRange     = errors.New("corner coordinates must be integers within ±MaxCoord")
	ErrTooFine        = errors.New("spacing needs more than MaxDivisions divisions")
)

func validSpacing(spacing Frac) bool {
	return spacing.IsLegal() && spacing.Greater(fraction.Zero[int64]())
}

func inRange(t Triangle) bool {
	for _, v := range t {
		for _, c := range v {
			if !c.IsIntegral() || c.Num() > MaxCoord || c.Num() < -MaxCoord {
				return false
			}
		}
	}
	return true
}

// Divisions returns the smallest n >= 1 such that every edge of t split into
// n equal parts gives segments no longer than spacing.
func Divisions(t Triangle, spacing Frac) (int64, error) {
	if !validSpacing(spacing) {
		return 0, ErrIllegalSpacing
	}
	if !inRange(t) {
		return 0, ErrOutOfRange
	}

	// at most 3*(2*MaxCoord)^2 = 3<<60
	longest := fraction.Zero[int64]()
	for i := range t {
		e := t[(i+1)%len(t)].Sub(t[i])
		if l := e.Dot(e); l.Greater(longest) {
			longest = l
		}
	}

	// |e|^2 / spacing^2 <= n^2, spacing^2 may not fit in int64
	s := big.NewRat(spacing.Num(), spacing.Den())
	ratio := big.NewRat(longest.Num(), longest.Den())
	ratio.Quo(ratio, s.Mul(s, s))

	est, _ := ratio.Float64()
	if est > MaxDivisions*MaxDivisions {
		return 0, ErrTooFine
	}
	n := int64(math.Ceil(math.Sqrt(est)))
	square := func(k int64) *big.Rat { return new(big.Rat).SetInt64(k * k) }
	for n > 1 && ratio.Cmp(square(n-1)) <= 0 {
		n--
	}
	for ratio.Cmp(square(n)) > 0 {
		n++
	}
	if n > MaxDivisions {
		return 0, ErrTooFine
	}
	return max(n, 1), nil
}

// Sample returns the lattice points of t whose barycentric weights are all
// multiples of 1/n, corners included. n must be at least 1; Sample returns
// nil otherwise. Corners within MaxCoord and n up to MaxDivisions keep every
// weight exact.
func Sample(t Triangle, n int64) []Vec3 {
	if n < 1 {
		return nil
	}
	points := make([]Vec3, 0, (n+1)*(n+2)/2)

	one := fraction.FromInt[int64](1)
	for i := int64(0); i <= n; i++ {
		lambdaA := fraction.New(i, n)
		for j := int64(0); i+j <= n; j++ {
			lambdaB := fraction.New(j, n)
			lambdaC := one.Sub(lambdaA).Sub(lambdaB)
			points = append(points, Weighted(t, lambdaA, lambdaB, lambdaC))
		}
	}
	return points
}

// Bounds returns the per-axis minimum and maximum of points. Both are zero
// values when points is empty.
func Bounds(points []Vec3) (lo, hi Vec3) {
	if len(points) == 0 {
		return
	}

	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		for i := range p {
			if p[i].Less(lo[i]) {
				lo[i] = p[i]
			}
			if p[i].Greater(hi[i]) {
				hi[i] = p[i]
			}
		}
	}
	return
}

// Dedupe returns the distinct points sorted by Vec3.Compare. The input is not
// modified.
func Dedupe(points []Vec3) []Vec3 {
	tmp := slices.Clone(points)
	slices.SortFunc(tmp, Vec3.Compare)
	return slices.CompactFunc(tmp, func(a, b Vec3) bool {
		return a.Compare(b) == 0
	})
}
