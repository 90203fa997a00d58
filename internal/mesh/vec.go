// Package mesh samples triangle surfaces on an exact rational lattice.
package mesh

import (
	"fmt"

	"github.com/aatomu/fraction"
)

type Frac = fraction.Frac[int64]

// Vec3 is a point or direction with exact coordinates.
type Vec3 [3]Frac

func Point(x, y, z int64) Vec3 {
	return Vec3{fraction.FromInt(x), fraction.FromInt(y), fraction.FromInt(z)}
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0].Add(u[0]), v[1].Add(u[1]), v[2].Add(u[2])}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0].Sub(u[0]), v[1].Sub(u[1]), v[2].Sub(u[2])}
}

func (v Vec3) Scale(s Frac) Vec3 {
	return Vec3{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s)}
}

func (v Vec3) Dot(u Vec3) Frac {
	return v[0].Mul(u[0]).Add(v[1].Mul(u[1])).Add(v[2].Mul(u[2]))
}

// Compare orders points by x, then y, then z.
func (v Vec3) Compare(u Vec3) int {
	for i := range v {
		if c := v[i].Cmp(u[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

// Triangle holds the corners A, B and C.
type Triangle [3]Vec3

// Weighted returns la*A + lb*B + lc*C.
func Weighted(t Triangle, la, lb, lc Frac) Vec3 {
	return t[0].Scale(la).Add(t[1].Scale(lb)).Add(t[2].Scale(lc))
}
