package fraction

import "golang.org/x/exp/constraints"

// Equal and NotEqual compare components. Both sides are reduced with a
// positive denominator, so equal values have equal components.
func (f Frac[T]) Equal(n Frac[T]) bool    { return f.num == n.num && f.den == n.den }
func (f Frac[T]) NotEqual(n Frac[T]) bool { return f.num != n.num || f.den != n.den }

func (f Frac[T]) Less(n Frac[T]) bool         { return f.num*n.den < n.num*f.den }
func (f Frac[T]) LessEqual(n Frac[T]) bool    { return f.num*n.den <= n.num*f.den }
func (f Frac[T]) Greater(n Frac[T]) bool      { return f.num*n.den > n.num*f.den }
func (f Frac[T]) GreaterEqual(n Frac[T]) bool { return f.num*n.den >= n.num*f.den }

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than n.
func (f Frac[T]) Cmp(n Frac[T]) int {
	l, r := f.num*n.den, n.num*f.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// Compare is Cmp as a function, for slices.SortFunc and friends.
func Compare[T constraints.Signed](a, b Frac[T]) int {
	return a.Cmp(b)
}
