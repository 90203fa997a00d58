package fraction

import "golang.org/x/exp/constraints"

// gcd returns the greatest common divisor of the non-negative m and n.
// gcd(m, 0) is m, so gcd(0, 0) is 0.
func gcd[T constraints.Integer](m, n T) T {
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
