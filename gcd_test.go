package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	testCases := []struct {
		m, n, gcd int64
	}{
		0: {15, 63, 3},
		1: {63, 15, 3},
		2: {7, 0, 7},
		3: {0, 7, 7},
		4: {0, 0, 0},
		5: {1, 1, 1},
		6: {17, 5, 1},
		7: {1 << 40, 1 << 20, 1 << 20},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.gcd, gcd(tc.m, tc.n), "#%d", i)
	}

	assert.Equal(t, uint8(6), gcd[uint8](48, 18))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, abs(-3))
	assert.Equal(t, int8(3), abs[int8](3))
	assert.Equal(t, int64(0), abs[int64](0))
}
