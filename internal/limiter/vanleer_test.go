package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVanLeerSignCases(t *testing.T) {
	assert.InDelta(t, 1., VanLeer(0, 1, 2, 0, 1, 2), 1e-12)
	assert.InDelta(t, 0., VanLeer(0, 1, 0, 0, 1, 2), 1e-12)
	assert.InDelta(t, -1., VanLeer(2, 1, 0, 0, 1, 2), 1e-12)
}

func TestVanLeerZeroOnEqualSamples(t *testing.T) {
	assert.Equal(t, 0., VanLeer(1, 1, 1, 0, 1, 2))
}

func TestVanLeerSymmetry(t *testing.T) {
	cases := [][3]float64{{1, 2, 5}, {-3, -1, 4}, {0.1, 0.2, 0.05}}
	for _, c := range cases {
		a, b, cc := c[0], c[1], c[2]
		pos := VanLeer(a, b, cc, 0, 1, 2.5)
		neg := VanLeer(-a, -b, -cc, 0, 1, 2.5)
		assert.InDelta(t, pos, -neg, 1e-12)
	}
}
