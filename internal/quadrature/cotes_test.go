package quadrature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisWeightIdentity(t *testing.T) {
	for _, n := range []int{5, 9, 13, 129} {
		a, err := NewAxis(n, -10, 10)
		require.NoError(t, err)
		assert.InDelta(t, 20., a.Weights.Sum(), 1e-9, "n=%d", n)
	}
}

func TestAxisInactive(t *testing.T) {
	a, err := NewAxis(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0., a.Nodes.At(0))
	assert.Equal(t, 1., a.Weights.At(0))
}

func TestAxisRejectsBadNodeCount(t *testing.T) {
	_, err := NewAxis(8, -1, 1)
	assert.Error(t, err)
	_, err = NewAxis(3, -1, 1)
	assert.Error(t, err)
}

func TestAxisRejectsDegenerateBox(t *testing.T) {
	_, err := NewAxis(5, 1, 1)
	assert.Error(t, err)
}

func TestBoxWeightIdentity1D(t *testing.T) {
	b, err := NewBox(1, [3]int{129, 1, 1}, [3]float64{-10, 0, 0}, [3]float64{10, 0, 0})
	require.NoError(t, err)
	var total float64
	nv := b.NV()
	for vx := 0; vx < nv[0]; vx++ {
		for vy := 0; vy < nv[1]; vy++ {
			for vz := 0; vz < nv[2]; vz++ {
				total += b.Weight(vx, vy, vz)
			}
		}
	}
	assert.InDelta(t, 20., total, 1e-8)
}
