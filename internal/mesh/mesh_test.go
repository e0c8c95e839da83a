package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniformGeometry(t *testing.T) {
	m, err := NewUniform([3]int{4, 2, 1}, [3]float64{8, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 8, m.Ns())

	c := m.Cells[0]
	assert.Equal(t, 1.0, c.X)
	assert.Equal(t, 0.5, c.Y)
	assert.Equal(t, 2.0, c.Dx)
	assert.Equal(t, 2.0, c.Volume())
	assert.Equal(t, 1.0, c.FaceArea(0)) // dy*dz
	assert.Equal(t, 2.0, c.FaceArea(1)) // dx*dz

	// cell (1,1,0) sits at s = 1 + 4*1
	c = m.Cells[5]
	assert.Equal(t, 3.0, c.X)
	assert.Equal(t, 1.5, c.Y)
}

func TestNewUniformRejectsZeroCells(t *testing.T) {
	_, err := NewUniform([3]int{0, 1, 1}, [3]float64{1, 1, 1})
	assert.Error(t, err)
}
