package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	c := Constants{R: 0.5, K: 2}
	assert.InDelta(t, 1.25, c.Cv(), 1e-12)
	assert.InDelta(t, 1.4, c.Gamma(), 1e-12)
}

func TestIdealGasTemperatureInvertsEnergy(t *testing.T) {
	g := NewIdealGas(1, 1, 3)
	T0, u := 1.3, 0.4
	e := g.Cv()*T0 + 0.5*u*u
	assert.InDelta(t, T0, g.Temperature(e, u), 1e-12)
}

func TestIdealGasViscPositive(t *testing.T) {
	g := NewIdealGas(1, 1, 3)
	for _, T := range []float64{0.1, 1, 10} {
		assert.Greater(t, g.Visc(T), 0.0)
	}
	assert.InDelta(t, 1.0, g.Visc(1), 1e-12)
}

func TestIdealGasGEqPeakAtZeroPeculiarVelocity(t *testing.T) {
	g := NewIdealGas(1, 1, 3)
	assert.Greater(t, g.GEq(0, 1, 1), g.GEq(1, 1, 1))
	assert.GreaterOrEqual(t, g.GEq(100, 1, 1), 0.0)
}
