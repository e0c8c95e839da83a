// Package quadrature generates the velocity-space quadrature the
// kinetic solver's moment sweeps consume: composite Newton-Cotes
// (Boole's rule) nodes and weights per axis, combined into a
// tensor-product Box. Each panel's weights (7,32,12,32,7)/90*h are
// accumulated by addition so panel-boundary nodes pick up 7+7=14 while
// the two global endpoints keep weight 7, making the weights sum to
// vmax-vmin exactly for any panel count.
package quadrature

import (
	"fmt"

	"gokinetic/internal/utils"
)

// Axis is one velocity-space axis' quadrature nodes and weights.
type Axis struct {
	Nodes   utils.Vector
	Weights utils.Vector
}

// NewAxis builds the composite 5-point Newton-Cotes rule over
// [vmin,vmax] with n nodes. n must be 1 (inactive axis: single node at
// 0 with weight 1) or satisfy n ≡ 1 (mod 4) and n >= 5.
func NewAxis(n int, vmin, vmax float64) (Axis, error) {
	if n == 1 {
		return Axis{
			Nodes:   utils.NewVector(1, []float64{0}),
			Weights: utils.NewVector(1, []float64{1}),
		}, nil
	}
	if n < 5 || (n-1)%4 != 0 {
		return Axis{}, fmt.Errorf("quadrature: node count %d must be 1, or >=5 and congruent to 1 mod 4", n)
	}
	if vmax <= vmin {
		return Axis{}, fmt.Errorf("quadrature: vmax (%v) must exceed vmin (%v)", vmax, vmin)
	}
	panels := (n - 1) / 4
	dh := (vmax - vmin) / float64(panels)

	nodes := make([]float64, n)
	for i := range nodes {
		nodes[i] = vmin + float64(i)*dh/4
	}

	weights := make([]float64, n)
	for p := 0; p < panels; p++ {
		weights[4*p+0] += 7
		weights[4*p+1] += 32
		weights[4*p+2] += 12
		weights[4*p+3] += 32
		weights[4*p+4] += 7
	}
	h := dh / 90
	for i := range weights {
		weights[i] *= h
	}

	return Axis{
		Nodes:   utils.NewVector(n, nodes),
		Weights: utils.NewVector(n, weights),
	}, nil
}
