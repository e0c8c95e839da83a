package quadrature

import "fmt"

// Box is the tensor-product velocity-space quadrature over three
// axes, satisfying the weight identity Σ_v W(v) = Π_d (b_d - a_d).
type Box struct {
	X, Y, Z Axis
}

// NewBox builds the three per-axis quadratures. NV[d] and [Vmin[d],
// Vmax[d]) are only consulted for d < effD; inactive axes (d >= effD)
// get a single node at 0 with weight 1 regardless of the NV/Vmin/Vmax
// passed in.
func NewBox(effD int, NV [3]int, Vmin, Vmax [3]float64) (Box, error) {
	var b Box
	axes := [3]*Axis{&b.X, &b.Y, &b.Z}
	for d := 0; d < 3; d++ {
		n := NV[d]
		vmin, vmax := Vmin[d], Vmax[d]
		if d >= effD {
			n = 1
		}
		a, err := NewAxis(n, vmin, vmax)
		if err != nil {
			return Box{}, fmt.Errorf("quadrature: axis %d: %w", d, err)
		}
		*axes[d] = a
	}
	return b, nil
}

// NV returns the node counts per axis.
func (b Box) NV() [3]int {
	return [3]int{b.X.Nodes.Len(), b.Y.Nodes.Len(), b.Z.Nodes.Len()}
}

// Weight returns W(v) = Wx(vx)*Wy(vy)*Wz(vz) for the velocity node
// (vx,vy,vz).
func (b Box) Weight(vx, vy, vz int) float64 {
	return b.X.Weights.At(vx) * b.Y.Weights.At(vy) * b.Z.Weights.At(vz)
}

// Node returns the physical velocity-space coordinate (xi_x, xi_y, xi_z)
// of node (vx,vy,vz).
func (b Box) Node(vx, vy, vz int) (xix, xiy, xiz float64) {
	return b.X.Nodes.At(vx), b.Y.Nodes.At(vy), b.Z.Nodes.At(vz)
}
