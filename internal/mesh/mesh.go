// Package mesh supplies a uniform rectilinear axis-aligned mesh: the
// per-cell center and extents the kinetic solver's periodic
// structured-grid stages consume.
package mesh

import "fmt"

// Cell holds the physical center and extents of one spatial cell.
type Cell struct {
	X, Y, Z    float64
	Dx, Dy, Dz float64
}

// Volume is dx*dy*dz.
func (c Cell) Volume() float64 { return c.Dx * c.Dy * c.Dz }

// FaceArea is the area of the face normal to axis dim: the product of
// the other two extents.
func (c Cell) FaceArea(dim int) float64 {
	switch dim {
	case 0:
		return c.Dy * c.Dz
	case 1:
		return c.Dx * c.Dz
	case 2:
		return c.Dx * c.Dy
	}
	panic(fmt.Sprintf("mesh: invalid axis %d", dim))
}

// Extent returns the cell's size along axis dim (Dx, Dy, or Dz).
func (c Cell) Extent(dim int) float64 {
	switch dim {
	case 0:
		return c.Dx
	case 1:
		return c.Dy
	case 2:
		return c.Dz
	}
	panic(fmt.Sprintf("mesh: invalid axis %d", dim))
}

// Mesh is a dense, axis-aligned rectilinear grid of N[0]*N[1]*N[2]
// cells, indexed s = i + Nx*j + Nx*Ny*k.
type Mesh struct {
	N       [3]int
	Extents [3]float64 // physical domain size along each axis
	Cells   []Cell
}

// NewUniform builds a uniform rectilinear mesh spanning [0,Extents[d])
// along each active axis, subdivided into N[d] equal cells. Inactive
// axes (N[d] == 1) get a single cell spanning the full (possibly
// degenerate) extent.
func NewUniform(N [3]int, extents [3]float64) (*Mesh, error) {
	for d := 0; d < 3; d++ {
		if N[d] <= 0 {
			return nil, fmt.Errorf("mesh: N[%d] must be positive, got %d", d, N[d])
		}
	}
	m := &Mesh{N: N, Extents: extents}
	nx, ny, nz := N[0], N[1], N[2]
	m.Cells = make([]Cell, nx*ny*nz)
	dx, dy, dz := extents[0]/float64(nx), extents[1]/float64(ny), extents[2]/float64(nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				s := i + nx*j + nx*ny*k
				m.Cells[s] = Cell{
					X: (float64(i) + 0.5) * dx, Y: (float64(j) + 0.5) * dy, Z: (float64(k) + 0.5) * dz,
					Dx: dx, Dy: dy, Dz: dz,
				}
			}
		}
	}
	return m, nil
}

// Ns is the total cell count.
func (m *Mesh) Ns() int { return m.N[0] * m.N[1] * m.N[2] }
