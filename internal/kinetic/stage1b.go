package kinetic

import "gokinetic/internal/limiter"

// faceOffsets returns the signed distance from cell center to the
// Dim-lower and Dim-upper neighbor centers, using the cells' own
// extents rather than absolute mesh coordinates. On a periodic axis
// the neighbor across the wraparound boundary has no meaningful
// absolute-coordinate difference, so the Van Leer slope here is built
// from local cell spacing (half-extent of s plus half-extent of the
// neighbor) -- physically identical to a coordinate difference on the
// interior of a uniform mesh, and well-defined at the wrap.
func (s *State) faceOffsets(cell, dim int) (xL, xR float64) {
	sL, sR := s.grid.neighbors(cell, dim)
	c := s.Mesh.Cells[cell]
	xL = -(c.Extent(dim)/2 + s.Mesh.Cells[sL].Extent(dim)/2)
	xR = c.Extent(dim)/2 + s.Mesh.Cells[sR].Extent(dim)/2
	return
}

// stage1b computes the two-level limited reconstruction (gsigma,
// gsigma2) and the face-extrapolated gbarpbound/bbarpbound.
func (s *State) stage1b() {
	for dim := 0; dim < s.EffD; dim++ {
		for cell := 0; cell < s.Ns; cell++ {
			sL, sR := s.grid.neighbors(cell, dim)
			xL, xR := s.faceOffsets(cell, dim)
			for v := 0; v < s.Nv; v++ {
				gSlope := limiter.VanLeer(s.Gbarp.At(sL, v), s.Gbarp.At(cell, v), s.Gbarp.At(sR, v), xL, 0, xR)
				bSlope := limiter.VanLeer(s.Bbarp.At(sL, v), s.Bbarp.At(cell, v), s.Bbarp.At(sR, v), xL, 0, xR)
				s.Gsigma[dim].Set(cell, v, gSlope)
				s.Bsigma[dim].Set(cell, v, bSlope)
			}
		}
	}

	for dim := 0; dim < s.EffD; dim++ {
		for dim2 := 0; dim2 < s.EffD; dim2++ {
			for cell := 0; cell < s.Ns; cell++ {
				sL2, sR2 := s.grid.neighbors(cell, dim2)
				xL2, xR2 := s.faceOffsets(cell, dim2)
				dx2 := s.Mesh.Cells[cell].Extent(dim2)
				for v := 0; v < s.Nv; v++ {
					gCross := limiter.VanLeer(s.Gsigma[dim].At(sL2, v), s.Gsigma[dim].At(cell, v), s.Gsigma[dim].At(sR2, v), xL2, 0, xR2)
					bCross := limiter.VanLeer(s.Bsigma[dim].At(sL2, v), s.Bsigma[dim].At(cell, v), s.Bsigma[dim].At(sR2, v), xL2, 0, xR2)
					s.Gsigma2[dim][dim2].Set(cell, v, s.Gsigma[dim].At(cell, v)+dx2/2*gCross)
					s.Bsigma2[dim][dim2].Set(cell, v, s.Bsigma[dim].At(cell, v)+dx2/2*bCross)
				}
			}
		}
	}

	for dim := 0; dim < s.EffD; dim++ {
		for cell := 0; cell < s.Ns; cell++ {
			dx := s.Mesh.Cells[cell].Extent(dim)
			for v := 0; v < s.Nv; v++ {
				s.Gbarpbound[dim].Set(cell, v, s.Gbarp.At(cell, v)+dx/2*s.Gsigma[dim].At(cell, v))
				s.Bbarpbound[dim].Set(cell, v, s.Bbarp.At(cell, v)+dx/2*s.Bsigma[dim].At(cell, v))
			}
		}
	}
}
