package kinetic

// stage2c assembles the net flux Fg, Fb: for each axis dim, accumulate
// the upper-face outflow minus the lower-face inflow of the
// collision-adjusted interface distribution, weighted by velocity and
// face area.
func (s *State) stage2c() {
	for cell := 0; cell < s.Ns; cell++ {
		for v := 0; v < s.Nv; v++ {
			s.Fg.Set(cell, v, 0)
			s.Fb.Set(cell, v, 0)
		}
	}
	for dim := 0; dim < s.EffD; dim++ {
		for cell := 0; cell < s.Ns; cell++ {
			sL, _ := s.grid.neighbors(cell, dim)
			a := s.Mesh.Cells[cell].FaceArea(dim)
			for v := 0; v < s.Nv; v++ {
				xix, xiy, xiz := s.Xi(v)
				xi := [3]float64{xix, xiy, xiz}
				s.Fg.Set(cell, v, s.Fg.At(cell, v)+xi[dim]*a*(s.Gbar[dim].At(cell, v)-s.Gbar[dim].At(sL, v)))
				s.Fb.Set(cell, v, s.Fb.At(cell, v)+xi[dim]*a*(s.Bbar[dim].At(cell, v)-s.Bbar[dim].At(sL, v)))
			}
		}
	}
}
