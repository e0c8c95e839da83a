package kinetic

// stage2 computes the interface moments, the interface macro state and
// equilibria, and performs the in-place trapezoidal BGK projection on
// gbar/bbar.
func (s *State) stage2(dt float64) {
	for dim := 0; dim < s.EffD; dim++ {
		for cell := 0; cell < s.Ns; cell++ {
			var rhoh, rhoEh float64
			var rhoVh [3]float64
			for v := 0; v < s.Nv; v++ {
				w := s.Weight(v)
				gv := s.Gbar[dim].At(cell, v)
				rhoh += w * gv
				rhoEh += w * s.Bbar[dim].At(cell, v)
				xix, xiy, xiz := s.Xi(v)
				xi := [3]float64{xix, xiy, xiz}
				for d := 0; d < s.EffD; d++ {
					rhoVh[d] += w * xi[d] * gv
				}
			}
			s.Rhoh.Set(cell, dim, rhoh)
			s.RhoEh.Set(cell, dim, rhoEh)
			for d := 0; d < s.EffD; d++ {
				s.RhoVh[d].Set(cell, dim, rhoVh[d])
			}

			_, T, tau := s.macro(rhoh, rhoVh, rhoEh)

			for v := 0; v < s.Nv; v++ {
				gEq, bEq := s.equilibria(rhoh, rhoVh, T, v)
				gFactor := 2 * tau / (2*tau + dt/2)
				gSrc := dt / (4*tau + dt)
				s.Gbar[dim].Set(cell, v, gFactor*s.Gbar[dim].At(cell, v)+gSrc*gEq)
				s.Bbar[dim].Set(cell, v, gFactor*s.Bbar[dim].At(cell, v)+gSrc*bEq)
			}
		}
	}
}
