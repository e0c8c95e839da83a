package kinetic

// stage1c advects the face-extrapolated distribution by dt/2 using the
// cross-slopes:
// gbar(s,v,Dim) = gbarpbound(s,v,Dim) - (dt/2) * sum_d xi_d(v) * gsigma2(s,v,d,Dim)
func (s *State) stage1c(dt float64) {
	for dim := 0; dim < s.EffD; dim++ {
		for cell := 0; cell < s.Ns; cell++ {
			for v := 0; v < s.Nv; v++ {
				xix, xiy, xiz := s.Xi(v)
				xi := [3]float64{xix, xiy, xiz}
				var advect float64
				for d := 0; d < s.EffD; d++ {
					advect += xi[d] * s.Gsigma2[d][dim].At(cell, v)
				}
				s.Gbar[dim].Set(cell, v, s.Gbarpbound[dim].At(cell, v)-dt/2*advect)

				var advectB float64
				for d := 0; d < s.EffD; d++ {
					advectB += xi[d] * s.Bsigma2[d][dim].At(cell, v)
				}
				s.Bbar[dim].Set(cell, v, s.Bbarpbound[dim].At(cell, v)-dt/2*advectB)
			}
		}
	}
}
