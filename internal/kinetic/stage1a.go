package kinetic

// stage1a builds the pre-collision barred distribution at cell
// centers: gbarp = (2tau-dt/2)/(2tau)*g + dt/(4tau)*g_eq + dt/4*S_g
// (S_g = 0, the reserved source hook).
func (s *State) stage1a(dt float64) {
	for cell := 0; cell < s.Ns; cell++ {
		rho := s.Rho.At(cell)
		rhov := s.rowRhoV(cell)
		rhoE := s.RhoE.At(cell)
		_, T, tau := s.macro(rho, rhov, rhoE)

		for v := 0; v < s.Nv; v++ {
			gEq, bEq := s.equilibria(rho, rhov, T, v)
			factor := (2*tau - dt/2) / (2 * tau)
			s.Gbarp.Set(cell, v, factor*s.G.At(cell, v)+dt/(4*tau)*gEq)
			s.Bbarp.Set(cell, v, factor*s.B.At(cell, v)+dt/(4*tau)*bEq)
		}
	}
}
