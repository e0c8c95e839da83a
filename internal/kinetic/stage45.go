package kinetic

// stage45 performs the conservative update and the trapezoidal BGK
// distribution update. The v-loop that accumulates the conservative
// update is fully summed before rho, rhov, rhoE are written, and the
// new macro state/equilibria are computed only from the fully updated
// state; interleaving the write with the sweep would feed a partially
// updated state into the new equilibria.
func (s *State) stage45(dt float64) {
	geqO := make([]float64, s.Nv)
	beqO := make([]float64, s.Nv)

	for cell := 0; cell < s.Ns; cell++ {
		rho := s.Rho.At(cell)
		rhov := s.rowRhoV(cell)
		rhoE := s.RhoE.At(cell)
		_, To, tauGO := s.macro(rho, rhov, rhoE)
		tauBO := tauGO / s.Pr

		for v := 0; v < s.Nv; v++ {
			geqO[v], beqO[v] = s.equilibria(rho, rhov, To, v)
		}

		vol := s.Mesh.Cells[cell].Volume()
		var dRho, dRhoE float64
		var dRhoV [3]float64
		for v := 0; v < s.Nv; v++ {
			w := s.Weight(v)
			fg := s.Fg.At(cell, v)
			fb := s.Fb.At(cell, v)
			dRho += fg * w
			dRhoE += fb * w
			xix, xiy, xiz := s.Xi(v)
			xi := [3]float64{xix, xiy, xiz}
			for d := 0; d < s.EffD; d++ {
				dRhoV[d] += fg * xi[d] * w
			}
		}

		rhoNew := rho - dt/vol*dRho
		rhoENew := rhoE - dt/vol*dRhoE
		var rhovNew [3]float64
		for d := 0; d < s.EffD; d++ {
			rhovNew[d] = rhov[d] - dt/vol*dRhoV[d]
		}

		s.Rho.Set(cell, rhoNew)
		s.RhoE.Set(cell, rhoENew)
		for d := 0; d < s.EffD; d++ {
			s.RhoV.Set(cell, d, rhovNew[d])
		}

		_, Tn, tauG := s.macro(rhoNew, rhovNew, rhoENew)
		tauB := tauG / s.Pr

		for v := 0; v < s.Nv; v++ {
			gEq, bEq := s.equilibria(rhoNew, rhovNew, Tn, v)
			fg := s.Fg.At(cell, v)
			fb := s.Fb.At(cell, v)
			gOld := s.G.At(cell, v)
			bOld := s.B.At(cell, v)
			gNew := (gOld + dt/2*(gEq/tauG+(geqO[v]-gOld)/tauGO-dt/vol*fg)) / (1 + dt/(2*tauG))
			bNew := (bOld + dt/2*(bEq/tauB+(beqO[v]-bOld)/tauBO-dt/vol*fb)) / (1 + dt/(2*tauB))
			s.G.Set(cell, v, gNew)
			s.B.Set(cell, v, bNew)
		}
	}
}
