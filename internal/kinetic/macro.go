package kinetic

import "math"

// macro computes the local macroscopic state (u, T, tau) from a
// conservative triple (rho, rhov[0:EffD], rhoE):
// u = ||rhou/rho||, T = Temperature(rhoE/rho, u), tau = mu(T)/(rho*R*T).
func (s *State) macro(rho float64, rhov [3]float64, rhoE float64) (u, T, tau float64) {
	var usum float64
	for d := 0; d < s.EffD; d++ {
		c := rhov[d] / rho
		usum += c * c
	}
	u = math.Sqrt(usum)
	T = s.Closure.Temperature(rhoE/rho, u)
	tau = s.Closure.Visc(T) / (rho * s.R * T)
	return
}

// equilibria evaluates g_eq and b_eq at velocity node v given the local
// macro state: c2 = sum_d (xi_d - rhou_d/rho)^2, g_eq = geq(c2,rho,T),
// b_eq = g_eq*(|xi|^2 + (3-D+K)*R*T)/2.
func (s *State) equilibria(rho float64, rhov [3]float64, T float64, v int) (gEq, bEq float64) {
	xix, xiy, xiz := s.Xi(v)
	xi := [3]float64{xix, xiy, xiz}
	var c2 float64
	for d := 0; d < s.EffD; d++ {
		diff := xi[d] - rhov[d]/rho
		c2 += diff * diff
	}
	gEq = s.Closure.GEq(c2, rho, T)
	xi2 := xix*xix + xiy*xiy + xiz*xiz
	bEq = gEq * (xi2 + (3-float64(s.EffD)+s.K)*s.R*T) / 2
	return
}

// Moments computes the conservative triple of cell by quadrature over
// the stored distributions: rho = Σ_v W(v) g, rhou_d = Σ_v W(v) ξ_d g,
// rhoE = Σ_v W(v) b.
func (s *State) Moments(cell int) (rho float64, rhov [3]float64, rhoE float64) {
	for v := 0; v < s.Nv; v++ {
		w := s.Weight(v)
		gv := s.G.At(cell, v)
		rho += w * gv
		rhoE += w * s.B.At(cell, v)
		xix, xiy, xiz := s.Xi(v)
		xi := [3]float64{xix, xiy, xiz}
		for d := 0; d < s.EffD; d++ {
			rhov[d] += w * xi[d] * gv
		}
	}
	return
}

// SyncMoments overwrites the cell-centered conservative state from the
// quadrature moments of the current g, b in every cell.
func (s *State) SyncMoments() {
	for cell := 0; cell < s.Ns; cell++ {
		rho, rhov, rhoE := s.Moments(cell)
		s.Rho.Set(cell, rho)
		for d := 0; d < s.EffD; d++ {
			s.RhoV.Set(cell, d, rhov[d])
		}
		s.RhoE.Set(cell, rhoE)
	}
}

// rowRhoV reads cell s's EffD-length momentum vector out of RhoV into a
// fixed [3]float64 (components beyond EffD are left zero).
func (s *State) rowRhoV(cell int) (rhov [3]float64) {
	for d := 0; d < s.EffD; d++ {
		rhov[d] = s.RhoV.At(cell, d)
	}
	return
}
