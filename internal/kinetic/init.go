package kinetic

// InitUniform sets every cell to the same prescribed macro state
// (rho0, u0[0:EffD], T0), with g, b initialized to their own
// equilibria (g = g_eq, b = b_eq).
func (s *State) InitUniform(rho0 float64, u0 [3]float64, T0 float64) {
	for cell := 0; cell < s.Ns; cell++ {
		s.SetCell(cell, rho0, u0, T0)
	}
}

// SetCell sets cell's conservative state from (rho, u, T) and
// initializes g(cell,·), b(cell,·) to their equilibria at that state.
func (s *State) SetCell(cell int, rho float64, u [3]float64, T float64) {
	var rhov [3]float64
	for d := 0; d < s.EffD; d++ {
		rhov[d] = rho * u[d]
	}
	e := s.Cv()*T + 0.5*dot(u, s.EffD)
	s.Rho.Set(cell, rho)
	for d := 0; d < s.EffD; d++ {
		s.RhoV.Set(cell, d, rhov[d])
	}
	s.RhoE.Set(cell, rho*e)

	for v := 0; v < s.Nv; v++ {
		gEq, bEq := s.equilibria(rho, rhov, T, v)
		s.G.Set(cell, v, gEq)
		s.B.Set(cell, v, bEq)
	}
}

func dot(u [3]float64, effD int) float64 {
	var sum float64
	for d := 0; d < effD; d++ {
		sum += u[d] * u[d]
	}
	return sum
}

// InitFunc initializes every cell from a user-supplied function of the
// cell's physical center, for non-uniform initial conditions (e.g. the
// Sod shock tube).
func (s *State) InitFunc(f func(x, y, z float64) (rho float64, u [3]float64, T float64)) {
	for cell := 0; cell < s.Ns; cell++ {
		c := s.Mesh.Cells[cell]
		rho, u, T := f(c.X, c.Y, c.Z)
		s.SetCell(cell, rho, u, T)
	}
}
