package kinetic

import "math"

// DefaultDtCFL is the fixed CFL step ceiling.
const DefaultDtCFL = 1.0 / 2048.0

// Step advances the state by exactly dt, running the five-stage
// pipeline in order. dt must be strictly positive.
func (s *State) Step(dt float64) {
	s.stage1a(dt)
	s.stage1b()
	s.stage1c(dt)
	s.stage2(dt)
	s.stage2c()
	s.stage45(dt)
}

// Evolve drives the state from tSim toward tFinal, selecting
// dt = min(dtCFL, dtDump, tFinal-tSim) at each step. dtCFL <= 0 falls
// back to DefaultDtCFL. dtDump <= 0 disables the dump clamp (it never
// binds). onStep, if non-nil, is called after every step with the new
// simulation time -- the driver's hook for dump cadence and
// diagnostics; the solver itself persists nothing.
func (s *State) Evolve(tSim, tFinal, dtCFL, dtDump float64, onStep func(t float64)) float64 {
	if dtCFL <= 0 {
		dtCFL = DefaultDtCFL
	}
	for tSim < tFinal {
		dt := dtCFL
		if dtDump > 0 && dtDump < dt {
			dt = dtDump
		}
		if rem := tFinal - tSim; rem < dt {
			dt = rem
		}
		if dt <= 0 {
			break
		}
		s.Step(dt)
		tSim += dt
		if onStep != nil {
			onStep(tSim)
		}
	}
	return tSim
}

// Residual returns the max-norm of (g - g_eq, b - b_eq) across every
// (s,v), a cheap steady-state/fixed-point diagnostic built from the
// same macro/equilibria helpers the stages use.
func (s *State) Residual() float64 {
	var maxAbs float64
	for cell := 0; cell < s.Ns; cell++ {
		rho := s.Rho.At(cell)
		rhov := s.rowRhoV(cell)
		rhoE := s.RhoE.At(cell)
		_, T, _ := s.macro(rho, rhov, rhoE)
		for v := 0; v < s.Nv; v++ {
			gEq, bEq := s.equilibria(rho, rhov, T, v)
			if d := math.Abs(s.G.At(cell, v) - gEq); d > maxAbs {
				maxAbs = d
			}
			if d := math.Abs(s.B.At(cell, v) - bEq); d > maxAbs {
				maxAbs = d
			}
		}
	}
	return maxAbs
}
