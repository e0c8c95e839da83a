// Package sod provides the classic analytic Sod shock-tube solution,
// used to initialize and validate the kinetic solver against a known
// Euler-limit Riemann problem: the exact 5-region construction for an
// arbitrary left/right state and gamma, with a damped-secant root
// finder for the post-shock pressure.
package sod

import "math"

// Params is the left/right initial state of a Riemann problem and the
// gas constant pair (gamma, R) used to convert pressure to specific
// energy.
type Params struct {
	X0         float64 // initial discontinuity location
	RhoL, RhoR float64
	PL, PR     float64
	Gamma      float64
	R          float64 // specific gas constant, for E = P/((gamma-1)*rho) -> T = P/(R*rho)
}

// DefaultParams is the classic Sod (1978) problem.
func DefaultParams(x0 float64) Params {
	return Params{X0: x0, RhoL: 1, RhoR: 0.125, PL: 1, PR: 0.1, Gamma: 1.4, R: 1}
}

// Profile returns the exact solution (rho, u, T) at physical position x
// and time t > 0, following the standard 5-region Sod construction:
// left state, expansion fan, contact-adjacent middle states, and right
// state, separated by the fan head/tail, the contact, and the shock.
func (p Params) Profile(t float64) func(x float64) (rho, u, T float64) {
	mu2 := (p.Gamma - 1) / (p.Gamma + 1)
	cL := math.Sqrt(p.Gamma * p.PL / p.RhoL)

	pPost := p.fzero(mu2)
	vPost := 2 * (cL / (p.Gamma - 1)) * (1 - math.Pow(pPost/p.PL, (p.Gamma-1)/(2*p.Gamma)))
	rhoPost := p.RhoR * ((pPost/p.PR + mu2) / (1 + mu2*(pPost/p.PR)))
	vShock := vPost * (rhoPost / p.RhoR) / (rhoPost/p.RhoR - 1)
	rhoMiddle := p.RhoL * math.Pow(pPost/p.PL, 1/p.Gamma)

	x1 := p.X0 - cL*t
	x3 := p.X0 + vPost*t
	x4 := p.X0 + vShock*t
	c2 := cL - 0.5*(p.Gamma-1)*vPost
	x2 := p.X0 + t*(vPost-c2)

	return func(x float64) (rho, u, T float64) {
		var P float64
		switch {
		case x < x1:
			rho, P, u = p.RhoL, p.PL, 0
		case x <= x2:
			c := mu2*((p.X0-x)/t) + (1-mu2)*cL
			rho = p.RhoL * math.Pow(c/cL, 2/(p.Gamma-1))
			P = p.PL * math.Pow(rho/p.RhoL, p.Gamma)
			u = (1 - mu2) * (-(p.X0-x)/t + cL)
		case x <= x3:
			rho, P, u = rhoMiddle, pPost, vPost
		case x <= x4:
			rho, P, u = rhoPost, pPost, vPost
		default:
			rho, P, u = p.RhoR, p.PR, 0
		}
		T = P / (p.R * rho)
		return
	}
}

// fzero finds the post-shock pressure by damped secant iteration on
// p.shockFunc.
func (p Params) fzero(mu2 float64) float64 {
	const tol = 1e-7
	start := math.Pi
	startOld := start / 2
	res := p.shockFunc(startOld, mu2)
	for math.Abs(res) > tol {
		resNew := p.shockFunc(start, mu2)
		deriv := (start - startOld) / (resNew - res)
		startNew := math.Abs(start - 0.01*p.shockFunc(start, mu2)/deriv)
		startOld = start
		start = startNew
		res = resNew
	}
	return start
}

// shockFunc is the Rankine-Hugoniot pressure-matching residual across
// the right-running shock.
func (p Params) shockFunc(P, mu2 float64) float64 {
	cL := math.Sqrt(p.Gamma * p.PL / p.RhoL)
	return (P-p.PR)*math.Sqrt((1-mu2)/(p.RhoR*(P+mu2*p.PR))) -
		2*(cL/(p.Gamma-1))*(1-math.Pow(P/p.PL, (p.Gamma-1)/(2*p.Gamma)))
}
