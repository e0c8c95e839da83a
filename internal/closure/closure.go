// Package closure provides the constitutive oracle the kinetic solver
// consumes (Temperature, Visc, GEq) plus the closure constants (R, K,
// Cv, Gamma, Pr), with a calorically-perfect-gas default behind the
// Closure interface so callers can substitute their own gas model.
package closure

import "math"

// Closure is a gas model: a temperature oracle, a viscosity law, and
// a Maxwellian equilibrium generator.
type Closure interface {
	// Temperature returns T given specific internal energy e = rhoE/rho
	// and bulk speed u = ||rhou/rho||. T > 0 on physically valid inputs.
	Temperature(e, u float64) float64
	// Visc returns the molecular viscosity mu(T) > 0.
	Visc(T float64) float64
	// GEq returns the Maxwellian-like equilibrium g_eq(c2, rho, T) >= 0.
	GEq(c2, rho, T float64) float64
}

// Constants bundles the gas constants the closure relations share.
type Constants struct {
	R  float64 // specific gas constant
	K  float64 // internal DOF count
	Pr float64 // Prandtl number (default 1)
}

// Cv is the specific heat at constant volume, (3+K)*R/2.
func (c Constants) Cv() float64 { return (3 + c.K) * c.R / 2 }

// Gamma is the heat capacity ratio, (K+5)/(K+3).
func (c Constants) Gamma() float64 { return (c.K + 5) / (c.K + 3) }

// IdealGas is the default Closure: a calorically perfect gas with
// Temperature(e,u) = (e - u^2/2)/Cv, a power-law viscosity
// mu(T) = Mu0*(T/T0)^Omega, and the D-dimensional Maxwellian
// geq(c2,rho,T) = rho/(2*pi*R*T)^(D/2) * exp(-c2/(2*R*T)).
type IdealGas struct {
	Constants
	D     int     // effective spatial dimension, used in the Maxwellian normalization
	Mu0   float64 // reference viscosity at T0
	T0    float64 // reference temperature
	Omega float64 // viscosity power-law exponent
}

// NewIdealGas builds a default closure with viscosity normalized to 1
// at T=1 (Mu0=1, T0=1), the usual convention when the physical
// viscosity is not otherwise specified.
func NewIdealGas(D int, R, K float64) IdealGas {
	return IdealGas{
		Constants: Constants{R: R, K: K, Pr: 1},
		D:         D,
		Mu0:       1, T0: 1, Omega: 0.5,
	}
}

func (g IdealGas) Temperature(e, u float64) float64 {
	return (e - 0.5*u*u) / g.Cv()
}

func (g IdealGas) Visc(T float64) float64 {
	return g.Mu0 * math.Pow(T/g.T0, g.Omega)
}

func (g IdealGas) GEq(c2, rho, T float64) float64 {
	RT := g.R * T
	norm := math.Pow(2*math.Pi*RT, float64(g.D)/2)
	return rho / norm * math.Exp(-c2/(2*RT))
}
