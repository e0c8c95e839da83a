// Package kinetic implements the unified gas kinetic scheme (UGKS): a
// second-order finite-volume integrator for the Boltzmann-BGK
// equations, evolving two velocity-space distributions g
// (mass/momentum carrier) and b (energy carrier) over a periodic
// rectilinear mesh. A State holds every buffer a run needs, allocated
// once up front, with the five-stage step pipeline exposed as methods.
package kinetic

import (
	"fmt"

	"gokinetic/internal/closure"
	"gokinetic/internal/mesh"
	"gokinetic/internal/quadrature"
	"gokinetic/internal/utils"
)

// State holds every buffer the UGKS step pipeline reads or writes, all
// allocated once for the run and overwritten in place each step.
// Phase-space buffers are (Ns, Nv) utils.Matrix values: row = spatial
// cell, column = velocity node, so the velocity axis is a plain matrix
// column instead of bespoke flat-array stride arithmetic.
type State struct {
	EffD int
	N    [3]int
	NV   [3]int
	Vmin [3]float64
	Vmax [3]float64

	Mesh    *mesh.Mesh
	Quad    quadrature.Box
	Closure closure.Closure
	R, K    float64 // specific gas constant, internal DOF count
	Pr      float64 // Prandtl number, default 1

	grid grid
	vg   velocityGrid

	Ns, Nv int

	// Conservative cell-centered state.
	Rho  utils.Vector // Ns
	RhoV utils.Matrix // Ns x EffD
	RhoE utils.Vector // Ns

	// Distribution functions.
	G, B utils.Matrix // Ns x Nv

	// Barred/slope working buffers for the reconstruction stages.
	Gbarp, Bbarp           utils.Matrix    // Ns x Nv
	Gsigma, Bsigma         [3]utils.Matrix // per Dim, Ns x Nv
	Gsigma2, Bsigma2       [3][3]utils.Matrix
	Gbarpbound, Bbarpbound [3]utils.Matrix
	Gbar, Bbar             [3]utils.Matrix

	// Half-step conservative moments at each +1/2 face.
	Rhoh  utils.Matrix    // Ns x EffD
	RhoVh [3]utils.Matrix // per dim, Ns x EffD (column dim2)
	RhoEh utils.Matrix    // Ns x EffD

	// Net microscopic fluxes of each cell (upper-face minus lower-face
	// value), summed over the active axes.
	Fg, Fb utils.Matrix // Ns x Nv

	// ReuseFluxBuffers, when true, aliases Fg/Fb onto the Gbarp/Bbarp
	// storage, which is dead between stage 2b and the next step's
	// stage 1a. Default false: distinct allocations.
	ReuseFluxBuffers bool
}

// Config is the user-facing configuration validated by New. Mesh, when
// non-nil, is an externally supplied mesh; it must cover exactly N
// cells in the s = i + Nx*j + Nx*Ny*k ordering.
// When nil a uniform unit-cell mesh spanning [0,N[d]) per axis is
// built.
type Config struct {
	EffD             int
	N                [3]int
	NV               [3]int
	Vmin, Vmax       [3]float64
	Mesh             *mesh.Mesh
	Closure          closure.Closure
	R, K             float64
	Pr               float64
	ReuseFluxBuffers bool
}

// New validates cfg and allocates every buffer in State. NV[d] must be
// 1 or (>=5 and congruent to 1 mod 4, the composite Newton-Cotes node
// rule); N and NV must be positive; Vmax must exceed Vmin on every
// active axis.
func New(cfg Config) (*State, error) {
	if cfg.EffD < 1 || cfg.EffD > 3 {
		return nil, fmt.Errorf("kinetic: EffD must be 1, 2, or 3, got %d", cfg.EffD)
	}
	for d := 0; d < 3; d++ {
		if cfg.N[d] <= 0 {
			return nil, fmt.Errorf("kinetic: N[%d] must be positive, got %d", d, cfg.N[d])
		}
		if cfg.NV[d] <= 0 {
			return nil, fmt.Errorf("kinetic: NV[%d] must be positive, got %d", d, cfg.NV[d])
		}
		active := d < cfg.EffD
		if active && cfg.NV[d] != 1 && (cfg.NV[d] < 5 || (cfg.NV[d]-1)%4 != 0) {
			return nil, fmt.Errorf("kinetic: NV[%d]=%d must be 1 or (>=5 and congruent to 1 mod 4)", d, cfg.NV[d])
		}
		if !active && cfg.NV[d] != 1 {
			return nil, fmt.Errorf("kinetic: inactive axis %d must have NV[%d]=1, got %d", d, d, cfg.NV[d])
		}
		if active && cfg.Vmax[d] <= cfg.Vmin[d] {
			return nil, fmt.Errorf("kinetic: Vmax[%d] (%v) must exceed Vmin[%d] (%v)", d, cfg.Vmax[d], d, cfg.Vmin[d])
		}
	}
	if cfg.Closure == nil {
		return nil, fmt.Errorf("kinetic: Closure must not be nil")
	}
	pr := cfg.Pr
	if pr == 0 {
		pr = 1
	}

	m := cfg.Mesh
	if m == nil {
		extents := [3]float64{float64(cfg.N[0]), float64(cfg.N[1]), float64(cfg.N[2])}
		var err error
		m, err = mesh.NewUniform(cfg.N, extents)
		if err != nil {
			return nil, err
		}
	} else if len(m.Cells) != cfg.N[0]*cfg.N[1]*cfg.N[2] {
		return nil, fmt.Errorf("kinetic: mesh has %d cells, want %d", len(m.Cells), cfg.N[0]*cfg.N[1]*cfg.N[2])
	}
	quad, err := quadrature.NewBox(cfg.EffD, cfg.NV, cfg.Vmin, cfg.Vmax)
	if err != nil {
		return nil, err
	}

	g := newGrid(cfg.N)
	vg := newVelocityGrid(cfg.NV)
	ns, nv := g.ns(), vg.nv()
	d := cfg.EffD

	s := &State{
		EffD: d, N: cfg.N, NV: cfg.NV, Vmin: cfg.Vmin, Vmax: cfg.Vmax,
		Mesh: m, Quad: quad, Closure: cfg.Closure, R: cfg.R, K: cfg.K, Pr: pr,
		grid: g, vg: vg, Ns: ns, Nv: nv,

		Rho: utils.NewVector(ns), RhoV: utils.NewMatrix(ns, d), RhoE: utils.NewVector(ns),
		G: utils.NewMatrix(ns, nv), B: utils.NewMatrix(ns, nv),
		Gbarp: utils.NewMatrix(ns, nv), Bbarp: utils.NewMatrix(ns, nv),
		Rhoh: utils.NewMatrix(ns, d), RhoEh: utils.NewMatrix(ns, d),
		ReuseFluxBuffers: cfg.ReuseFluxBuffers,
	}
	if cfg.ReuseFluxBuffers {
		// After stage 2b the gbarp/bbarp storage is dead until the next
		// step's stage 1a, so Fg/Fb may alias it. Gbarp must not be
		// read after stage 2b.
		s.Fg, s.Fb = s.Gbarp, s.Bbarp
	} else {
		s.Fg = utils.NewMatrix(ns, nv)
		s.Fb = utils.NewMatrix(ns, nv)
	}
	for dim := 0; dim < d; dim++ {
		s.Gsigma[dim] = utils.NewMatrix(ns, nv)
		s.Bsigma[dim] = utils.NewMatrix(ns, nv)
		s.Gbarpbound[dim] = utils.NewMatrix(ns, nv)
		s.Bbarpbound[dim] = utils.NewMatrix(ns, nv)
		s.Gbar[dim] = utils.NewMatrix(ns, nv)
		s.Bbar[dim] = utils.NewMatrix(ns, nv)
		s.RhoVh[dim] = utils.NewMatrix(ns, d)
		for dim2 := 0; dim2 < d; dim2++ {
			s.Gsigma2[dim][dim2] = utils.NewMatrix(ns, nv)
			s.Bsigma2[dim][dim2] = utils.NewMatrix(ns, nv)
		}
	}
	return s, nil
}

// Xi returns the velocity-node coordinate vector (xi_x, xi_y, xi_z) for
// phase-space column v.
func (s *State) Xi(v int) (xix, xiy, xiz float64) {
	vx, vy, vz := s.vg.vxvyvz(v)
	return s.Quad.Node(vx, vy, vz)
}

// Weight returns the quadrature weight W(v) for phase-space column v.
func (s *State) Weight(v int) float64 {
	vx, vy, vz := s.vg.vxvyvz(v)
	return s.Quad.Weight(vx, vy, vz)
}

// Cv is the specific heat at constant volume, (3+K)*R/2.
func (s *State) Cv() float64 { return (3 + s.K) * s.R / 2 }

// Gamma is the heat capacity ratio, (K+5)/(K+3).
func (s *State) Gamma() float64 { return (s.K + 5) / (s.K + 3) }
