package kinetic

import "gokinetic/internal/utils"

// grid carries the periodic neighbor arithmetic for the spatial index
// s = i + Nx*j + Nx*Ny*k. The lower/upper neighbor of every cell along
// every axis is precomputed once into utils.Index connectivity tables.
// When an axis is inactive (N[d] == 1) its L/R neighbor collapses to
// the cell itself, so any slope computed across it is zero (the
// limiter returns 0 for equal samples).
type grid struct {
	Nx, Ny, Nz int
	nbrL, nbrR [3]utils.Index
}

func newGrid(N [3]int) grid {
	g := grid{Nx: N[0], Ny: N[1], Nz: N[2]}
	ns := g.ns()
	for dim := 0; dim < 3; dim++ {
		g.nbrL[dim] = utils.NewIndex(ns)
		g.nbrR[dim] = utils.NewIndex(ns)
	}
	for s := 0; s < ns; s++ {
		i, j, k := g.ijk(s)
		g.nbrL[0][s] = g.spatialIndex((i-1+g.Nx)%g.Nx, j, k)
		g.nbrR[0][s] = g.spatialIndex((i+1)%g.Nx, j, k)
		g.nbrL[1][s] = g.spatialIndex(i, (j-1+g.Ny)%g.Ny, k)
		g.nbrR[1][s] = g.spatialIndex(i, (j+1)%g.Ny, k)
		g.nbrL[2][s] = g.spatialIndex(i, j, (k-1+g.Nz)%g.Nz)
		g.nbrR[2][s] = g.spatialIndex(i, j, (k+1)%g.Nz)
	}
	return g
}

func (g grid) ns() int { return g.Nx * g.Ny * g.Nz }

func (g grid) spatialIndex(i, j, k int) int {
	return i + g.Nx*j + g.Nx*g.Ny*k
}

func (g grid) ijk(s int) (i, j, k int) {
	i = s % g.Nx
	j = (s / g.Nx) % g.Ny
	k = s / (g.Nx * g.Ny)
	return
}

// neighbors returns the periodic lower (L) and upper (R) spatial
// neighbor of s along axis dim.
func (g grid) neighbors(s, dim int) (sL, sR int) {
	return g.nbrL[dim][s], g.nbrR[dim][s]
}

// velocityGrid packs (vx,vy,vz) into the column index of the
// (Ns,Nv)-shaped phase-space matrices: v = vx + NVx*vy + NVx*NVy*vz.
type velocityGrid struct {
	NVx, NVy, NVz int
}

func newVelocityGrid(NV [3]int) velocityGrid {
	return velocityGrid{NVx: NV[0], NVy: NV[1], NVz: NV[2]}
}

func (vg velocityGrid) nv() int { return vg.NVx * vg.NVy * vg.NVz }

func (vg velocityGrid) index(vx, vy, vz int) int {
	return vx + vg.NVx*vy + vg.NVx*vg.NVy*vz
}

func (vg velocityGrid) vxvyvz(v int) (vx, vy, vz int) {
	vx = v % vg.NVx
	vy = (v / vg.NVx) % vg.NVy
	vz = v / (vg.NVx * vg.NVy)
	return
}
