// Package dump writes the driver's periodic (rho, rhou, rhoE)
// snapshots to disk. Each run gets its own directory tagged with a
// google/uuid run id so repeated runs with the same parameters never
// collide.
package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"gokinetic/internal/kinetic"
)

// Writer appends one snapshot file per call to Write, under
// <baseDir>/<runID>/step-<n>.csv.
type Writer struct {
	Dir   string
	RunID uuid.UUID
	n     int
}

// NewWriter creates the run's dump directory under baseDir and returns
// a Writer rooted there.
func NewWriter(baseDir string) (*Writer, error) {
	id := uuid.New()
	dir := filepath.Join(baseDir, id.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dump: creating run directory: %w", err)
	}
	return &Writer{Dir: dir, RunID: id}, nil
}

// Write snapshots rho, rhov, rhoE for every cell in s to
// step-<n>.csv, one row per cell.
func (w *Writer) Write(s *kinetic.State, t float64) error {
	path := filepath.Join(w.Dir, fmt.Sprintf("step-%05d.csv", w.n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump: creating %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# t=%v\n", t)
	fmt.Fprintf(f, "cell,x,y,z,rho,rhou,rhov,rhow,rhoE\n")
	for cell := 0; cell < s.Ns; cell++ {
		c := s.Mesh.Cells[cell]
		var ru, rv, rw float64
		if s.EffD > 0 {
			ru = s.RhoV.At(cell, 0)
		}
		if s.EffD > 1 {
			rv = s.RhoV.At(cell, 1)
		}
		if s.EffD > 2 {
			rw = s.RhoV.At(cell, 2)
		}
		fmt.Fprintf(f, "%d,%v,%v,%v,%v,%v,%v,%v,%v\n",
			cell, c.X, c.Y, c.Z, s.Rho.At(cell), ru, rv, rw, s.RhoE.At(cell))
	}
	w.n++
	return nil
}
