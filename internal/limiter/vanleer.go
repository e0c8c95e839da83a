// Package limiter implements the scalar Van Leer slope limiter used
// by the spatial reconstruction.
package limiter

// VanLeer computes the limited slope over three samples (phiL, phiC,
// phiR) at physical coordinates (xL, xC, xR): the one-sided slopes
// a, b are combined by their harmonic mean when they agree in sign,
// and zero otherwise (monotonicity switch).
func VanLeer(phiL, phiC, phiR, xL, xC, xR float64) float64 {
	a := (phiC - phiL) / (xC - xL)
	b := (phiR - phiC) / (xR - xC)
	if a*b <= 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}
