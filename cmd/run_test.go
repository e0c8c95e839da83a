package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gokinetic/internal/config"
)

func TestRunCaseUniform(t *testing.T) {
	rp := &config.RunParameters{
		EffD: 1, N: [3]int{4, 1, 1}, NV: [3]int{9, 1, 1},
		Vmin: [3]float64{-6, 0, 0}, Vmax: [3]float64{6, 0, 0},
		R: 1, K: 3, Pr: 1,
		FinalTime: 1.0 / 2048, DtCFL: 1.0 / 2048, DtDump: 1.0 / 2048,
		InitCase: "uniform", Rho0: 1, T0: 1,
	}
	require.NoError(t, RunCase(rp, t.TempDir()))
}
