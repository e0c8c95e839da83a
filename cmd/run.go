/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"gokinetic/internal/closure"
	"gokinetic/internal/config"
	"gokinetic/internal/dump"
	"gokinetic/internal/kinetic"
	"gokinetic/internal/sod"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a kinetic solver case from a YAML parameters file",
	Long:  `Run a kinetic solver case from a YAML parameters file, dumping periodic (rho, rhou, rhoE) snapshots to disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		paramsFile, _ := cmd.Flags().GetString("params")
		dumpDir, _ := cmd.Flags().GetString("dumpDir")
		doProfile, _ := cmd.Flags().GetBool("profile")

		if doProfile {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		rp := processInput(paramsFile)
		if err := RunCase(rp, dumpDir); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("params", "p", "", "YAML file of run parameters")
	runCmd.Flags().StringP("dumpDir", "o", "dumps", "directory under which this run's dump files are written")
	runCmd.Flags().Bool("profile", false, "enable CPU profiling for the run")
}

func processInput(paramsFile string) *config.RunParameters {
	rp := &config.RunParameters{
		EffD: 1, N: [3]int{64, 1, 1}, NV: [3]int{33, 1, 1},
		Vmin: [3]float64{-10, 0, 0}, Vmax: [3]float64{10, 0, 0},
		R: 1, K: 3, Pr: 1,
		FinalTime: 0.1, DtCFL: kinetic.DefaultDtCFL, DtDump: 0.01,
		InitCase: "sod", Rho0: 1, T0: 1,
	}
	if paramsFile == "" {
		return rp
	}
	data, err := ioutil.ReadFile(paramsFile)
	if err != nil {
		panic(err)
	}
	if err := rp.Parse(data); err != nil {
		panic(err)
	}
	if err := rp.Validate(); err != nil {
		panic(err)
	}
	return rp
}

// RunCase builds the kinetic core from rp, initializes it, and evolves
// it to FinalTime, dumping (rho, rhou, rhoE) every DtDump.
func RunCase(rp *config.RunParameters, dumpDir string) error {
	rp.Print()

	cl := closure.NewIdealGas(rp.EffD, rp.R, rp.K)
	s, err := kinetic.New(kinetic.Config{
		EffD: rp.EffD, N: rp.N, NV: rp.NV, Vmin: rp.Vmin, Vmax: rp.Vmax,
		Closure: cl, R: rp.R, K: rp.K, Pr: rp.Pr,
		ReuseFluxBuffers: rp.ReuseFluxBuffers,
	})
	if err != nil {
		return fmt.Errorf("building kinetic state: %w", err)
	}

	switch rp.InitCase {
	case "sod":
		params := sod.DefaultParams(float64(rp.N[0]) / 2)
		sodProfile := params.Profile(1e-6)
		s.InitFunc(func(x, y, z float64) (float64, [3]float64, float64) {
			rho, u, T := sodProfile(x)
			return rho, [3]float64{u, 0, 0}, T
		})
	default:
		s.InitUniform(rp.Rho0, rp.U0, rp.T0)
	}

	w, err := dump.NewWriter(dumpDir)
	if err != nil {
		return fmt.Errorf("opening dump writer: %w", err)
	}
	fmt.Printf("run id: %s\n", w.RunID)

	if err := w.Write(s, 0); err != nil {
		return fmt.Errorf("writing initial dump: %w", err)
	}
	nextDump := rp.DtDump
	tSim := 0.0
	tSim = s.Evolve(tSim, rp.FinalTime, rp.DtCFL, rp.DtDump, func(t float64) {
		if rp.DtDump > 0 && t < nextDump {
			return
		}
		if err := w.Write(s, t); err != nil {
			fmt.Println("dump error:", err)
		}
		nextDump += rp.DtDump
	})
	fmt.Printf("finished at t=%v, residual=%v\n", tSim, s.Residual())
	return nil
}
