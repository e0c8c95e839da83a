// Package config provides the YAML run-parameters file read by the
// driver: a flat struct parsed with github.com/ghodss/yaml, which
// converts the YAML to JSON and decodes it with encoding/json, so keys
// are matched to the Go field names case-insensitively (the `yaml`
// tags are not consulted).
package config

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// RunParameters is the full set of user-supplied knobs for one kinetic
// run: domain shape, velocity-space discretization, gas constants, and
// driver cadence.
type RunParameters struct {
	Title string `yaml:"Title"`

	EffD int        `yaml:"EffD"`
	N    [3]int     `yaml:"N"`
	NV   [3]int     `yaml:"NV"`
	Vmin [3]float64 `yaml:"Vmin"`
	Vmax [3]float64 `yaml:"Vmax"`

	R  float64 `yaml:"R"`
	K  float64 `yaml:"K"`
	Pr float64 `yaml:"Pr"`

	FinalTime float64 `yaml:"FinalTime"`
	DtCFL     float64 `yaml:"DtCFL"`
	DtDump    float64 `yaml:"DtDump"`

	InitCase string `yaml:"InitCase"` // "uniform" or "sod"

	Rho0 float64    `yaml:"Rho0"`
	U0   [3]float64 `yaml:"U0"`
	T0   float64    `yaml:"T0"`

	ReuseFluxBuffers bool `yaml:"ReuseFluxBuffers"`
}

// Parse unmarshals YAML bytes into p.
func (p *RunParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return err
	}
	// YAML 1.1 reads the bare key N as the boolean false, which
	// ghodss/yaml turns into the JSON key "false"; decode it into N.
	var alias struct {
		N *[3]int `json:"false"`
	}
	if err := yaml.Unmarshal(data, &alias); err != nil {
		return err
	}
	if alias.N != nil {
		p.N = *alias.N
	}
	return nil
}

// Validate checks the fields the driver must supply before
// constructing the solver (kinetic.New validates the rest).
func (p *RunParameters) Validate() error {
	if p.FinalTime <= 0 {
		return fmt.Errorf("config: FinalTime must be positive, got %v", p.FinalTime)
	}
	if p.DtDump <= 0 {
		return fmt.Errorf("config: DtDump must be positive, got %v", p.DtDump)
	}
	switch p.InitCase {
	case "uniform", "sod", "":
	default:
		return fmt.Errorf("config: unknown InitCase %q", p.InitCase)
	}
	return nil
}

// Print reports Title, EffD, N, NV, FinalTime and InitCase, one line
// each; the other fields are not printed.
func (p *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("%d\t\t\t= EffD\n", p.EffD)
	fmt.Printf("%v\t\t= N\n", p.N)
	fmt.Printf("%v\t\t= NV\n", p.NV)
	fmt.Printf("%8.5f\t\t= FinalTime\n", p.FinalTime)
	fmt.Printf("[%s]\t\t= InitCase\n", p.InitCase)
}
