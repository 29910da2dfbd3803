package store

import (
	"encoding/json"
	"os"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/shoot"
)

type ExportData struct {
	Model   string             `json:"model"`
	Dt      float64            `json:"dt"`
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	States  [][]float64        `json:"states"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a trajectory to stdout as indented JSON.
func ExportJSON(model string, dt float64, tr *ode.Trajectory, metrics map[string]float64) error {
	data := ExportData{
		Model:   model,
		Dt:      dt,
		Steps:   tr.Len() - 1,
		Times:   tr.Times,
		States:  make([][]float64, tr.Len()),
		Metrics: metrics,
	}
	for i, y := range tr.States {
		data.States[i] = y.Data
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

type ShootExport struct {
	Root        float64 `json:"root"`
	Residual    float64 `json:"residual"`
	Iterations  int     `json:"iterations"`
	Evaluations int     `json:"evaluations"`
	Converged   bool    `json:"converged"`
	BracketLow  float64 `json:"bracket_low"`
	BracketHigh float64 `json:"bracket_high"`
}

// ExportShootJSON writes a bisection result to stdout as indented JSON.
func ExportShootJSON(res shoot.Result) error {
	data := ShootExport{
		Root:        res.Root,
		Residual:    res.Residual,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Converged:   res.Converged,
		BracketLow:  res.Bracket.X1,
		BracketHigh: res.Bracket.X2,
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
