package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/metrics"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/physics"
)

func TestDriftSlopeSynthetic(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	drift := []float64{0.5, 1.5, 2.5, 3.5, 4.5}
	if got := DriftSlope(times, drift); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("slope: got %v, want 1", got)
	}
}

func TestDriftFitOscillator(t *testing.T) {
	// Euler on the unit oscillator grows relative energy drift
	// roughly like dt per unit time
	osc := physics.NewOscillator()
	dt := 0.01
	tr, err := ode.NewFixedStep(dt).Integrate(osc.Derive, ode.Vector(1, 0), 0, 1000)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	m := metrics.NewEnergyDrift(osc)
	tr.Each(m.Observe)

	slope, r2 := DriftFit(tr.Times, m.Series())
	if slope < 0.5*dt || slope > 2*dt {
		t.Errorf("slope %v outside [%v, %v]", slope, 0.5*dt, 2*dt)
	}
	if r2 < 0.98 {
		t.Errorf("drift growth should be close to linear, R^2 = %v", r2)
	}
}

func TestDriftSlopeShrinksWithDt(t *testing.T) {
	osc := physics.NewOscillator()
	slopes := make([]float64, 0, 2)
	for _, cfg := range []struct {
		dt    float64
		steps int
	}{{0.01, 1000}, {0.001, 10000}} {
		tr, err := ode.NewFixedStep(cfg.dt).Integrate(osc.Derive, ode.Vector(1, 0), 0, cfg.steps)
		if err != nil {
			t.Fatalf("integrate failed: %v", err)
		}
		m := metrics.NewEnergyDrift(osc)
		tr.Each(m.Observe)
		slopes = append(slopes, DriftSlope(tr.Times, m.Series()))
	}
	if slopes[1] >= slopes[0] {
		t.Errorf("first-order scheme: slope should shrink with dt, got %v then %v",
			slopes[0], slopes[1])
	}
}
