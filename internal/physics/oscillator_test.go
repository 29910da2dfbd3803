package physics

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func TestOscillatorDerive(t *testing.T) {
	osc := NewOscillator()
	d := osc.Derive(ode.Vector(1.0, 0.5), 0)
	if d.Data[0] != 0.5 || d.Data[1] != -1.0 {
		t.Errorf("got %v, want [0.5 -1]", d.Data)
	}
}

func TestOscillatorDeriveBatched(t *testing.T) {
	osc := NewOscillator()
	y := ode.State{Data: []float64{1.0, 2.0, 0.1, 0.2}, Shape: ode.Shape{2, 2}}
	d := osc.Derive(y, 0)

	if !d.SameShape(y) {
		t.Fatalf("derivative shape %v, want %v", d.Shape, y.Shape)
	}
	want := []float64{0.1, 0.2, -1.0, -2.0}
	for i := range want {
		if d.Data[i] != want[i] {
			t.Fatalf("got %v, want %v", d.Data, want)
		}
	}
}

func TestOscillatorEnergy(t *testing.T) {
	osc := NewOscillator()
	// x=1, v=0 at unit mass and stiffness holds energy 0.5
	if e := osc.Energy(ode.Vector(1, 0)); math.Abs(e-0.5) > 1e-12 {
		t.Errorf("energy: got %v, want 0.5", e)
	}
	// a batch sums per-column energies
	y := ode.State{Data: []float64{1, 0, 0, 1}, Shape: ode.Shape{2, 2}}
	if e := osc.Energy(y); math.Abs(e-1.0) > 1e-12 {
		t.Errorf("batched energy: got %v, want 1.0", e)
	}
}

func TestOscillatorPeriod(t *testing.T) {
	// m=k=1 gives angular frequency 1; a quarter period after (1,0)
	// the position crosses zero
	osc := NewOscillator()
	dt := 1e-4
	steps := int(math.Round(math.Pi / 2 / dt))
	tr, err := ode.NewFixedStep(dt).Integrate(osc.Derive, ode.Vector(1, 0), 0, steps)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if math.Abs(tr.Final().Data[0]) > 1e-2 {
		t.Errorf("position at quarter period: got %v, want ~0", tr.Final().Data[0])
	}
}

func TestBallDropAnalytic(t *testing.T) {
	ball := NewBallDrop()
	d := ball.Derive(ode.Vector(10, 3), 0)
	if d.Data[0] != 3 || d.Data[1] != -ball.Gravity {
		t.Errorf("got %v, want [3 %v]", d.Data, -ball.Gravity)
	}

	// small dt tracks h(t) = v0*t - g*t^2/2
	dt := 1e-4
	v0 := 20.0
	tr, err := ode.NewFixedStep(dt).Integrate(ball.Derive, ode.Vector(0, v0), 0, 10000)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	elapsed := 1.0
	want := v0*elapsed - 0.5*ball.Gravity*elapsed*elapsed
	if math.Abs(tr.Final().Data[0]-want) > 1e-2 {
		t.Errorf("height after 1s: got %v, want %v", tr.Final().Data[0], want)
	}
}
