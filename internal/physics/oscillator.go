package physics

import "github.com/san-kum/odelab/internal/ode"

const (
	DefaultMass      = 1.0
	DefaultStiffness = 1.0
)

// Oscillator is an undamped harmonic oscillator. States are laid out
// as a position block followed by a velocity block, so the same Derive
// serves a single oscillator (shape [2]) and a batch of k independent
// oscillators (shape [2, k]).
type Oscillator struct {
	Mass      float64
	Stiffness float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{Mass: DefaultMass, Stiffness: DefaultStiffness}
}

func (o *Oscillator) StateDim() int { return 2 }

func (o *Oscillator) Derive(y ode.State, t float64) ode.State {
	d := y.Zero()
	n := y.Size() / 2
	w := o.Stiffness / o.Mass
	for i := 0; i < n; i++ {
		d.Data[i] = y.Data[n+i]
		d.Data[n+i] = -w * y.Data[i]
	}
	return d
}

// Energy sums kinetic and spring potential energy over the batch.
func (o *Oscillator) Energy(y ode.State) float64 {
	n := y.Size() / 2
	e := 0.0
	for i := 0; i < n; i++ {
		x, v := y.Data[i], y.Data[n+i]
		e += 0.5*o.Stiffness*x*x + 0.5*o.Mass*v*v
	}
	return e
}
