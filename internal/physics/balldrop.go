package physics

import "github.com/san-kum/odelab/internal/ode"

// DefaultGravity is standard gravity in m/s^2.
const DefaultGravity = 9.81

// BallDrop is vertical motion under constant gravity, no drag. State
// is [height, velocity] with velocity positive upward; like the
// oscillator it generalizes to a batch of k columns via the
// position-block/velocity-block layout.
type BallDrop struct {
	Mass    float64
	Gravity float64
}

func NewBallDrop() *BallDrop {
	return &BallDrop{Mass: DefaultMass, Gravity: DefaultGravity}
}

func (b *BallDrop) StateDim() int { return 2 }

func (b *BallDrop) Derive(y ode.State, t float64) ode.State {
	d := y.Zero()
	n := y.Size() / 2
	for i := 0; i < n; i++ {
		d.Data[i] = y.Data[n+i]
		d.Data[n+i] = -b.Gravity
	}
	return d
}

func (b *BallDrop) Energy(y ode.State) float64 {
	n := y.Size() / 2
	e := 0.0
	for i := 0; i < n; i++ {
		h, v := y.Data[i], y.Data[n+i]
		e += b.Mass*b.Gravity*h + 0.5*b.Mass*v*v
	}
	return e
}
