package ode

import (
	"fmt"
	"math"
)

// FixedStep advances a state with forward Euler steps of constant size.
// The derivative is evaluated at the left endpoint of each step, so the
// scheme is first-order accurate in dt. Negative and zero step sizes
// are accepted; a zero dt yields a constant trajectory.
type FixedStep struct {
	Dt float64
}

func NewFixedStep(dt float64) *FixedStep {
	return &FixedStep{Dt: dt}
}

// Step returns y + dt*f(y, t).
func (e *FixedStep) Step(f Derivative, y State, t float64) (State, error) {
	dy := f(y, t)
	if !dy.SameShape(y) {
		return State{}, fmt.Errorf("%w: state %v, derivative %v", ErrShapeMismatch, y.Shape, dy.Shape)
	}
	return y.AddScaled(dy, e.Dt), nil
}

// Integrate takes n Euler steps from y0 and returns the full n+1 point
// trajectory, with trajectory[0] == y0.
func (e *FixedStep) Integrate(f Derivative, y0 State, t0 float64, n int) (*Trajectory, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrStepCount, n)
	}

	tr := &Trajectory{
		States: make([]State, 0, n+1),
		Times:  make([]float64, 0, n+1),
	}
	y := y0.Clone()
	tr.States = append(tr.States, y)
	tr.Times = append(tr.Times, t0)

	for i := 0; i < n; i++ {
		t := t0 + float64(i)*e.Dt
		next, err := e.Step(f, y, t)
		if err != nil {
			return nil, fmt.Errorf("step %d (t=%.4f): %w", i, t, err)
		}
		y = next
		tr.States = append(tr.States, y)
		tr.Times = append(tr.Times, t0+float64(i+1)*e.Dt)
	}

	return tr, nil
}

// Solve implements Solver by splitting [t0, t1] into whole steps of
// roughly Dt, adjusted so the final step lands exactly on t1.
func (e *FixedStep) Solve(f Derivative, y0 State, t0, t1 float64) (State, error) {
	if t1 == t0 {
		return y0.Clone(), nil
	}
	n := int(math.Round((t1 - t0) / e.Dt))
	if n < 1 {
		n = 1
	}
	inner := FixedStep{Dt: (t1 - t0) / float64(n)}
	tr, err := inner.Integrate(f, y0, t0, n)
	if err != nil {
		return State{}, err
	}
	return tr.Final(), nil
}
