package shoot

import "github.com/san-kum/odelab/internal/ode"

// Problem is a two-point boundary value problem posed for shooting:
// guess the unknown scalar initial condition, integrate the IVP across
// [T0, T1], and measure how far component Component of the final state
// lands from Target. Everything the residual needs is an explicit
// field here; nothing is captured from enclosing scope.
type Problem struct {
	Deriv     ode.Derivative
	InitState func(guess float64) ode.State
	Solver    ode.Solver
	T0, T1    float64
	Target    float64
	Component int
}

// Residual returns the boundary-miss function fed to a Bisector.
func (p Problem) Residual() Residual {
	return func(guess float64) (float64, error) {
		final, err := p.Solver.Solve(p.Deriv, p.InitState(guess), p.T0, p.T1)
		if err != nil {
			return 0, err
		}
		return final.Data[p.Component] - p.Target, nil
	}
}
