// Package shoot solves two-point boundary value problems by the
// shooting method: treat the unknown initial condition as the argument
// of a boundary residual and drive that residual to zero with
// bracketed bisection.
//
//	prob := shoot.Problem{
//	    Deriv:     ball.Derive,
//	    InitState: func(v0 float64) ode.State { return ode.Vector(0, v0) },
//	    Solver:    ode.NewFixedStep(1e-3),
//	    T1:        10,
//	}
//	res, err := shoot.NewBisector(1e-3, 100).Solve(prob.Residual(), 0, 50)
//
// The bisector treats its residual as an opaque black box; it never
// sees the integrator behind it.
package shoot
