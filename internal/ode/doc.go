// Package ode provides the core primitives for fixed-grid integration
// of ordinary differential equations.
//
// The package defines the fundamental types:
//
//   - [State]: fixed-shape tensor of dynamical quantities
//   - [Derivative]: pure function dY/dt = f(Y, t)
//   - [FixedStep]: forward (explicit) Euler integrator
//   - [Trajectory]: the full sequence of states from one run
//   - [Solver]: the IVP interface consumed by the shooting layer
//
// # Example
//
//	osc := physics.NewOscillator()
//	integ := ode.NewFixedStep(0.01)
//	tr, _ := integ.Integrate(osc.Derive, ode.Vector(1, 0), 0, 1000)
//
// States of any fixed shape are supported: a [2] position/velocity
// pair and a batched [2, k] block integrate through the same code, as
// long as the derivative works elementwise over the flat layout.
package ode
