// Package physics provides the dynamical models driven by the
// integrator.
//
// Each model implements [ode.System], and the conservative ones also
// implement [ode.Hamiltonian] for energy-drift diagnostics:
//
//   - [Oscillator]: undamped harmonic oscillator
//   - [BallDrop]: vertical motion under constant gravity
//
// Every Derive works elementwise over a position block followed by a
// velocity block, so the same model code runs a [2] state or a
// batched [2, k] state.
package physics
