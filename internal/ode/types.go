package ode

import "math"

// Shape is the tensor layout of a State, one entry per axis.
type Shape []int

// Size returns the number of elements a state of this shape holds.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// State holds every dynamical quantity of a system at one instant:
// flat float64 storage plus the shape it is read as. All arithmetic is
// elementwise, so a Derivative written against the flat layout serves a
// [2] state and a batched [2, k] state unchanged.
type State struct {
	Data  []float64
	Shape Shape
}

// NewState returns a zero-valued state of the given shape.
func NewState(shape Shape) State {
	return State{Data: make([]float64, shape.Size()), Shape: shape.Clone()}
}

// Vector returns a rank-1 state holding the given values.
func Vector(vals ...float64) State {
	s := State{Data: make([]float64, len(vals)), Shape: Shape{len(vals)}}
	copy(s.Data, vals)
	return s
}

func (s State) Size() int { return len(s.Data) }

func (s State) Clone() State {
	c := State{Data: make([]float64, len(s.Data)), Shape: s.Shape.Clone()}
	copy(c.Data, s.Data)
	return c
}

// Zero returns a zero-valued state of the same shape as s.
func (s State) Zero() State {
	return NewState(s.Shape)
}

func (s State) SameShape(o State) bool {
	return s.Shape.Equal(o.Shape)
}

// AddScaled returns s + h*d elementwise.
func (s State) AddScaled(d State, h float64) State {
	r := s.Clone()
	for i := range r.Data {
		r.Data[i] += h * d.Data[i]
	}
	return r
}

func (s State) Sub(o State) State {
	r := s.Clone()
	for i := range r.Data {
		r.Data[i] -= o.Data[i]
	}
	return r
}

func (s State) Scale(h float64) State {
	r := s.Clone()
	for i := range r.Data {
		r.Data[i] *= h
	}
	return r
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s.Data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) IsValid() bool {
	for _, v := range s.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Derivative maps a state and a time to the state's rate of change. It
// must be pure and must return a value of the same shape as its input.
type Derivative func(y State, t float64) State

// System is a dynamical model that can supply its own derivative.
type System interface {
	Derive(y State, t float64) State
	StateDim() int
}

// Hamiltonian is implemented by systems with a conserved energy.
type Hamiltonian interface {
	Energy(y State) float64
}

// Solver advances an initial state across a time span and returns the
// final state. The shooting layer consumes any IVP solver through this
// interface.
type Solver interface {
	Solve(f Derivative, y0 State, t0, t1 float64) (State, error)
}

// Metric accumulates a scalar observation over a trajectory.
type Metric interface {
	Name() string
	Observe(y State, t float64)
	Value() float64
	Reset()
}
