package ode

import (
	"math"
	"testing"
)

func TestShapeSizeAndEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		size int
		eq   bool
	}{
		{"vector", Shape{2}, Shape{2}, 2, true},
		{"matrix", Shape{2, 2}, Shape{2, 2}, 4, true},
		{"rank differs", Shape{4}, Shape{2, 2}, 4, false},
		{"dim differs", Shape{2, 3}, Shape{2, 2}, 6, false},
		{"scalar", Shape{}, Shape{}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Size(); got != tt.size {
				t.Errorf("size: got %d, want %d", got, tt.size)
			}
			if got := tt.a.Equal(tt.b); got != tt.eq {
				t.Errorf("equal: got %v, want %v", got, tt.eq)
			}
		})
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	s := Vector(1, 2, 3)
	c := s.Clone()
	c.Data[0] = 99
	c.Shape[0] = 7
	if s.Data[0] != 1 || s.Shape[0] != 3 {
		t.Errorf("clone aliases original: %v %v", s.Data, s.Shape)
	}
}

func TestStateAddScaled(t *testing.T) {
	s := Vector(1, 2)
	d := Vector(10, -10)
	r := s.AddScaled(d, 0.5)
	if r.Data[0] != 6 || r.Data[1] != -3 {
		t.Errorf("got %v, want [6 -3]", r.Data)
	}
	if s.Data[0] != 1 || s.Data[1] != 2 {
		t.Errorf("receiver mutated: %v", s.Data)
	}
}

func TestStateNorm(t *testing.T) {
	s := Vector(3, 4)
	if got := s.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("norm: got %v, want 5", got)
	}
}

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"finite", Vector(1, -2, 0), true},
		{"nan", Vector(1, math.NaN()), false},
		{"inf", Vector(math.Inf(1), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("got %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestTrajectoryComponent(t *testing.T) {
	tr := &Trajectory{
		States: []State{Vector(1, 10), Vector(2, 20), Vector(3, 30)},
		Times:  []float64{0, 1, 2},
	}
	got := tr.Component(1)
	want := []float64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("component 1: got %v, want %v", got, want)
		}
	}
	if tr.Final().Data[0] != 3 {
		t.Errorf("final: got %v", tr.Final().Data)
	}
}
