package ode

// Trajectory is the ordered sequence of states produced by one
// integration run, one entry per grid point. It is built once by
// Integrate and must not be mutated afterwards.
type Trajectory struct {
	States []State
	Times  []float64
}

func (tr *Trajectory) Len() int { return len(tr.States) }

func (tr *Trajectory) Final() State { return tr.States[len(tr.States)-1] }

// Component extracts element i of every state as a flat series, for
// plotting and export.
func (tr *Trajectory) Component(i int) []float64 {
	out := make([]float64, len(tr.States))
	for k, s := range tr.States {
		out[k] = s.Data[i]
	}
	return out
}

// Each calls fn for every grid point in order.
func (tr *Trajectory) Each(fn func(y State, t float64)) {
	for i, s := range tr.States {
		fn(s, tr.Times[i])
	}
}
