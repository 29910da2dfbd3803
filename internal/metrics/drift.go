package metrics

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// EnergyDrift samples the relative departure of a conserved energy
// from its value at the first observation. Forward Euler does not
// conserve energy, so this series is the standard diagnostic for
// integration error growth along a trajectory.
type EnergyDrift struct {
	name    string
	system  ode.Hamiltonian
	initial float64
	samples []float64
}

func NewEnergyDrift(sys ode.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{name: "energy_drift", system: sys}
}

func (m *EnergyDrift) Name() string { return m.name }

func (m *EnergyDrift) Observe(y ode.State, t float64) {
	e := m.system.Energy(y)
	if len(m.samples) == 0 {
		m.initial = e
	}
	drift := 0.0
	if m.initial != 0 {
		drift = math.Abs(e-m.initial) / math.Abs(m.initial)
	}
	m.samples = append(m.samples, drift)
}

// Value reports the drift at the most recent observation.
func (m *EnergyDrift) Value() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	return m.samples[len(m.samples)-1]
}

// Series returns drift at every observation, in order.
func (m *EnergyDrift) Series() []float64 { return m.samples }

func (m *EnergyDrift) Reset() {
	m.initial = 0
	m.samples = nil
}
