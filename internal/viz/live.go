package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/ode"
)

const historyCapacity = 600

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	liveHeading = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
)

type TickMsg time.Time

// Model steps a fixed-step integration in real time and graphs the
// first state component as it evolves.
type Model struct {
	deriv     ode.Derivative
	energy    ode.Hamiltonian
	integ     *ode.FixedStep
	state     ode.State
	t         float64
	running   bool
	failed    error
	modelName string
	history   []float64
	fps       int
}

func NewModel(deriv ode.Derivative, energy ode.Hamiltonian, dt float64, initState ode.State, modelName string, fps int) Model {
	return Model{
		deriv:     deriv,
		energy:    energy,
		integ:     ode.NewFixedStep(dt),
		state:     initState.Clone(),
		running:   true,
		modelName: modelName,
		history:   []float64{initState.Data[0]},
		fps:       fps,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && m.failed == nil {
			// several integration steps per frame keeps sim time
			// ahead of the frame clock
			for i := 0; i < 4; i++ {
				next, err := m.integ.Step(m.deriv, m.state, m.t)
				if err != nil {
					m.failed = err
					break
				}
				m.state = next
				m.t += m.integ.Dt
			}
			m.history = append(m.history, m.state.Data[0])
			if len(m.history) > historyCapacity {
				m.history = m.history[len(m.history)-historyCapacity:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(liveHeading.Render(fmt.Sprintf("odelab live — %s", m.modelName)))
	b.WriteString("\n")

	graph := asciigraph.Plot(m.history, asciigraph.Height(14), asciigraph.Width(64))
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")

	stats := []string{
		labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%8.3f", m.t)),
		labelStyle.Render("y0") + valueStyle.Render(fmt.Sprintf("%8.4f", m.state.Data[0])),
	}
	if m.energy != nil {
		stats = append(stats, labelStyle.Render("energy")+valueStyle.Render(fmt.Sprintf("%8.4f", m.energy.Energy(m.state))))
	}
	if m.failed != nil {
		stats = append(stats, valueStyle.Render(m.failed.Error()))
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	b.WriteString(helpStyle.Render("space pause · q quit"))
	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
