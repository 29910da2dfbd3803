package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	captionText = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Plot renders one state-component series as a terminal graph.
func Plot(title string, series []float64, height int) string {
	if len(series) == 0 {
		return ""
	}
	graph := asciigraph.Plot(series, asciigraph.Height(height), asciigraph.Width(72))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")
	return b.String()
}

// PlotComponents renders several components stacked, one graph each.
func PlotComponents(titles []string, series [][]float64, height int) string {
	var b strings.Builder
	for i, s := range series {
		title := fmt.Sprintf("y%d", i)
		if i < len(titles) {
			title = titles[i]
		}
		b.WriteString(Plot(title, s, height))
	}
	return b.String()
}

// Caption renders a dimmed single-line annotation under a graph.
func Caption(format string, args ...any) string {
	return captionText.Render(fmt.Sprintf(format, args...)) + "\n"
}
