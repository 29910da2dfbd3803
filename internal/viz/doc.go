// Package viz renders trajectories in the terminal: static asciigraph
// plots styled with lipgloss, and a bubbletea live view that steps the
// integrator in real time.
package viz
