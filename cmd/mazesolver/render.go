package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/mazesearch"
)

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	goalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	frontierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	exploredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// overlay selects which cells to paint on top of the bare grid. Path wins
// over frontier, frontier over explored.
type overlay struct {
	path     map[mazesearch.Position]bool
	frontier map[mazesearch.Position]bool
	explored map[mazesearch.Position]bool
}

func renderMaze(m *mazesearch.Maze, o overlay) string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width; x++ {
			p := mazesearch.Position{X: x, Y: y}
			switch {
			case p == m.Start:
				b.WriteString(startStyle.Render("A"))
			case p == m.Goal:
				b.WriteString(goalStyle.Render("B"))
			case !m.IsOpen(x, y):
				b.WriteString(wallStyle.Render("#"))
			case o.path[p]:
				b.WriteString(pathStyle.Render("*"))
			case o.frontier[p]:
				b.WriteString(frontierStyle.Render("o"))
			case o.explored[p]:
				b.WriteString(exploredStyle.Render("."))
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func renderSolved(m *mazesearch.Maze, path []mazesearch.Position) string {
	return renderMaze(m, overlay{path: positionSet(path)})
}

func positionSet(positions []mazesearch.Position) map[mazesearch.Position]bool {
	set := make(map[mazesearch.Position]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	return set
}
