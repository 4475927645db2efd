package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/mazesearch"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noPathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// tickMsg advances the path animation by one cell.
type tickMsg time.Time

// algorithmKeys maps number keys to algorithms, mirroring the original
// UI's BFS/DFS/Greedy/A* buttons.
var algorithmKeys = map[string]mazesearch.Algorithm{
	"1": mazesearch.BreadthFirst,
	"2": mazesearch.DepthFirst,
	"3": mazesearch.GreedyBestFirst,
	"4": mazesearch.AStar,
}

// playModel animates a solved maze: the engine returns the full path up
// front and the view reveals one more cell per tick.
type playModel struct {
	maze      *mazesearch.Maze
	algorithm mazesearch.Algorithm
	result    mazesearch.Result[mazesearch.Position]
	solveErr  error
	revealed  int
	interval  time.Duration
}

func newPlayModel(m *mazesearch.Maze, alg mazesearch.Algorithm, interval time.Duration) playModel {
	pm := playModel{maze: m, algorithm: alg, interval: interval}
	return pm.solve(alg)
}

func (m playModel) solve(alg mazesearch.Algorithm) playModel {
	m.algorithm = alg
	m.result, m.solveErr = m.maze.Solve(alg)
	m.revealed = 0
	return m
}

// Init implements tea.Model.
func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if alg, ok := algorithmKeys[key]; ok {
			return m.solve(alg), nil
		}
		switch key {
		case "r":
			m.revealed = 0
			return m, nil
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.solveErr == nil && m.result.Found && m.revealed < len(m.result.Path) {
			m.revealed++
		}
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m playModel) View() string {
	header := titleStyle.Render(fmt.Sprintf("maze %dx%d — %s", m.maze.Width, m.maze.Height, m.algorithm))

	var status string
	switch {
	case m.solveErr != nil:
		status = noPathStyle.Render(m.solveErr.Error())
	case !m.result.Found:
		status = noPathStyle.Render("no path found")
	case m.revealed < len(m.result.Path):
		status = statusStyle.Render(fmt.Sprintf("step %d/%d", m.revealed, len(m.result.Path)))
	default:
		status = statusStyle.Render(fmt.Sprintf("solved: %d steps, %d nodes expanded",
			len(m.result.Path), m.result.Expanded))
	}

	grid := renderMaze(m.maze, overlay{path: positionSet(m.result.Path[:m.revealed])})
	help := statusStyle.Render("1 bfs · 2 dfs · 3 greedy · 4 a* · r replay · q quit")
	return header + "\n\n" + grid + "\n\n" + status + "\n" + help + "\n"
}
