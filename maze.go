package mazesearch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedMaze reports a maze description that cannot be searched:
// missing or duplicated start/goal markers, or rows of unequal length.
var ErrMalformedMaze = errors.New("malformed maze")

// Maze cell markers. Any other character is an open cell.
const (
	cellWall  = '#'
	cellStart = 'A'
	cellGoal  = 'B'
)

// Position identifies a grid cell. X grows rightward, Y grows downward.
type Position struct {
	X, Y int
}

// Action is the move that reaches a state from its parent.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid offset the action moves by.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Maze is a rectangular grid of cells loaded from a text description.
// It is immutable after load and satisfies Graph[Position].
type Maze struct {
	rows   []string
	Width  int
	Height int
	Start  Position
	Goal   Position
}

// LoadMaze reads a maze description from a file.
func LoadMaze(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load maze: %w", err)
	}
	defer f.Close()
	m, err := ParseMaze(f)
	if err != nil {
		return nil, fmt.Errorf("load maze %s: %w", path, err)
	}
	return m, nil
}

// ParseMaze reads a line-oriented maze description: '#' is a wall, 'A' the
// start, 'B' the goal, anything else an open cell. Trailing whitespace is
// trimmed from each row before the grid is validated.
func ParseMaze(r io.Reader) (*Maze, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	// Drop trailing blank lines so a final newline does not fail validation.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty description", ErrMalformedMaze)
	}

	m := &Maze{rows: rows, Width: len(rows[0]), Height: len(rows)}
	haveStart, haveGoal := false, false
	for y, row := range rows {
		if len(row) != m.Width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedMaze, y, len(row), m.Width)
		}
		for x, c := range row {
			switch c {
			case cellStart:
				if haveStart {
					return nil, fmt.Errorf("%w: multiple start markers", ErrMalformedMaze)
				}
				haveStart = true
				m.Start = Position{x, y}
			case cellGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: multiple goal markers", ErrMalformedMaze)
				}
				haveGoal = true
				m.Goal = Position{x, y}
			}
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: no start marker 'A'", ErrMalformedMaze)
	}
	if !haveGoal {
		return nil, fmt.Errorf("%w: no goal marker 'B'", ErrMalformedMaze)
	}
	return m, nil
}

// Cell returns the raw cell character at (x, y). Callers must stay in bounds.
func (m *Maze) Cell(x, y int) byte { return m.rows[y][x] }

// IsOpen reports whether (x, y) is inside the grid and not a wall.
func (m *Maze) IsOpen(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height && m.rows[y][x] != cellWall
}

// Neighbors returns the open axis-aligned neighbors of p in fixed order:
// up, down, left, right. The order determines tie-breaking in every
// algorithm, since it controls insertion order into the frontier.
func (m *Maze) Neighbors(p Position) []Step[Position] {
	candidates := [4]Step[Position]{
		{Action: ActionUp, State: Position{p.X, p.Y - 1}},
		{Action: ActionDown, State: Position{p.X, p.Y + 1}},
		{Action: ActionLeft, State: Position{p.X - 1, p.Y}},
		{Action: ActionRight, State: Position{p.X + 1, p.Y}},
	}
	steps := make([]Step[Position], 0, 4)
	for _, c := range candidates {
		if m.IsOpen(c.State.X, c.State.Y) {
			steps = append(steps, c)
		}
	}
	return steps
}

// Manhattan returns |ax-bx| + |ay-by|, the heuristic used for informed search.
func Manhattan(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Solve searches the maze from its start to its goal with the given
// algorithm. A maze with no route yields Found == false, not an error.
func (m *Maze) Solve(alg Algorithm) (Result[Position], error) {
	return Search(m, m.Start, m.Goal, m.heuristic(), alg)
}

// Stepper returns a step-by-step search over the maze for animation.
func (m *Maze) Stepper(alg Algorithm) (*Stepper[Position], error) {
	return NewStepper(m, m.Start, m.Goal, m.heuristic(), alg)
}

func (m *Maze) heuristic() Heuristic[Position] {
	goal := m.Goal
	return func(p Position) int { return Manhattan(p, goal) }
}
