package mazesearch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, description string) *Maze {
	t.Helper()
	m, err := ParseMaze(strings.NewReader(description))
	require.NoError(t, err)
	return m
}

func TestParseMaze_Valid(t *testing.T) {
	m := mustParse(t, "#####\n#A.B#\n#####\n")

	assert.Equal(t, 5, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, Position{1, 1}, m.Start)
	assert.Equal(t, Position{3, 1}, m.Goal)
}

func TestParseMaze_TrimsTrailingWhitespace(t *testing.T) {
	m, err := ParseMaze(strings.NewReader("A.B \t\r\n###\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
}

func TestParseMaze_OpenCellCharacters(t *testing.T) {
	// Anything that is not '#', 'A' or 'B' is an open cell.
	m := mustParse(t, "A x.B")
	for x := 0; x < m.Width; x++ {
		assert.True(t, m.IsOpen(x, 0), "cell %d should be open", x)
	}
}

func TestParseMaze_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n"},
		{"no start", "#.B"},
		{"no goal", "#.A"},
		{"duplicate start", "AA.B"},
		{"duplicate goal", "A.BB"},
		{"ragged rows", "A##\n#.B#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaze(strings.NewReader(tt.description))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedMaze)
		})
	}
}

func TestLoadMaze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("A.B\n"), 0o644))

	m, err := LoadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, Position{0, 0}, m.Start)

	_, err = LoadMaze(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestIsOpen(t *testing.T) {
	m := mustParse(t, "A#B")

	assert.True(t, m.IsOpen(0, 0))
	assert.False(t, m.IsOpen(1, 0), "wall is not open")
	assert.True(t, m.IsOpen(2, 0))
	assert.False(t, m.IsOpen(-1, 0))
	assert.False(t, m.IsOpen(0, -1))
	assert.False(t, m.IsOpen(3, 0))
	assert.False(t, m.IsOpen(0, 1))
}

func TestNeighbors_FixedOrder(t *testing.T) {
	m := mustParse(t, "...\n.A.\n..B")

	got := m.Neighbors(Position{1, 1})
	want := []Step[Position]{
		{Action: ActionUp, State: Position{1, 0}},
		{Action: ActionDown, State: Position{1, 2}},
		{Action: ActionLeft, State: Position{0, 1}},
		{Action: ActionRight, State: Position{2, 1}},
	}
	assert.Equal(t, want, got)
}

func TestNeighbors_FiltersWallsAndBounds(t *testing.T) {
	m := mustParse(t, "A#\n.B")

	got := m.Neighbors(Position{0, 0})
	want := []Step[Position]{
		{Action: ActionDown, State: Position{0, 1}},
	}
	assert.Equal(t, want, got)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Position{2, 3}, Position{2, 3}))
	assert.Equal(t, 7, Manhattan(Position{0, 0}, Position{3, 4}))
	assert.Equal(t, 7, Manhattan(Position{3, 4}, Position{0, 0}))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "up", ActionUp.String())
	assert.Equal(t, "down", ActionDown.String())
	assert.Equal(t, "left", ActionLeft.String())
	assert.Equal(t, "right", ActionRight.String())
	assert.Equal(t, "none", ActionNone.String())
}
