package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazesearch"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, string(mazesearch.AStar), cfg.DefaultAlgorithm)
	assert.Equal(t, 80*time.Millisecond, cfg.Tick())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazesolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_algorithm: bfs\ntick_ms: 40\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bfs", cfg.DefaultAlgorithm)
	assert.Equal(t, 40*time.Millisecond, cfg.Tick())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazesolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_ms: 0\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, string(mazesearch.AStar), cfg.DefaultAlgorithm)
	assert.Equal(t, DefaultConfig().TickMillis, cfg.TickMillis)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("{not yaml"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestResolveAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want mazesearch.Algorithm
	}{
		{"bfs", mazesearch.BreadthFirst},
		{"BFS", mazesearch.BreadthFirst},
		{"dfs", mazesearch.DepthFirst},
		{"greedy", mazesearch.GreedyBestFirst},
		{"astar", mazesearch.AStar},
		{"a*", mazesearch.AStar},
		{"a_star", mazesearch.AStar},
		{"breadth_first", mazesearch.BreadthFirst},
		{"dijkstra", mazesearch.Algorithm("dijkstra")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveAlgorithm(tt.name))
		})
	}
}
