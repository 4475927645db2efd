package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/mazesearch"
)

// Config holds the CLI settings a user can keep in a mazesolver.yaml file.
type Config struct {
	// DefaultAlgorithm is used when --algorithm is not given.
	DefaultAlgorithm string `yaml:"default_algorithm"`
	// TickMillis is the animation interval for the play command.
	TickMillis int `yaml:"tick_ms"`
}

func DefaultConfig() Config {
	return Config{
		DefaultAlgorithm: string(mazesearch.AStar),
		TickMillis:       80,
	}
}

// LoadConfig reads the config file at path, falling back to defaults for
// any field the file leaves unset. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TickMillis <= 0 {
		cfg.TickMillis = DefaultConfig().TickMillis
	}
	if cfg.DefaultAlgorithm == "" {
		cfg.DefaultAlgorithm = DefaultConfig().DefaultAlgorithm
	}
	return cfg, nil
}

// Tick returns the animation interval.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// algorithmAliases maps the short names the original UI buttons used to
// the engine's algorithm names.
var algorithmAliases = map[string]mazesearch.Algorithm{
	"bfs":    mazesearch.BreadthFirst,
	"dfs":    mazesearch.DepthFirst,
	"greedy": mazesearch.GreedyBestFirst,
	"astar":  mazesearch.AStar,
	"a*":     mazesearch.AStar,
}

// resolveAlgorithm accepts both engine names and short aliases. Unknown
// names pass through unchanged so the engine reports them.
func resolveAlgorithm(name string) mazesearch.Algorithm {
	if alg, ok := algorithmAliases[strings.ToLower(name)]; ok {
		return alg
	}
	return mazesearch.Algorithm(name)
}
