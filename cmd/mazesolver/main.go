package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	cfg        Config
)

var rootCmd = &cobra.Command{
	Use:   "mazesolver",
	Short: "Solve text mazes with classic graph-search algorithms",
	Long: `mazesolver loads a line-oriented maze description ('#' wall, 'A' start,
'B' goal) and solves it with breadth-first, depth-first, greedy best-first
or A* search. The play command animates the solution in the terminal.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a mazesolver.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search details to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	}
}
