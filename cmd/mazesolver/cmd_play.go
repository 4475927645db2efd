package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazesearch"
)

var playAlgorithmFlag string

var playCmd = &cobra.Command{
	Use:   "play <maze-file>",
	Short: "Animate a maze solution in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mazesearch.LoadMaze(args[0])
		if err != nil {
			return err
		}
		alg := resolveAlgorithm(playAlgorithmFlag)
		if playAlgorithmFlag == "" {
			alg = resolveAlgorithm(cfg.DefaultAlgorithm)
		}
		// Fail on a bad algorithm name before taking over the terminal.
		if _, err := m.Solve(alg); err != nil {
			return err
		}

		program := tea.NewProgram(newPlayModel(m, alg, cfg.Tick()), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringVarP(&playAlgorithmFlag, "algorithm", "a", "",
		"search algorithm (breadth_first, depth_first, greedy_best_first, a_star, or bfs/dfs/greedy/astar)")
	rootCmd.AddCommand(playCmd)
}
