package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazesearch"
)

var solveAlgorithmFlag string

var solveCmd = &cobra.Command{
	Use:   "solve <maze-file>",
	Short: "Solve a maze and print the path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mazesearch.LoadMaze(args[0])
		if err != nil {
			return err
		}
		alg := resolveAlgorithm(solveAlgorithmFlag)
		if solveAlgorithmFlag == "" {
			alg = resolveAlgorithm(cfg.DefaultAlgorithm)
		}
		slog.Info("maze loaded", "file", args[0], "width", m.Width, "height", m.Height)

		res, err := m.Solve(alg)
		if err != nil {
			return err
		}
		if !res.Found {
			slog.Warn("search exhausted", "maze", args[0], "algorithm", alg, "expanded", res.Expanded)
			return errors.New("no path found")
		}

		slog.Info("path found", "algorithm", alg, "length", len(res.Path), "expanded", res.Expanded)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderSolved(m, res.Path))
		fmt.Fprintf(out, "%s: %d steps, %d nodes expanded\n", alg, len(res.Path), res.Expanded)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveAlgorithmFlag, "algorithm", "a", "",
		"search algorithm (breadth_first, depth_first, greedy_best_first, a_star, or bfs/dfs/greedy/astar)")
	rootCmd.AddCommand(solveCmd)
}
