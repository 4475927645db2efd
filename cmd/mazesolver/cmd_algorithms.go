package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/mazesearch"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the supported search algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, alg := range mazesearch.Algorithms() {
			fmt.Fprintln(cmd.OutOrStdout(), alg)
		}
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
