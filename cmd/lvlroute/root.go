package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lvlroute",
	Short: "Single-source, multi-objective route computation",
	Long: `lvlroute computes, from a chosen root node, the optimal path to every
other node of a weighted graph: fewest hops, least cumulative cost, or
widest bottleneck bandwidth. Graphs and routing requests are described
in a YAML document; see the graphfile package for the format.`,
}

// Execute runs the root command. It is called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
