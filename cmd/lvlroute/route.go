package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encodeous/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlroute/graphfile"
	"github.com/katalvlaran/lvlroute/route"
)

var (
	flagFile      string
	flagSource    string
	flagTarget    string
	flagObjective string
	flagAll       bool
	flagVerbose   bool
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Compute optimal paths from a YAML graph document",
	Long: `Loads a graph document, runs its routing requests (or a single request
given via --source/--target/--objective), and prints the resulting
paths with their cost, bottleneck bandwidth, and hop count.

A cost or hop count of -1 means the node has no path to the root; a
bandwidth of 999 means the node is either the root itself or unreachable.`,
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&flagFile, "file", "f", "", "YAML graph document (required)")
	routeCmd.Flags().StringVarP(&flagSource, "source", "s", "", "root node; overrides the document's requests")
	routeCmd.Flags().StringVarP(&flagTarget, "target", "t", "", "destination node, used with --source")
	routeCmd.Flags().StringVarP(&flagObjective, "objective", "o", route.MinHops.String(),
		"min-hops | min-cost | max-bandwidth, used with --source")
	routeCmd.Flags().BoolVar(&flagAll, "all", false, "print the path to every node, not just the target")
	routeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log traversal events")
	_ = routeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))

	doc, err := graphfile.Load(flagFile)
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}

	requests := doc.Requests
	if flagSource != "" {
		obj, err := route.ParseObjective(flagObjective)
		if err != nil {
			return err
		}
		requests = []graphfile.Request{{Source: flagSource, Target: flagTarget, Objective: obj}}
	}
	if len(requests) == 0 {
		return fmt.Errorf("nothing to route: provide --source or a requests section in %s", flagFile)
	}

	mode := "undirected"
	if g.Directed() {
		mode = "directed"
	}
	out := cmd.OutOrStdout()

	for _, req := range requests {
		res, err := route.Route(g,
			route.Source(req.Source),
			route.Target(req.Target),
			route.WithObjective(req.Objective),
			route.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s graph, objective %s, root %s:\n", mode, res.Objective(), req.Source)
		targets := []string{req.Target}
		if flagAll || req.Target == "" {
			targets = g.NodeIDs()
		}
		for _, id := range targets {
			p, err := res.PathTo(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  to %s: path %v, cost %d, bandwidth-limiting pipe %d, hop-count %d\n",
				id, p.Nodes, p.Cost, p.Bandwidth, p.Hops)
		}
	}

	return nil
}
