// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-route/roadgraph/builder"
	"github.com/go-route/roadgraph/osm"
)

var routeCmd = &cobra.Command{
	Use:   "route <extract.osm> <start-id> <end-id>",
	Short: "Find the shortest path between two nodes in a map extract",
	Long: `route reads an OSM map extract, builds its road network, reduces it
to the largest strongly connected component, and reports the reduced
network's node count and edge count, the component count before
reduction, and the minimum-cost path between the given start and end
node IDs.`,
	Args: cobra.ExactArgs(3),
	RunE: runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := newLogger(verbose)

	extractPath := args[0]
	start, err := parseNodeID(args[1])
	if err != nil {
		return fmt.Errorf("start id: %w", err)
	}
	end, err := parseNodeID(args[2])
	if err != nil {
		return fmt.Errorf("end id: %w", err)
	}

	log.Info("reading extract", "path", extractPath)
	f, err := os.Open(extractPath)
	if err != nil {
		return fmt.Errorf("opening extract: %w", err)
	}
	defer f.Close()

	doc, err := osm.Read(f)
	if err != nil {
		return fmt.Errorf("reading extract: %w", err)
	}

	log.Info("constructing graph", "nodes", len(doc.Nodes), "ways", len(doc.Ways))
	g, err := builder.FromOSM(doc)
	if err != nil {
		return fmt.Errorf("constructing graph: %w", err)
	}
	log.Info("graph built", "nodes", g.NumNodes(), "edges", g.NumEdges())

	componentCount := len(g.StronglyConnectedComponents())

	g.ReduceToLargestSCC()
	log.Info("reduced to largest component", "nodes", g.NumNodes(), "edges", g.NumEdges())

	result, err := g.ShortestPath(start, end)
	if err != nil {
		return fmt.Errorf("searching for route: %w", err)
	}
	log.Info("query answered", "cost", result.Cost)

	fmt.Printf("nodes: %d\n", g.NumNodes())
	fmt.Printf("edges: %d\n", g.NumEdges())
	fmt.Printf("components: %d\n", componentCount)
	fmt.Printf("cost: %d\n", result.Cost)
	fmt.Printf("path: %v\n", result.Path)
	return nil
}

func parseNodeID(s string) (uint64, error) {
	var id uint64
	_, err := fmt.Sscanf(s, "%d", &id)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid node id", s)
	}
	return id, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
