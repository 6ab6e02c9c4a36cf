// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roadplan builds a road-network graph from an OSM map extract
// and answers shortest-path queries against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roadplan",
	Short: "Build road networks from OSM extracts and plan routes over them",
	Long: `roadplan reads an OpenStreetMap XML map extract, builds a weighted
directed road-network graph from its ways, reduces it to its largest
strongly connected component, and can answer shortest-path queries
between two node IDs in the extract.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log build and search progress")
	rootCmd.AddCommand(routeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
