// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder constructs a road-network graph.Graph from a parsed
// OSM map extract, classifying ways by their highway tag into a default
// travel speed and turning great-circle distance into an edge cost.
package builder

import (
	"fmt"
	"math"

	"github.com/go-route/roadgraph/geo"
	"github.com/go-route/roadgraph/graph"
	"github.com/go-route/roadgraph/osm"
)

// UnknownWayNodeError is returned when a way references a node ID that
// is not present among the extract's nodes.
type UnknownWayNodeError struct {
	WayID, NodeID uint64
}

func (e *UnknownWayNodeError) Error() string {
	return fmt.Sprintf("builder: way %d references unknown node %d", e.WayID, e.NodeID)
}

// speedsByHighway maps a recognised OSM highway tag to its default
// travel speed, in meters per second. Values are converted from the
// km/h defaults used by typical routing profiles. Ways whose highway
// tag is absent from this table are skipped entirely.
var speedsByHighway = map[string]float64{
	"motorway": kmhToMs(110), "trunk": kmhToMs(110),
	"primary": kmhToMs(70),
	"secondary": kmhToMs(60),
	"tertiary":  kmhToMs(50),

	"motorway_link": kmhToMs(50), "trunk_link": kmhToMs(50),
	"primary_link": kmhToMs(50), "secondary_link": kmhToMs(50), "tertiary_link": kmhToMs(50),

	"road": kmhToMs(40), "unclassified": kmhToMs(40),

	"residential": kmhToMs(30), "unsurfaced": kmhToMs(30),

	"living_street": kmhToMs(10), "service": kmhToMs(10),
}

func kmhToMs(kmh float64) float64 {
	return kmh * 1000 / 3600
}

// FromOSM builds a graph.Graph from a parsed OSM document. Every node
// in doc becomes a graph node; every way with a recognised highway tag
// becomes one directed edge per consecutive node pair if oneway=yes,
// or two (one each direction) otherwise. Ways without a recognised
// highway tag are skipped. FromOSM does not reduce the graph to its
// largest strongly connected component; callers that want the reduced
// graph call graph.Graph.ReduceToLargestSCC themselves.
func FromOSM(doc *osm.Document) (*graph.Graph, error) {
	g := graph.NewGraph()

	locations := make(map[uint64]geo.Coordinate, len(doc.Nodes))
	for _, n := range doc.Nodes {
		loc := geo.Coordinate{Lat: n.Lat, Lon: n.Lon}
		locations[n.ID] = loc
		if err := g.AddNode(n.ID, loc); err != nil {
			return nil, err
		}
	}

	for i := range doc.Ways {
		way := &doc.Ways[i]
		speed, ok := speedsByHighway[highwayTag(way)]
		if !ok {
			continue
		}
		oneway, _ := way.Tag("oneway")
		for j := 0; j+1 < len(way.Nodes); j++ {
			from, to := way.Nodes[j].Ref, way.Nodes[j+1].Ref
			cost, err := edgeCostSeconds(locations, way.ID, from, to, speed)
			if err != nil {
				return nil, err
			}
			if err := g.AddEdge(from, to, cost); err != nil {
				return nil, err
			}
			if oneway != "yes" {
				if err := g.AddEdge(to, from, cost); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

func highwayTag(w *osm.Way) string {
	v, _ := w.Tag("highway")
	return v
}

func edgeCostSeconds(locations map[uint64]geo.Coordinate, wayID, from, to uint64, speedMs float64) (uint64, error) {
	fromLoc, ok := locations[from]
	if !ok {
		return 0, &UnknownWayNodeError{WayID: wayID, NodeID: from}
	}
	toLoc, ok := locations[to]
	if !ok {
		return 0, &UnknownWayNodeError{WayID: wayID, NodeID: to}
	}
	meters := geo.HaversineMeters(fromLoc, toLoc)
	return uint64(math.Floor(meters / speedMs)), nil
}
