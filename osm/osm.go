// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package osm reads the OpenStreetMap XML map-extract format into
// in-memory structs, for consumption by the builder package. It does
// not interpret road classes or compute distances; it only decodes the
// XML shape described by the module's external-interface contract.
package osm

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ParseError wraps a failure to decode a map extract, naming what was
// being parsed when the failure occurred.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("osm: %s: %v", e.Detail, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Tag is a single OSM key/value tag.
type Tag struct {
	Key   string `xml:"k,attr"`
	Value string `xml:"v,attr"`
}

// NodeRef is a reference to a node ID within a Way.
type NodeRef struct {
	Ref uint64 `xml:"ref,attr"`
}

// Node is a single OSM node: an identified point.
type Node struct {
	ID  uint64  `xml:"id,attr"`
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

// Way is an ordered sequence of node references, tagged with attributes
// such as the road class and one-way restriction.
type Way struct {
	ID    uint64    `xml:"id,attr"`
	Nodes []NodeRef `xml:"nd"`
	Tags  []Tag     `xml:"tag"`
}

// Tag returns the value of the way's tag named key, and whether it was
// present.
func (w *Way) Tag(key string) (string, bool) {
	for _, t := range w.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// Document is a parsed OSM map extract.
type Document struct {
	XMLName xml.Name `xml:"osm"`
	Nodes   []Node   `xml:"node"`
	Ways    []Way    `xml:"way"`
}

// Read decodes an OSM XML map extract from r.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Detail: "decoding extract", Err: err}
	}
	return &doc, nil
}

