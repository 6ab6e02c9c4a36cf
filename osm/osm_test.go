// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package osm

import (
	"strings"
	"testing"
)

func TestReadNode(t *testing.T) {
	const src = `<osm><node id="470558" lat="49.3414269" lon="7.3000691"/></osm>`
	doc, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Nodes) != 1 {
		t.Fatalf("len(doc.Nodes) = %d, want 1", len(doc.Nodes))
	}
	got := doc.Nodes[0]
	if got.ID != 470558 {
		t.Errorf("ID = %d, want 470558", got.ID)
	}
	if got.Lat != 49.3414269 || got.Lon != 7.3000691 {
		t.Errorf("Lat,Lon = %v,%v, want 49.3414269,7.3000691", got.Lat, got.Lon)
	}
}

func TestReadWay(t *testing.T) {
	const src = `<osm>
		<way id="26659127" visible="true">
			<nd ref="292403538"/>
			<nd ref="298884289"/>
			<nd ref="261728686"/>
			<tag k="name" v="Pastower Straße"/>
			<tag k="highway" v="unclassified"/>
		</way>
	</osm>`
	doc, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Ways) != 1 {
		t.Fatalf("len(doc.Ways) = %d, want 1", len(doc.Ways))
	}
	way := doc.Ways[0]
	if way.ID != 26659127 {
		t.Errorf("ID = %d, want 26659127", way.ID)
	}
	if len(way.Nodes) != 3 {
		t.Fatalf("len(way.Nodes) = %d, want 3", len(way.Nodes))
	}
	if way.Nodes[0].Ref != 292403538 {
		t.Errorf("Nodes[0].Ref = %d, want 292403538", way.Nodes[0].Ref)
	}
	if len(way.Tags) != 2 {
		t.Fatalf("len(way.Tags) = %d, want 2", len(way.Tags))
	}
	if name, ok := way.Tag("name"); !ok || name != "Pastower Straße" {
		t.Errorf("Tag(name) = %q,%v, want \"Pastower Straße\",true", name, ok)
	}
	if highway, ok := way.Tag("highway"); !ok || highway != "unclassified" {
		t.Errorf("Tag(highway) = %q,%v, want \"unclassified\",true", highway, ok)
	}
	if _, ok := way.Tag("missing"); ok {
		t.Errorf("Tag(missing) reported ok, want not found")
	}
}

func TestReadDocument(t *testing.T) {
	const src = `<?xml version='1.0' encoding='UTF-8'?>
	<osm version="0.6" generator="pbf2osm">
		<node id="470552" lat="49.3413853" lon="7.3014897"/>
		<node id="470553" lat="49.3407084" lon="7.3006280"/>
		<way id="26659127" visible="true">
			<nd ref="470552"/>
			<nd ref="470553"/>
		</way>
	</osm>`
	doc, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Nodes) != 2 {
		t.Errorf("len(doc.Nodes) = %d, want 2", len(doc.Nodes))
	}
	if len(doc.Ways) != 1 {
		t.Errorf("len(doc.Ways) = %d, want 1", len(doc.Ways))
	}
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader(`<osm><node id="not-a-number"/></osm>`))
	if err == nil {
		t.Fatal("Read(malformed id) = nil error, want ParseError")
	}
	var perr *ParseError
	if !asParseError(err, &perr) {
		t.Fatalf("Read(malformed id) error = %v (%T), want *ParseError", err, err)
	}
}

func asParseError(err error, target **ParseError) bool {
	if pe, ok := err.(*ParseError); ok {
		*target = pe
		return true
	}
	return false
}
