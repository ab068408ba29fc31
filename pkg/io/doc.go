// Package io reads and writes diagram spec files.
//
// # Overview
//
// A spec file holds the titles and dimensions of one diagram so it can be
// kept next to a document and re-rendered later. Two encodings are
// supported, picked by file extension:
//
//   - .json
//   - .toml
//
// # Format
//
// All keys are optional. Omitted numbers fall back to the pipeline
// defaults; omitting third keeps the diagram at two circles.
//
//	first = "Cats"
//	second = "Dogs"
//	first_second = "Pets"
//	radius = 160.0
//	size = 800.0
//	overlap = 40.0
//
// The JSON form uses the same keys:
//
//	{"first": "Cats", "second": "Dogs", "first_second": "Pets"}
//
// Unknown keys are rejected so that typos do not silently produce an
// unlabeled region.
//
// # Import and Export
//
//	f, err := io.Import("pets.toml")
//	opts := f.Options()
//
//	err = io.Export(io.FromOptions(opts), "pets.json")
package io
