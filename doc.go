// Package spicekit converts ASCII raw files written by SPICE-family
// circuit simulators into structured data and CSV.
//
// Each subpackage can be used independently:
//
//   - rawfile: parse raw-format text into a typed Document
//   - export: render a Document as CSV, JSON, YAML or TOML
//   - watch: re-parse a raw file as a simulator rewrites it
//
// # Quick Start
//
// Straight to CSV:
//
//	csv, err := spicekit.ExportCSV(rawText)
//
// With access to the parsed document:
//
//	doc, err := spicekit.Parse(rawText)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(export.CSV(doc))
//
// # Design Philosophy
//
//   - Pure functions over in-memory text: no file, network or process
//     state is owned here; callers supply the input and consume the output
//   - Errors are terminal and classified; no partial documents
//   - Each package usable independently
package spicekit
