// Package rawfile parses the ASCII "raw" output format written by
// SPICE-family circuit simulators into a typed Document.
//
// A raw file has three ordered regions: a metadata block of "Key: value"
// lines, a Variables section declaring one signal per line, and a Values
// section carrying one sample per declared signal for each simulated point.
// Complex analyses (AC sweeps) store each sample as a real/imaginary pair;
// the parser converts these to magnitude and phase.
//
// Example usage:
//
//	doc, err := rawfile.Parse(text)
//	if err != nil {
//	    // handle error
//	}
//	for _, s := range doc.Series {
//	    fmt.Printf("%s (%s): %d samples\n", s.Name, s.Type, len(s.Values))
//	}
//
// Parsing is a pure function over an in-memory string: no I/O, no shared
// state, safe for concurrent callers. Errors are terminal; a Document is
// either complete and internally consistent or not returned at all.
//
// Only the ASCII variant of the raw format is supported. The binary variant
// is out of scope.
package rawfile
