// Package export renders parsed raw-file documents for downstream
// consumers.
//
// CSV is the primary target (spreadsheets, plotting tools); JSON, YAML and
// TOML marshalling plus a JSON Schema of the document shape are available
// for machine consumers.
//
// Example usage:
//
//	doc, err := rawfile.Parse(text)
//	if err != nil {
//	    // handle error
//	}
//	csv := export.CSV(doc)
//
// All functions are pure: they read the document and return text, with no
// I/O and no retained references.
package export
