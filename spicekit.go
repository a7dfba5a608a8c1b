package spicekit

import (
	"github.com/spiceio/spicekit/export"
	"github.com/spiceio/spicekit/rawfile"
)

// Parse converts raw-format text into a Document. See rawfile.Parse.
func Parse(raw string) (*rawfile.Document, error) {
	return rawfile.Parse(raw)
}

// ExportCSV parses raw-format text and renders it as CSV. Parse errors are
// returned unchanged; rendering a successfully parsed document cannot fail.
func ExportCSV(raw string) (string, error) {
	doc, err := rawfile.Parse(raw)
	if err != nil {
		return "", err
	}
	return export.CSV(doc), nil
}
