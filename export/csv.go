package export

import (
	"math"
	"strconv"
	"strings"

	"github.com/spiceio/spicekit/rawfile"
)

// CSV renders a document as comma-separated text.
//
// The header row carries one "<name> - <type>" column per series, followed
// by a "<type>(phase)" column when the document is complex. Each data row
// covers one point: real documents emit the sample value, complex documents
// emit the magnitude and the phase converted to degrees with a degree-sign
// suffix. Rows are newline-terminated with no trailing separator; a
// document with no series renders as a single empty header line.
//
// Floats are formatted with strconv.FormatFloat(v, 'g', -1, 64): the
// shortest decimal form that parses back to the same value.
func CSV(doc *rawfile.Document) string {
	var b strings.Builder

	header := make([]string, 0, 2*len(doc.Series))
	for i := range doc.Series {
		s := &doc.Series[i]
		header = append(header, s.Name+" - "+s.Type)
		if doc.IsComplex() {
			header = append(header, s.Type+"(phase)")
		}
	}
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	if len(doc.Series) == 0 {
		return b.String()
	}

	cells := make([]string, 0, len(doc.Series))
	for i := 0; i < doc.Points; i++ {
		cells = cells[:0]
		for j := range doc.Series {
			s := &doc.Series[j]
			if doc.IsComplex() {
				cells = append(cells, formatFloat(s.Values[i])+","+formatFloat(toDegrees(s.Angles[i]))+"°")
			} else {
				cells = append(cells, formatFloat(s.Values[i]))
			}
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
