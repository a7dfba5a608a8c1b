package rawfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// mode is the section the parser is currently reading.
type mode int

const (
	// modeMeta reads "Key: value" header lines. Initial mode.
	modeMeta mode = iota

	// modeVariable reads one tab-separated variable declaration per line.
	// Once the declared count is reached, the next header line (normally
	// "Values") hands control back to modeMeta.
	modeVariable

	// modeValue reads tab-separated sample lines until end of input.
	modeValue
)

// headerKeys are the recognized metadata and section keys.
var headerKeys = map[string]bool{
	"Title":         true,
	"Date":          true,
	"Plotname":      true,
	"Flags":         true,
	"No. Variables": true,
	"No. Points":    true,
	"Variables":     true,
	"Values":        true,
}

// parser holds the state of one pass over the input.
type parser struct {
	doc  *Document
	mode mode
	seen int // variable declarations consumed since the Variables header
	acc  *accumulator
}

// Parse converts the full text of an ASCII raw file into a Document.
//
// Blank lines are skipped everywhere. Unrecognized header keys are ignored
// for forward compatibility. Errors are terminal: the returned error wraps
// one of the sentinel errors (ErrIntegerFormat, ErrFloatFormat,
// ErrVariableCount, ErrValueCount, ErrUnknownFlag) and, when tied to a
// specific input line, is a *ParseError carrying its 1-based number.
func Parse(raw string) (*Document, error) {
	p := &parser{doc: &Document{Flags: Real}}

	for n, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := p.consume(n+1, line); err != nil {
			return nil, err
		}
	}

	// The last point has no following index line to trigger its commit.
	if p.acc != nil {
		if err := p.acc.flush(p.doc.Series); err != nil {
			return nil, err
		}
	}
	if err := p.doc.validate(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func (p *parser) consume(lineNo int, line string) error {
	switch p.mode {
	case modeVariable:
		return p.variable(lineNo, line)
	case modeValue:
		return p.value(lineNo, line)
	default:
		return p.meta(lineNo, line)
	}
}

// meta handles one "Key: value" header line.
func (p *parser) meta(lineNo int, line string) error {
	parts := strings.Split(line, ":")
	switch parts[0] {
	case "Title":
		p.doc.Title = strings.TrimSpace(rest(parts))
	case "Date":
		// Dates usually contain colons (time of day); rejoin the remaining
		// fragments.
		p.doc.Date = strings.TrimSpace(strings.Join(parts[1:], ""))
	case "Plotname":
		p.doc.Plotname = strings.TrimSpace(rest(parts))
	case "Flags":
		switch strings.TrimSpace(rest(parts)) {
		case "complex":
			p.doc.Flags = Complex
		case "real":
			p.doc.Flags = Real
		default:
			return &ParseError{Line: lineNo, Err: ErrUnknownFlag}
		}
	case "No. Variables":
		v, err := parseCount(rest(parts))
		if err != nil {
			return &ParseError{Line: lineNo, Err: err}
		}
		p.doc.Variables = v
	case "No. Points":
		v, err := parseCount(rest(parts))
		if err != nil {
			return &ParseError{Line: lineNo, Err: err}
		}
		p.doc.Points = v
	case "Variables":
		p.mode = modeVariable
		p.seen = 0
	case "Values":
		p.mode = modeValue
		p.acc = newAccumulator(p.doc.Variables, p.doc.IsComplex())
	}
	return nil
}

// variable handles one declaration line of the Variables section.
func (p *parser) variable(lineNo int, line string) error {
	if p.seen >= p.doc.Variables {
		// The declarations are complete; only a header line (normally the
		// Values section) may follow. Another declaration means the file
		// carries more variables than the header promised.
		parts := strings.Split(line, ":")
		if !headerKeys[parts[0]] {
			return &ParseError{Line: lineNo, Err: ErrVariableCount}
		}
		p.mode = modeMeta
		return p.meta(lineNo, line)
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return &ParseError{
			Line: lineNo,
			Err:  fmt.Errorf("%w: variable record has %d fields, want 3", ErrVariableCount, len(fields)),
		}
	}
	// Field 0 is the variable's index column; declaration order already
	// carries that information.
	s := Series{
		Name: strings.TrimSpace(fields[1]),
		Type: strings.TrimSpace(fields[2]),
	}
	if p.doc.IsComplex() {
		s.Angles = []float64{}
	}
	p.doc.Series = append(p.doc.Series, s)
	p.seen++
	return nil
}

// value handles one sample line of the Values section.
func (p *parser) value(lineNo int, line string) error {
	fields := strings.Split(line, "\t")
	field := fields[0]
	if len(fields) == 2 {
		// A two-field line starts a new point: field 0 is the point index,
		// field 1 the first variable's sample. Commit the previous point
		// first.
		if err := p.acc.flush(p.doc.Series); err != nil {
			return &ParseError{Line: lineNo, Err: err}
		}
		field = fields[1]
	}
	s, err := parseSample(field, p.doc.IsComplex())
	if err != nil {
		return &ParseError{Line: lineNo, Err: err}
	}
	p.acc.add(s)
	return nil
}

// rest returns the remainder of a colon-split header line, or "" when the
// line had no colon.
func rest(parts []string) string {
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// parseCount parses a declared count header value.
func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIntegerFormat, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrIntegerFormat, v)
	}
	return v, nil
}

// parseSample parses one sample field. Real documents carry a bare float;
// complex documents carry a "real,imaginary" pair, converted here to
// magnitude and quadrant-aware phase.
func parseSample(field string, polar bool) (sample, error) {
	if !polar {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return sample{}, fmt.Errorf("%w: %v", ErrFloatFormat, err)
		}
		return sample{value: v}, nil
	}
	re, im, ok := strings.Cut(field, ",")
	if !ok {
		return sample{}, fmt.Errorf("%w: complex sample %q has no imaginary part", ErrFloatFormat, field)
	}
	r, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return sample{}, fmt.Errorf("%w: %v", ErrFloatFormat, err)
	}
	i, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return sample{}, fmt.Errorf("%w: %v", ErrFloatFormat, err)
	}
	return sample{value: math.Hypot(r, i), angle: math.Atan2(i, r)}, nil
}
