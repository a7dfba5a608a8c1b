package rawfile

// Flags tells whether a document's samples carry one component (real
// analyses) or two (complex analyses, stored as magnitude and phase).
type Flags string

const (
	// Real marks a document whose samples are single real values.
	Real Flags = "real"

	// Complex marks a document whose samples are real/imaginary pairs,
	// stored as magnitude and phase.
	Complex Flags = "complex"
)

// IsComplex reports whether samples carry a phase component.
func (f Flags) IsComplex() bool {
	return f == Complex
}

// Series holds the full set of samples for one declared signal across all
// simulated points, in point order.
type Series struct {
	// Name is the signal identifier, e.g. "v(out)".
	Name string `json:"name" yaml:"name" toml:"name"`

	// Type is the simulator's type label ("voltage", "time", ...). It is
	// treated as an opaque string.
	Type string `json:"type" yaml:"type" toml:"type"`

	// Values holds one sample per point: the plain value for real
	// documents, the magnitude for complex ones.
	Values []float64 `json:"values" yaml:"values" toml:"values"`

	// Angles holds the phase in radians for complex documents. It is nil
	// for real documents and always the same length as Values otherwise.
	Angles []float64 `json:"angles,omitempty" yaml:"angles,omitempty" toml:"angles,omitempty"`
}

// Document is the parsed form of one raw file.
//
// A Document returned by Parse is complete and consistent: len(Series)
// equals Variables, every series holds Points values, and angles are
// present on every series exactly when Flags is Complex. It is never
// mutated after Parse returns.
type Document struct {
	// Title, Date and Plotname are free-text header fields.
	Title    string `json:"title" yaml:"title" toml:"title"`
	Date     string `json:"date" yaml:"date" toml:"date"`
	Plotname string `json:"plotname" yaml:"plotname" toml:"plotname"`

	// Flags distinguishes real from complex data.
	Flags Flags `json:"flags" yaml:"flags" toml:"flags"`

	// Variables and Points are the declared counts from the header.
	Variables int `json:"variables" yaml:"variables" toml:"variables"`
	Points    int `json:"points" yaml:"points" toml:"points"`

	// Series holds one entry per declared variable, in declaration order.
	Series []Series `json:"series" yaml:"series" toml:"series"`
}

// IsComplex reports whether the document carries phase data.
func (d *Document) IsComplex() bool {
	return d.Flags.IsComplex()
}

// validate checks the completeness invariants after the final flush.
// The value section can legitimately end early (or run long) relative to
// the header's declared counts; that must surface as an error rather than
// as a short or oversized Document.
func (d *Document) validate() error {
	if len(d.Series) != d.Variables {
		return ErrVariableCount
	}
	for i := range d.Series {
		s := &d.Series[i]
		if len(s.Values) != d.Points {
			return ErrValueCount
		}
		if d.IsComplex() && len(s.Angles) != len(s.Values) {
			return ErrValueCount
		}
	}
	return nil
}
