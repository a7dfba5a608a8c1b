package rawfile

// sample is one parsed value: the plain value (or magnitude, for complex
// documents) and the phase in radians (zero for real documents).
type sample struct {
	value float64
	angle float64
}

// accumulator buffers the samples of the point currently being read.
//
// The value section has no explicit point terminator; the only boundary
// marker is the index column on the first line of the next point. Samples
// are therefore buffered until the next index line, or end of input,
// triggers a flush.
type accumulator struct {
	want  int // declared variable count
	polar bool
	buf   []sample
}

func newAccumulator(want int, polar bool) *accumulator {
	return &accumulator{want: want, polar: polar}
}

// add appends one sample to the pending point, in variable order.
func (a *accumulator) add(s sample) {
	a.buf = append(a.buf, s)
}

// flush commits the buffered point, one sample per series in declaration
// order, and clears the buffer. An empty buffer is a no-op, which makes the
// unconditional flush at end of input safe.
func (a *accumulator) flush(series []Series) error {
	if len(a.buf) == 0 {
		return nil
	}
	if len(a.buf) != a.want || len(a.buf) > len(series) {
		return ErrValueCount
	}
	for i, s := range a.buf {
		series[i].Values = append(series[i].Values, s.value)
		if a.polar {
			series[i].Angles = append(series[i].Angles, s.angle)
		}
	}
	a.buf = a.buf[:0]
	return nil
}
