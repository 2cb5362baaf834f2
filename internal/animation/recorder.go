package animation

import "github.com/joeyjackson/fourier-series-drawer/internal/fourier"

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpCircle OpKind = iota
	OpLine
	OpDot
)

func (k OpKind) String() string {
	switch k {
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "dot"
	}
}

// Op is one recorded drawing call. B is only set for lines; D only for
// circles and dots.
type Op struct {
	Kind  OpKind
	A     fourier.Point
	B     fourier.Point
	D     float64
	Style Style
}

// Recorder is a Canvas that keeps the calls of the current frame as a
// display list.
type Recorder struct {
	ops    []Op
	frames int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.frames++
}

func (r *Recorder) Circle(center fourier.Point, d float64, s Style) {
	r.ops = append(r.ops, Op{Kind: OpCircle, A: center, D: d, Style: s})
}

func (r *Recorder) Line(a, b fourier.Point, s Style) {
	r.ops = append(r.ops, Op{Kind: OpLine, A: a, B: b, Style: s})
}

func (r *Recorder) Dot(p fourier.Point, d float64, s Style) {
	r.ops = append(r.ops, Op{Kind: OpDot, A: p, D: d, Style: s})
}

// Ops returns the calls recorded since the last Clear.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Frames returns how many times Clear was called.
func (r *Recorder) Frames() int {
	return r.frames
}

// Count returns the number of recorded calls of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Replay draws the recorded frame onto c, starting with c.Clear.
func (r *Recorder) Replay(c Canvas) {
	c.Clear()
	for _, op := range r.ops {
		switch op.Kind {
		case OpCircle:
			c.Circle(op.A, op.D, op.Style)
		case OpLine:
			c.Line(op.A, op.B, op.Style)
		case OpDot:
			c.Dot(op.A, op.D, op.Style)
		}
	}
}
