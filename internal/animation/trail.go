package animation

import "github.com/joeyjackson/fourier-series-drawer/internal/fourier"

// Trail is a bounded history of reconstructed points, newest first. Once
// full, every push drops the oldest point.
type Trail struct {
	buf  []fourier.Point
	size int
	w    int // next write position
	len  int // current fill level
}

// NewTrail creates a trail holding at most size points.
func NewTrail(size int) *Trail {
	if size < 1 {
		size = 1
	}
	return &Trail{
		buf:  make([]fourier.Point, size),
		size: size,
	}
}

// Push adds p as the newest point.
func (t *Trail) Push(p fourier.Point) {
	t.buf[t.w] = p
	t.w = (t.w + 1) % t.size
	if t.len < t.size {
		t.len++
	}
}

// At returns the i-th newest point; At(0) is the latest push.
func (t *Trail) At(i int) fourier.Point {
	return t.buf[(t.w-1-i+2*t.size)%t.size]
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.len
}

// Cap returns the maximum number of stored points.
func (t *Trail) Cap() int {
	return t.size
}

// Points returns a copy of the trail, newest first.
func (t *Trail) Points() []fourier.Point {
	out := make([]fourier.Point, t.len)
	for i := range t.len {
		out[i] = t.At(i)
	}
	return out
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.w = 0
	t.len = 0
}
