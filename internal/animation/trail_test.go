package animation

import (
	"testing"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

func TestTrailKeepsNewestFirst(t *testing.T) {
	tr := NewTrail(3)
	for i := range 5 {
		tr.Push(fourier.Pt(float64(i), 0))
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	got := tr.Points()
	want := []fourier.Point{fourier.Pt(4, 0), fourier.Pt(3, 0), fourier.Pt(2, 0)}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Points() = %v, want %v", got, want)
		}
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail(4)
	tr.Push(fourier.Pt(1, 1))
	tr.Push(fourier.Pt(2, 2))
	tr.Clear()
	if tr.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", tr.Len())
	}
	tr.Push(fourier.Pt(9, 9))
	if tr.At(0) != fourier.Pt(9, 9) || tr.Len() != 1 {
		t.Fatalf("unexpected trail after reuse: %v", tr.Points())
	}
}

func TestTrailMinimumSize(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(fourier.Pt(1, 0))
	tr.Push(fourier.Pt(2, 0))
	if tr.Cap() != 1 || tr.Len() != 1 || tr.At(0) != fourier.Pt(2, 0) {
		t.Fatalf("unexpected trail: cap=%d len=%d points=%v", tr.Cap(), tr.Len(), tr.Points())
	}
}
