package visualizer

import (
	"math"
	"strings"
	"testing"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

var square20 = pathfit.Rect{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}

func newTestBraille() *Braille {
	b := NewBraille(30)
	b.profile = colorNone
	b.Resize(10, 5)
	b.Frame(square20)
	b.Clear()
	return b
}

func TestBrailleViewSize(t *testing.T) {
	b := newTestBraille()
	lines := strings.Split(b.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 10 {
			t.Fatalf("line %d has %d cells, want 10", i, n)
		}
		if strings.TrimSpace(line) != "" {
			t.Fatalf("line %d not blank after Clear: %q", i, line)
		}
	}
}

func TestBrailleHorizontalLine(t *testing.T) {
	b := newTestBraille()
	b.Line(fourier.Pt(-10, 0), fourier.Pt(10, 0), animation.Style{Color: animation.White, Alpha: 1})

	// y=0 maps to dot row 10, which is cell row 2
	lines := strings.Split(b.View(), "\n")
	for i, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if i == 2 && strings.ContainsRune(line, ' ') {
			t.Fatalf("line row has gaps: %q", line)
		}
		if i != 2 && !blank {
			t.Fatalf("row %d should be blank: %q", i, line)
		}
	}
}

func TestBrailleDotAlwaysVisible(t *testing.T) {
	b := newTestBraille()
	b.Dot(fourier.Pt(0, 0), 1e-6, animation.Style{Color: animation.White, Alpha: 1, Fill: true})
	if strings.TrimSpace(b.View()) == "" {
		t.Fatal("tiny dot was not drawn")
	}
}

func TestBrailleSkipsInvisible(t *testing.T) {
	b := newTestBraille()
	b.Line(fourier.Pt(-10, 0), fourier.Pt(10, 0), animation.Style{Color: animation.White, Alpha: 0})
	if strings.TrimSpace(b.View()) != "" {
		t.Fatal("transparent line was drawn")
	}
}

func TestBrailleCellTakesMostOpaqueColor(t *testing.T) {
	b := newTestBraille()
	b.Dot(fourier.Pt(0, 0), 1, animation.Style{Color: animation.Red, Alpha: 1, Fill: true})
	b.Dot(fourier.Pt(0, 0), 1, animation.Style{Color: animation.Blue, Alpha: 0.3, Fill: true})
	for _, cell := range b.cells {
		if cell.pattern != 0 && cell.color != animation.Red {
			t.Fatalf("cell colour = %+v, want red", cell.color)
		}
	}
}

func TestBrailleColorOutput(t *testing.T) {
	b := newTestBraille()
	b.profile = colorTrueColor
	b.Dot(fourier.Pt(0, 0), 1, animation.Style{Color: animation.Red, Alpha: 1, Fill: true})
	out := b.View()
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Fatalf("missing truecolor red sequence in %q", out)
	}
	if !strings.Contains(out, "\x1b[0m") {
		t.Fatal("colour not reset at end of line")
	}
}

func TestBrailleRingOutsideIsSkipped(t *testing.T) {
	b := newTestBraille()
	b.Circle(fourier.Pt(1000, 1000), 4, animation.Style{Color: animation.White, Alpha: 1})
	b.Line(fourier.Pt(1000, 1000), fourier.Pt(2000, -3000), animation.Style{Color: animation.White, Alpha: 1})
	if strings.TrimSpace(b.View()) != "" {
		t.Fatal("off-screen primitives were drawn")
	}
}

func TestViewportEasesTowardsNewFrame(t *testing.T) {
	b := newTestBraille()
	before := b.view.scale()
	b.Frame(pathfit.Rect{MinX: -20, MinY: -20, MaxX: 20, MaxY: 20})
	if b.view.scale() != before {
		t.Fatal("reframing should not jump")
	}
	b.Clear()
	mid := b.view.scale()
	if mid >= before || mid <= before/2 {
		t.Fatalf("after one step scale = %v, want between %v and %v", mid, before/2, before)
	}
	for range 200 {
		b.Clear()
	}
	if got := b.view.scale(); got < before/2-1e-3 || got > before/2+1e-3 {
		t.Fatalf("settled scale = %v, want %v", got, before/2)
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		ok             bool
		want           [4]float64
	}{
		{"inside", 1, 1, 5, 5, true, [4]float64{1, 1, 5, 5}},
		{"outside", -5, -5, -1, -1, false, [4]float64{}},
		{"crossing", -10, 5, 20, 5, true, [4]float64{0, 5, 10, 5}},
		{"parallel outside", -1, 20, 5, 20, false, [4]float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clipSegment(tt.x0, tt.y0, tt.x1, tt.y1, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			got := [4]float64{x0, y0, x1, y1}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Fatalf("clipped = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDenseDrawsRamp(t *testing.T) {
	d := NewDense(30)
	d.profile = colorNone
	d.Resize(20, 10)
	d.Frame(square20)
	d.Clear()
	d.Dot(fourier.Pt(0, 0), 1, animation.Style{Color: animation.White, Alpha: 1, Fill: true})
	out := d.View()
	if !strings.ContainsAny(out, string(densityRamp[1:])) {
		t.Fatalf("no ramp characters in %q", out)
	}
	if n := strings.Count(out, "\n"); n != 9 {
		t.Fatalf("got %d newlines, want 9", n)
	}
}

func TestModes(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range Modes(30) {
		if seen[v.Name()] {
			t.Fatalf("duplicate visualizer %q", v.Name())
		}
		seen[v.Name()] = true
	}
	if !seen["braille"] || !seen["dense"] {
		t.Fatalf("modes = %v", seen)
	}
}
