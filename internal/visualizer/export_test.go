package visualizer

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

var (
	white = animation.Style{Color: animation.White, Alpha: 1}
	red   = animation.Style{Color: animation.Red, Alpha: 1}
)

func TestSVGDocument(t *testing.T) {
	s := NewSVG(200, 100, square20)
	s.Circle(fourier.Pt(0, 0), 10, white)
	s.Circle(fourier.Pt(0, 0), 10, animation.Style{Color: animation.White, Alpha: 1, Fill: true})
	s.Line(fourier.Pt(-10, 0), fourier.Pt(10, 0), red)
	s.Dot(fourier.Pt(0, 0), 4, white)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	doc := buf.String()
	if !strings.HasPrefix(doc, "<?xml") || !strings.HasSuffix(doc, "</svg>\n") {
		t.Fatalf("not a complete document:\n%s", doc)
	}
	if !strings.Contains(doc, `width="200px" height="100px"`) {
		t.Fatal("missing pixel size")
	}
	if n := strings.Count(doc, "<circle"); n != 3 {
		t.Fatalf("got %d circles, want 3", n)
	}
	if n := strings.Count(doc, "<line"); n != 1 {
		t.Fatalf("got %d lines, want 1", n)
	}
	if !strings.Contains(doc, `fill="none" stroke="#ffffff"`) {
		t.Fatal("ring should be stroked only")
	}
	if !strings.Contains(doc, `stroke="#ff0000"`) {
		t.Fatal("missing red arm")
	}
}

func TestSVGClearDropsPreviousFrame(t *testing.T) {
	s := NewSVG(50, 50, square20)
	s.Line(fourier.Pt(-10, 0), fourier.Pt(10, 0), red)
	s.Clear()
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<line") {
		t.Fatal("cleared frame still has a line")
	}
}

func TestSVGSessionFrame(t *testing.T) {
	path := []fourier.Point{
		fourier.Pt(-5, -5), fourier.Pt(0, -5), fourier.Pt(5, -5), fourier.Pt(5, 0),
		fourier.Pt(5, 5), fourier.Pt(0, 5), fourier.Pt(-5, 5), fourier.Pt(-5, 0),
	}
	sess, err := animation.NewSession(path, animation.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	s := NewSVG(100, 100, sess.Bounds())
	sess.Draw(s)
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	// one ring per epicycle plus the tip
	if got, want := strings.Count(buf.String(), "<circle"), sess.Epicycles()+1; got != want {
		t.Fatalf("got %d circles, want %d", got, want)
	}
}

func TestPNGRaster(t *testing.T) {
	p := NewPNG(100, 100, square20)
	img := p.Image()
	if c := img.RGBAAt(0, 0); c.R != 0 || c.A != 255 {
		t.Fatalf("background = %+v, want opaque black", c)
	}

	p.Dot(fourier.Pt(0, 0), 4, animation.Style{Color: animation.White, Alpha: 1, Fill: true})
	if c := img.RGBAAt(50, 50); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Fatalf("dot centre = %+v, want white", c)
	}

	p.Line(fourier.Pt(-10, 0), fourier.Pt(10, 0), red)
	if c := img.RGBAAt(20, 50); c.R < 100 || c.G != 0 {
		t.Fatalf("line pixel = %+v, want red", c)
	}

	p.Clear()
	p.Circle(fourier.Pt(0, 0), 10, white)
	if c := img.RGBAAt(50, 50); c.R != 0 {
		t.Fatalf("ring interior = %+v, want black", c)
	}
	if c := img.RGBAAt(72, 49); c.R == 0 {
		t.Fatalf("ring edge = %+v, want lit", c)
	}
	if c := img.RGBAAt(90, 90); c.R != 0 {
		t.Fatalf("outside ring = %+v, want black", c)
	}
}

func TestPNGEncode(t *testing.T) {
	p := NewPNG(64, 32, square20)
	p.Line(fourier.Pt(-10, -10), fourier.Pt(10, 10), white)
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("bounds = %v", b)
	}
}
