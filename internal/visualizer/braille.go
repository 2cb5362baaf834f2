package visualizer

import (
	"strings"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type brailleCell struct {
	pattern uint8
	color   animation.Color
	alpha   float64
}

// Braille draws with Unicode Braille characters, giving a 2x4 dot grid per
// terminal cell. A cell takes the colour of the most opaque primitive that
// touched it.
type Braille struct {
	raster
	cells   []brailleCell
	profile colorProfile
}

// NewBraille creates a Braille canvas whose viewport eases at fps.
func NewBraille(fps int) *Braille {
	b := &Braille{
		raster:  newRaster(fps, 2, 4),
		profile: currentColorProfile(),
	}
	b.plot = b.set
	return b
}

func (b *Braille) Name() string { return "braille" }

func (b *Braille) Resize(width, height int) {
	if b.resize(width, height) {
		b.cells = make([]brailleCell, b.width*b.height)
	}
}

func (b *Braille) Frame(bounds pathfit.Rect) { b.frame(bounds) }

func (b *Braille) Clear() {
	for i := range b.cells {
		b.cells[i] = brailleCell{}
	}
	b.advance()
}

func (b *Braille) Line(p0, p1 fourier.Point, s animation.Style) { b.line(p0, p1, s) }

func (b *Braille) Circle(c fourier.Point, d float64, s animation.Style) { b.circle(c, d, s) }

func (b *Braille) Dot(p fourier.Point, d float64, s animation.Style) { b.dot(p, d, s) }

func (b *Braille) set(x, y int, s animation.Style) {
	cell := &b.cells[(y/4)*b.width+x/2]
	cell.pattern |= 1 << brailleBits[x%2][y%4]
	if s.Alpha >= cell.alpha {
		cell.alpha = s.Alpha
		cell.color = s.Color
	}
}

// View renders the current frame, one line per cell row.
func (b *Braille) View() string {
	var out strings.Builder
	color := newANSIState(b.profile)
	for row := range b.height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range b.width {
			cell := b.cells[row*b.width+col]
			if cell.pattern == 0 {
				out.WriteByte(' ')
				continue
			}
			color.set(&out, shade(cell.color, cell.alpha))
			out.WriteRune(rune(0x2800 + int(cell.pattern)))
		}
		color.reset(&out)
	}
	return out.String()
}
