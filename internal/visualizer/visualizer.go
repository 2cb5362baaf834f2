package visualizer

import (
	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// Visualizer is a terminal canvas a Session draws into.
type Visualizer interface {
	animation.Canvas
	Name() string
	// Resize sets the drawing area in terminal cells.
	Resize(width, height int)
	// Frame sets the region of path space that fills the drawing area.
	Frame(bounds pathfit.Rect)
	View() string
}

// Modes returns all available terminal visualizers.
func Modes(fps int) []Visualizer {
	return []Visualizer{
		NewBraille(fps),
		NewDense(fps),
	}
}
