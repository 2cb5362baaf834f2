// Package pathfit rescales paths into a target rectangle without distorting
// them.
package pathfit

import (
	"errors"
	"fmt"
	"math"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

var (
	// ErrEmptyPath is returned when there is no point to fit.
	ErrEmptyPath = errors.New("pathfit: empty path")
	// ErrDegeneratePath is returned when the path's bounding box has zero
	// width or zero height.
	ErrDegeneratePath = errors.New("pathfit: degenerate path")
	// ErrInvalidWindow is returned for windows without a positive area.
	ErrInvalidWindow = errors.New("pathfit: invalid window")
)

// Window is the target rectangle of a fit.
type Window struct {
	MinX           float64 `json:"minX" yaml:"min_x"`
	MinY           float64 `json:"minY" yaml:"min_y"`
	Width          float64 `json:"width" yaml:"width"`
	Height         float64 `json:"height" yaml:"height"`
	CenterInWindow bool    `json:"centerInWindow,omitempty" yaml:"center_in_window"`
}

// Validate checks that the window has a positive width and height.
func (w Window) Validate() error {
	if !(w.Width > 0) || !(w.Height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidWindow, w.Width, w.Height)
	}
	return nil
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the middle of the box.
func (r Rect) Center() fourier.Point {
	return fourier.Pt(0.5*(r.MinX+r.MaxX), 0.5*(r.MinY+r.MaxY))
}

// Bounds returns the bounding box of path.
func Bounds(path []fourier.Point) (Rect, error) {
	if len(path) == 0 {
		return Rect{}, ErrEmptyPath
	}
	r := Rect{MinX: path[0].X, MinY: path[0].Y, MaxX: path[0].X, MaxY: path[0].Y}
	for _, p := range path[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r, nil
}

// Fit maps path into w with one uniform scale factor, picked from the more
// constraining axis. The path's bounding box lands on (w.MinX, w.MinY), or
// in the middle of the window when w.CenterInWindow is set.
//
// The result has the same length and order as path.
func Fit(path []fourier.Point, w Window) ([]fourier.Point, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	b, err := Bounds(path)
	if err != nil {
		return nil, err
	}
	pathWidth, pathHeight := b.Width(), b.Height()
	if pathWidth == 0 || pathHeight == 0 || !finite(pathWidth) || !finite(pathHeight) {
		return nil, fmt.Errorf("%w: bounding box is %gx%g", ErrDegeneratePath, pathWidth, pathHeight)
	}

	ratio := min(w.Width/pathWidth, w.Height/pathHeight)
	if ratio == 0 || !finite(ratio) {
		return nil, fmt.Errorf("%w: scale factor %g", ErrDegeneratePath, ratio)
	}

	offsetX, offsetY := w.MinX, w.MinY
	if w.CenterInWindow {
		offsetX += (w.Width - pathWidth*ratio) / 2
		offsetY += (w.Height - pathHeight*ratio) / 2
	}

	out := make([]fourier.Point, len(path))
	for i, p := range path {
		out[i] = fourier.Point{
			X: (p.X-b.MinX)*ratio + offsetX,
			Y: (p.Y-b.MinY)*ratio + offsetY,
		}
		if !out[i].IsFinite() {
			return nil, fmt.Errorf("%w: point %d maps to %v", ErrDegeneratePath, i, out[i])
		}
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
