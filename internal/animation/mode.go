package animation

import (
	"fmt"
	"strings"
)

// Mode selects how a path is decomposed and drawn.
type Mode int

const (
	// ModeCombined draws one chain over x+iy samples.
	ModeCombined Mode = iota
	// ModeSeparate draws one chain per axis and joins their tips.
	ModeSeparate
	// ModeWave draws the y axis as a 1D signal scrolling to the right.
	ModeWave
)

// Next cycles to the next mode.
func (m Mode) Next() Mode {
	switch m {
	case ModeWave:
		return ModeCombined
	case ModeCombined:
		return ModeSeparate
	default:
		return ModeWave
	}
}

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSeparate:
		return "separate"
	case ModeWave:
		return "wave"
	default:
		return "combined"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "combined", "2d":
		return ModeCombined, nil
	case "separate", "xy":
		return ModeSeparate, nil
	case "wave", "1d":
		return ModeWave, nil
	}
	return ModeCombined, fmt.Errorf("unknown mode %q", s)
}
