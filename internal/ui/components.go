package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
)

func newProgress() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)
}

// modeIcon returns a short indicator for the decomposition mode.
func modeIcon(m animation.Mode) string {
	switch m {
	case animation.ModeSeparate:
		return "[x|y]"
	case animation.ModeWave:
		return "[wave]"
	default:
		return "[x+iy]"
	}
}

func shuffleIcon(on bool) string {
	if on {
		return "[shuffle]"
	}
	return ""
}

// nextLimit steps an epicycle limit by about a tenth of its value. A limit
// <= 0 stands for all n epicycles; stepping up to n or past it returns 0.
func nextLimit(limit, n int, up bool) int {
	if limit <= 0 || limit > n {
		limit = n
	}
	step := max(1, limit/10)
	if up {
		limit += step
		if limit >= n {
			return 0
		}
		return limit
	}
	return max(1, limit-step)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
