// Package util holds small formatting helpers shared by the front-ends.
package util

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as m:ss.t, clamping negatives to zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	m := tenths / 600
	s := tenths / 10 % 60
	return fmt.Sprintf("%d:%02d.%d", m, s, tenths%10)
}

// FormatLimit formats an epicycle limit, where anything <= 0 means no limit.
func FormatLimit(limit int) string {
	if limit <= 0 {
		return "all"
	}
	return fmt.Sprintf("%d", limit)
}

// Plural returns "1 epicycle" or "n epicycles".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
