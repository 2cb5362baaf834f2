package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.0"},
		{-time.Second, "0:00.0"},
		{3400 * time.Millisecond, "0:03.4"},
		{3490 * time.Millisecond, "0:03.4"},
		{61*time.Second + 500*time.Millisecond, "1:01.5"},
		{10 * time.Minute, "10:00.0"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLimit(t *testing.T) {
	if got := FormatLimit(0); got != "all" {
		t.Fatalf("FormatLimit(0) = %q", got)
	}
	if got := FormatLimit(-3); got != "all" {
		t.Fatalf("FormatLimit(-3) = %q", got)
	}
	if got := FormatLimit(12); got != "12" {
		t.Fatalf("FormatLimit(12) = %q", got)
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "epicycle"); got != "1 epicycle" {
		t.Fatalf("got %q", got)
	}
	if got := Plural(7, "sample"); got != "7 samples" {
		t.Fatalf("got %q", got)
	}
}
