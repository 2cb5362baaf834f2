package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeyjackson/fourier-series-drawer/internal/animation"
	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/media"
	"github.com/joeyjackson/fourier-series-drawer/internal/visualizer"
)

type exportOptions struct {
	Animation animation.Options
	// Frames is the number of substeps taken before the frame is drawn;
	// <= 0 draws after one full period.
	Frames int
	Width  int
	Height int
	WAV    media.WAVOptions
}

// exportSignal renders sig into out. Image outputs get a single frame;
// path outputs get the epicycle reconstruction sampled once per step.
func exportSignal(sig catalog.Signal, out string, opts exportOptions) error {
	anim := opts.Animation
	anim.Loop = false
	s, err := animation.NewSession(sig.Path, animation.Arrange(anim, sig.Path))
	if err != nil {
		return fmt.Errorf("%s: %w", sig.Name, err)
	}

	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".svg", ".png":
		frames := opts.Frames
		if frames <= 0 {
			frames = s.N()
		}
		step := s.Options().Duration / time.Duration(s.N())
		for range frames {
			s.Advance(step)
		}
		if ext == ".svg" {
			c := visualizer.NewSVG(opts.Width, opts.Height, s.Bounds())
			s.Draw(c)
			return writeFile(out, func(w io.Writer) error {
				_, err := c.WriteTo(w)
				return err
			})
		}
		c := visualizer.NewPNG(opts.Width, opts.Height, s.Bounds())
		s.Draw(c)
		return writeFile(out, c.Encode)

	case ".wav", ".json":
		return media.Save(out, catalog.Signal{Name: sig.Name, Path: s.Reconstruct()}, opts.WAV)

	default:
		return fmt.Errorf("export: unsupported output %s (want .svg, .png, .wav or .json)", ext)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
