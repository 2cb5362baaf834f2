package media

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

// ErrInvalidWAV is returned for data that is not a PCM WAV file.
var ErrInvalidWAV = errors.New("media: invalid WAV file")

// ReadOptions controls how audio frames become path points.
type ReadOptions struct {
	// MaxSamples decimates longer recordings evenly; <= 0 keeps every frame.
	MaxSamples int
	// Scale multiplies the normalized [-1, 1] levels; 0 means 100.
	Scale float64
}

// WAVOptions controls path export.
type WAVOptions struct {
	SampleRate int     // default 44100
	BitDepth   int     // 16, 24 or 32; default 16
	Loops      int     // repetitions of the path; default 1
	Amplitude  float64 // peak level in (0, 1]; default 0.9
}

func (o WAVOptions) withDefaults() WAVOptions {
	if o.SampleRate <= 0 {
		o.SampleRate = 44100
	}
	if o.BitDepth == 0 {
		o.BitDepth = 16
	}
	if o.Loops <= 0 {
		o.Loops = 1
	}
	if o.Amplitude <= 0 || o.Amplitude > 1 {
		o.Amplitude = 0.9
	}
	return o
}

func supportedDepth(bits int) bool {
	return bits == 16 || bits == 24 || bits == 32
}

// ReadWAV decodes a WAV recording into a path. Stereo files map the left
// channel to x and the right channel to y, with y pointing up as on an
// oscilloscope. Mono files become a wave over x ∈ [-scale, scale].
func ReadWAV(r io.ReadSeeker, opts ReadOptions) ([]fourier.Point, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	depth := int(dec.BitDepth)
	if !supportedDepth(depth) {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidWAV, depth)
	}
	chans := buf.Format.NumChannels
	if chans < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidWAV)
	}
	frames := len(buf.Data) / chans
	if frames == 0 {
		return nil, fmt.Errorf("read WAV: %w", fourier.ErrEmptySignal)
	}

	scale := opts.Scale
	if scale == 0 {
		scale = 100
	}
	step := 1
	if opts.MaxSamples > 0 && frames > opts.MaxSamples {
		step = (frames + opts.MaxSamples - 1) / opts.MaxSamples
	}
	full := float64(int64(1) << (depth - 1))

	path := make([]fourier.Point, 0, frames/step+1)
	for f := 0; f < frames; f += step {
		left := float64(buf.Data[f*chans]) / full
		if chans == 1 {
			x := 2*float64(f)/float64(frames) - 1
			path = append(path, fourier.Pt(x*scale, -left*scale))
			continue
		}
		right := float64(buf.Data[f*chans+1]) / full
		path = append(path, fourier.Pt(left*scale, -right*scale))
	}
	return path, nil
}

// WriteWAV encodes path as a stereo WAV, centred and scaled so its larger
// extent spans the requested amplitude.
func WriteWAV(w io.WriteSeeker, path []fourier.Point, opts WAVOptions) error {
	opts = opts.withDefaults()
	if !supportedDepth(opts.BitDepth) {
		return fmt.Errorf("write WAV: unsupported bit depth %d", opts.BitDepth)
	}
	b, err := pathfit.Bounds(path)
	if err != nil {
		return fmt.Errorf("write WAV: %w", err)
	}
	c := b.Center()
	half := max(b.Width(), b.Height()) / 2
	if half == 0 {
		half = 1
	}
	full := float64(int64(1)<<(opts.BitDepth-1) - 1)
	gain := opts.Amplitude * full / half

	data := make([]int, 0, 2*len(path)*opts.Loops)
	for range opts.Loops {
		for _, p := range path {
			data = append(data,
				int(math.Round((p.X-c.X)*gain)),
				int(math.Round(-(p.Y-c.Y)*gain)),
			)
		}
	}

	enc := wav.NewEncoder(w, opts.SampleRate, opts.BitDepth, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: opts.SampleRate},
		Data:           data,
		SourceBitDepth: opts.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode WAV: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize WAV: %w", err)
	}
	return nil
}
