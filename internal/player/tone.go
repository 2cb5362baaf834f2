package player

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

const (
	sampleRate    = 44100
	channelCount  = 2
	bitDepth      = 2 // 16-bit = 2 bytes
	bytesPerFrame = channelCount * bitDepth
)

// ToneOptions controls how a path is turned into sound.
type ToneOptions struct {
	// Frequency is how many times per second the path is traced; default 100.
	Frequency float64
	// Amplitude is the peak level in (0, 1]; default 0.8.
	Amplitude float64
}

func (o ToneOptions) withDefaults() ToneOptions {
	if o.Frequency <= 0 {
		o.Frequency = 100
	}
	if o.Amplitude <= 0 || o.Amplitude > 1 {
		o.Amplitude = 0.8
	}
	return o
}

// Tone is an endless stereo PCM stream (signed 16-bit little endian) that
// traces a path: x on the left channel, y on the right, y pointing up. It
// is read by the audio thread while the UI swaps paths, so every method
// locks.
type Tone struct {
	mu    sync.Mutex
	opts  ToneOptions
	path  []fourier.Point // scaled into [-Amplitude, Amplitude]
	phase float64         // position along path, in samples
	step  float64         // path samples per audio frame
}

// NewTone creates a stream over path.
func NewTone(path []fourier.Point, opts ToneOptions) (*Tone, error) {
	t := &Tone{opts: opts.withDefaults()}
	if err := t.SetPath(path); err != nil {
		return nil, err
	}
	return t, nil
}

// SetPath switches to a new path, keeping the relative position within the
// period so the sound does not click back to the start.
func (t *Tone) SetPath(path []fourier.Point) error {
	scaled, err := normalize(path, t.opts.Amplitude)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if n := len(t.path); n > 0 {
		t.phase = t.phase / float64(n) * float64(len(scaled))
	}
	t.path = scaled
	t.step = float64(len(scaled)) * t.opts.Frequency / sampleRate
	return nil
}

// Read fills p with whole frames. It never returns io.EOF.
func (t *Tone) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	frames := len(p) / bytesPerFrame
	n := float64(len(t.path))
	for f := range frames {
		x, y := t.sample()
		binary.LittleEndian.PutUint16(p[f*bytesPerFrame:], uint16(toInt16(x)))
		binary.LittleEndian.PutUint16(p[f*bytesPerFrame+bitDepth:], uint16(toInt16(y)))
		t.phase = math.Mod(t.phase+t.step, n)
	}
	return frames * bytesPerFrame, nil
}

// sample interpolates linearly between the two path points around phase.
func (t *Tone) sample() (float64, float64) {
	i := int(t.phase)
	frac := t.phase - float64(i)
	a := t.path[i%len(t.path)]
	b := t.path[(i+1)%len(t.path)]
	return a.X + (b.X-a.X)*frac, a.Y + (b.Y-a.Y)*frac
}

func toInt16(v float64) int16 {
	return int16(math.Round(max(-1, min(1, v)) * math.MaxInt16))
}

// normalize centres path and scales its larger extent to amplitude, with y
// flipped so screen-down becomes a negative level.
func normalize(path []fourier.Point, amplitude float64) ([]fourier.Point, error) {
	b, err := pathfit.Bounds(path)
	if err != nil {
		return nil, err
	}
	c := b.Center()
	half := max(b.Width(), b.Height()) / 2
	if half == 0 {
		half = 1
	}
	gain := amplitude / half
	out := make([]fourier.Point, len(path))
	for i, p := range path {
		out[i] = fourier.Pt((p.X-c.X)*gain, -(p.Y-c.Y)*gain)
	}
	return out, nil
}
