// Package animation drives an epicycle reconstruction over time and emits
// the frames through a Canvas.
package animation

import (
	"errors"
	"math"
	"time"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

// ErrNoEpicycles is returned when a path decomposes into nothing visible.
var ErrNoEpicycles = errors.New("animation: path has no visible epicycles")

// Options configures a Session.
type Options struct {
	Mode Mode
	// Duration is the wall-clock time of one full period.
	Duration time.Duration
	// MaxEpicycles bounds each chain; <= 0 keeps every non-zero epicycle.
	MaxEpicycles int

	// Center anchors the chain in ModeCombined and ModeWave.
	Center fourier.Point
	// CenterX and CenterY anchor the x and y chains in ModeSeparate.
	CenterX fourier.Point
	CenterY fourier.Point

	// WaveOffsetX is where the wave starts in ModeWave; successive samples
	// are WaveStep apart.
	WaveOffsetX float64
	WaveStep    float64

	Rings bool
	Arms  bool
	// Fade makes older trail segments more transparent.
	Fade bool
	// Loop takes the per-frame step count modulo N so long pauses do not
	// fast-forward through many periods.
	Loop bool
}

// DefaultOptions returns the options used by the terminal front-end.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeCombined,
		Duration: 10 * time.Second,
		WaveStep: 1,
		Rings:    true,
		Arms:     true,
		Fade:     true,
		Loop:     true,
	}
}

// Session is one running animation. It owns its chains, time cursor and
// trail; replacing a path means building a new Session.
//
// A Session is not safe for concurrent use.
type Session struct {
	opts   Options
	chains []*fourier.Chain
	n      int
	dt     float64
	step   int
	trail  *Trail
}

// NewSession decomposes path according to opts.Mode.
func NewSession(path []fourier.Point, opts Options) (*Session, error) {
	if len(path) == 0 {
		return nil, fourier.ErrEmptySignal
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultOptions().Duration
	}
	if opts.WaveStep <= 0 {
		opts.WaveStep = 1
	}

	var signals [][]fourier.Complex
	switch opts.Mode {
	case ModeSeparate:
		signals = [][]fourier.Complex{fourier.SamplesX(path), fourier.SamplesY(path)}
	case ModeWave:
		signals = [][]fourier.Complex{fourier.SamplesY(path)}
	default:
		signals = [][]fourier.Complex{fourier.Samples(path)}
	}

	s := &Session{
		opts:  opts,
		n:     len(path),
		dt:    1 / float64(len(path)),
		trail: NewTrail(len(path)),
	}
	total := 0
	for _, sig := range signals {
		c, err := fourier.BuildChain(sig, opts.MaxEpicycles)
		if err != nil {
			return nil, err
		}
		total += c.Len()
		s.chains = append(s.chains, c)
	}
	if total == 0 {
		return nil, ErrNoEpicycles
	}
	return s, nil
}

// Mode returns the decomposition mode.
func (s *Session) Mode() Mode { return s.opts.Mode }

// Options returns the options the session was built with.
func (s *Session) Options() Options { return s.opts }

// N returns the number of samples per period.
func (s *Session) N() int { return s.n }

// Time returns the cursor position in [0, 1).
func (s *Session) Time() float64 {
	return float64(s.step) * s.dt
}

// Epicycles returns the total number of epicycles over all chains.
func (s *Session) Epicycles() int {
	total := 0
	for _, c := range s.chains {
		total += c.Len()
	}
	return total
}

// Trail returns the reconstructed history, newest first.
func (s *Session) Trail() *Trail { return s.trail }

// Restart rewinds the cursor and forgets the trail.
func (s *Session) Restart() {
	s.step = 0
	s.trail.Clear()
}

// Steps converts elapsed wall-clock time into a number of substeps.
func (s *Session) Steps(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	steps := int(math.Round(float64(elapsed) / float64(s.opts.Duration) * float64(s.n)))
	if s.opts.Loop {
		steps %= s.n
	}
	return steps
}

// Advance moves the cursor by the substeps covered by elapsed, pushing one
// reconstructed point per substep. It returns the number of substeps.
func (s *Session) Advance(elapsed time.Duration) int {
	steps := s.Steps(elapsed)
	for range steps {
		s.step = (s.step + 1) % s.n
		s.trail.Push(s.Evaluate(s.Time()))
	}
	return steps
}

// StepFrame advances by elapsed and draws the resulting frame. Only the
// final substep is drawn, so the picture does not depend on the frame rate.
func (s *Session) StepFrame(elapsed time.Duration, c Canvas) int {
	steps := s.Advance(elapsed)
	s.Draw(c)
	return steps
}

// Evaluate returns the reconstructed point at time t.
func (s *Session) Evaluate(t float64) fourier.Point {
	switch s.opts.Mode {
	case ModeSeparate:
		ex := s.chains[0].Evaluate(t, s.opts.CenterX)
		ey := s.chains[1].Evaluate(t, s.opts.CenterY)
		return fourier.Pt(ex.X, ey.Y)
	default:
		return s.chains[0].Evaluate(t, s.opts.Center)
	}
}

// Reconstruct samples the chains once per step over a full period, giving
// the path the current epicycles actually draw.
func (s *Session) Reconstruct() []fourier.Point {
	out := make([]fourier.Point, s.n)
	for k := range out {
		out[k] = s.Evaluate(float64(k) * s.dt)
	}
	return out
}

// Draw renders the current state without advancing.
func (s *Session) Draw(c Canvas) {
	c.Clear()
	t := s.Time()

	switch s.opts.Mode {
	case ModeSeparate:
		ex := s.drawChain(c, s.chains[0], t, s.opts.CenterX)
		ey := s.drawChain(c, s.chains[1], t, s.opts.CenterY)
		latest := fourier.Pt(ex.X, ey.Y)
		c.Line(ex, latest, connectorStyle)
		c.Line(ey, latest, connectorStyle)
		s.drawTrail(c)
	case ModeWave:
		end := s.drawChain(c, s.chains[0], t, s.opts.Center)
		c.Line(end, fourier.Pt(s.opts.WaveOffsetX, end.Y), connectorStyle)
		s.drawWave(c)
	default:
		s.drawChain(c, s.chains[0], t, s.opts.Center)
		s.drawTrail(c)
	}
}

func (s *Session) drawChain(c Canvas, chain *fourier.Chain, t float64, offset fourier.Point) fourier.Point {
	joints := chain.Joints(t, offset)
	for i, e := range chain.Epicycles() {
		center, tip := joints[i], joints[i+1]
		if s.opts.Rings {
			c.Circle(center, 2*e.Radius, ringStyle)
		}
		if s.opts.Arms {
			c.Line(center, tip, armStyle)
		}
	}
	end := joints[len(joints)-1]
	c.Dot(end, tipDiameter, tipStyle)
	return end
}

func (s *Session) drawTrail(c Canvas) {
	n := s.trail.Len()
	for i := 0; i < n-1; i++ {
		st := trailStyle
		if s.opts.Fade {
			st.Alpha = float64(n-i) / float64(n)
		}
		c.Line(s.trail.At(i), s.trail.At(i+1), st)
	}
}

func (s *Session) drawWave(c Canvas) {
	n := s.trail.Len()
	x := s.opts.WaveOffsetX
	for i := 0; i < n-1; i++ {
		a := fourier.Pt(x, s.trail.At(i).Y)
		b := fourier.Pt(x+s.opts.WaveStep, s.trail.At(i+1).Y)
		c.Line(a, b, trailStyle)
		x += s.opts.WaveStep
	}
}
