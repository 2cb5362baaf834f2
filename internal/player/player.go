// Package player plays a path as sound, the way an oscilloscope in X-Y mode
// would draw it back.
package player

import (
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

// Player loops a Tone through the audio device.
type Player struct {
	tone      *Tone
	otoPlayer *oto.Player
	volume    float64
	paused    bool
	mu        sync.Mutex
	closed    bool
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// New starts playing path.
func New(path []fourier.Point, opts ToneOptions) (*Player, error) {
	tone, err := NewTone(path, opts)
	if err != nil {
		return nil, err
	}
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}

	p := &Player{tone: tone, volume: 0.5}
	p.otoPlayer = ctx.NewPlayer(tone)
	p.otoPlayer.SetVolume(p.volume)
	p.otoPlayer.Play()
	return p, nil
}

// SetPath swaps the traced path without restarting the stream.
func (p *Player) SetPath(path []fourier.Point) error {
	return p.tone.SetPath(path)
}

// TogglePause toggles between play and pause.
func (p *Player) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		p.otoPlayer.Play()
		p.paused = false
	} else {
		p.otoPlayer.Pause()
		p.paused = true
	}
}

// Paused returns whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Volume returns current volume (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets volume (clamped to 0.0 - 1.0).
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = max(0, min(1, v))
	p.otoPlayer.SetVolume(p.volume)
}

// AdjustVolume adjusts volume by delta.
func (p *Player) AdjustVolume(delta float64) {
	p.mu.Lock()
	v := p.volume + delta
	p.mu.Unlock()
	p.SetVolume(v)
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.otoPlayer.Pause()
}
