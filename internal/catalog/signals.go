// Package catalog holds the named signals the front-ends can draw: the
// built-in shapes, paths saved by the user, and the playlist order the TUI
// walks through them in.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
)

// Random is the pseudo-name that selects a signal at random.
const Random = "random"

// ErrUnknownSignal is returned when no signal has the requested name.
var ErrUnknownSignal = errors.New("catalog: unknown signal")

// Signal is a named closed path sampled at equal time steps.
type Signal struct {
	Name string          `json:"name"`
	Path []fourier.Point `json:"path"`
}

// samplesPerShape is the resolution of the built-in shapes.
const samplesPerShape = 200

// Builtin returns the shapes that ship with the program, in display order.
func Builtin() []Signal {
	return []Signal{
		{Name: "circle", Path: parametric(samplesPerShape, func(t float64) fourier.Point {
			return fourier.Pt(100*math.Cos(t), 100*math.Sin(t))
		})},
		{Name: "diamond", Path: diamond(100)},
		{Name: "heart", Path: parametric(samplesPerShape, func(t float64) fourier.Point {
			s := math.Sin(t)
			return fourier.Pt(
				6*16*s*s*s,
				-6*(13*math.Cos(t)-5*math.Cos(2*t)-2*math.Cos(3*t)-math.Cos(4*t)),
			)
		})},
		{Name: "lissajous", Path: parametric(samplesPerShape, func(t float64) fourier.Point {
			return fourier.Pt(100*math.Sin(3*t+math.Pi/2), 100*math.Sin(2*t))
		})},
		{Name: "square-wave", Path: squareWave(samplesPerShape)},
		{Name: "star", Path: polygon(samplesPerShape/10, starVertices(5, 100, 40)...)},
		{Name: "trefoil", Path: parametric(samplesPerShape, func(t float64) fourier.Point {
			return fourier.Pt(33*(math.Sin(t)+2*math.Sin(2*t)), 33*(math.Cos(t)-2*math.Cos(2*t)))
		})},
	}
}

// parametric samples f at n equally spaced angles in [0, 2π).
func parametric(n int, f func(t float64) fourier.Point) []fourier.Point {
	path := make([]fourier.Point, n)
	for i := range path {
		path[i] = f(2 * math.Pi * float64(i) / float64(n))
	}
	return path
}

// polygon walks the closed polygon through vertices, perEdge samples per edge.
func polygon(perEdge int, vertices ...fourier.Point) []fourier.Point {
	path := make([]fourier.Point, 0, perEdge*len(vertices))
	for i, a := range vertices {
		b := vertices[(i+1)%len(vertices)]
		for j := range perEdge {
			f := float64(j) / float64(perEdge)
			path = append(path, fourier.Pt(a.X+(b.X-a.X)*f, a.Y+(b.Y-a.Y)*f))
		}
	}
	return path
}

func starVertices(points int, outer, inner float64) []fourier.Point {
	vs := make([]fourier.Point, 0, 2*points)
	for i := range 2 * points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := -math.Pi/2 + math.Pi*float64(i)/float64(points)
		vs = append(vs, fourier.Pt(r*math.Cos(theta), r*math.Sin(theta)))
	}
	return vs
}

// squareWave is one period of a ±50 square wave on the imaginary axis: the
// first half of the n samples sit at −50, the rest at +50. It is a 1D
// signal, meant for the wave layout.
func squareWave(n int) []fourier.Point {
	path := make([]fourier.Point, n)
	for i := range path {
		y := -50.0
		if i >= n/2 {
			y = 50
		}
		path[i] = fourier.Pt(0, y)
	}
	return path
}

// diamond traces the upper edges left to right from (−r, 0) over (0, r),
// then the lower edges back from (r, 0) through (0, −r), one sample per
// unit of x. Both corners on the x axis are visited twice.
func diamond(r int) []fourier.Point {
	path := make([]fourier.Point, 0, 2*(2*r+1))
	for x := -r; x <= r; x++ {
		path = append(path, fourier.Pt(float64(x), float64(r-absInt(x))))
	}
	for x := r; x >= -r; x-- {
		path = append(path, fourier.Pt(float64(x), float64(absInt(x)-r)))
	}
	return path
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Catalog is a name → signal lookup with a random pick. It is safe for
// concurrent use.
type Catalog struct {
	mu      sync.Mutex
	signals []Signal
	index   map[string]int
	rng     *rand.Rand
}

// New creates a catalog holding the built-in shapes followed by extra. rng
// drives Random; nil seeds one from the clock.
func New(rng *rand.Rand, extra ...Signal) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Catalog{index: make(map[string]int), rng: rng}
	for _, s := range Builtin() {
		c.add(s)
	}
	for _, s := range extra {
		c.add(s)
	}
	return c
}

// Add inserts s, replacing any signal with the same name.
func (c *Catalog) Add(s Signal) error {
	if s.Name == "" || s.Name == Random {
		return fmt.Errorf("catalog: invalid signal name %q", s.Name)
	}
	if len(s.Path) == 0 {
		return fmt.Errorf("add %q: %w", s.Name, fourier.ErrEmptySignal)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(s)
	return nil
}

func (c *Catalog) add(s Signal) {
	if i, ok := c.index[s.Name]; ok {
		c.signals[i] = s
		return
	}
	c.index[s.Name] = len(c.signals)
	c.signals = append(c.signals, s)
}

// Get returns the signal called name. An empty name or Random picks one at
// random.
func (c *Catalog) Get(name string) (Signal, error) {
	if name == "" || name == Random {
		return c.Random(), nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[name]
	if !ok {
		return Signal{}, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
	}
	return c.signals[i], nil
}

// Random returns a uniformly chosen signal.
func (c *Catalog) Random() Signal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signals[c.rng.Intn(len(c.signals))]
}

// Names returns the signal names in catalog order.
func (c *Catalog) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, len(c.signals))
	for i, s := range c.signals {
		names[i] = s.Name
	}
	return names
}

func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.signals)
}
