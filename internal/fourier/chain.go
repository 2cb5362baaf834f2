package fourier

import "sort"

// Chain is an ordered composition of epicycles: each one rotates about the
// tip of the previous one.
//
// A Chain belongs to a single animation session and is not safe for
// concurrent use.
type Chain struct {
	epicycles []Epicycle
}

// NewChain creates a chain holding a copy of epicycles.
func NewChain(epicycles ...Epicycle) *Chain {
	c := &Chain{}
	return c.Extend(epicycles)
}

// BuildChain runs the whole decomposition: transform, extract, drop
// negligible radii, sort by radius and keep at most maxEpicycles.
// maxEpicycles <= 0 keeps every non-zero epicycle.
func BuildChain(signal []Complex, maxEpicycles int) (*Chain, error) {
	bins, err := DFT(signal)
	if err != nil {
		return nil, err
	}
	if maxEpicycles <= 0 {
		maxEpicycles = len(signal)
	}
	c := NewChain(NonZero(Epicycles(bins), DefaultEpsilon)...)
	return c.Sort(true).Truncate(maxEpicycles), nil
}

// Add appends a single epicycle.
func (c *Chain) Add(e Epicycle) *Chain {
	c.epicycles = append(c.epicycles, e)
	return c
}

// Extend appends epicycles in order.
func (c *Chain) Extend(epicycles []Epicycle) *Chain {
	c.epicycles = append(c.epicycles, epicycles...)
	return c
}

// Len returns the number of epicycles.
func (c *Chain) Len() int {
	return len(c.epicycles)
}

// Epicycles returns a copy of the chain's epicycles in order.
func (c *Chain) Epicycles() []Epicycle {
	out := make([]Epicycle, len(c.epicycles))
	copy(out, c.epicycles)
	return out
}

// Sort orders the chain by radius, largest first when descending.
// Tie order is unspecified.
func (c *Chain) Sort(descending bool) *Chain {
	sort.SliceStable(c.epicycles, func(i, j int) bool {
		if descending {
			return c.epicycles[i].Radius > c.epicycles[j].Radius
		}
		return c.epicycles[i].Radius < c.epicycles[j].Radius
	})
	return c
}

// Truncate keeps at most maxLength leading epicycles. After a descending
// Sort these are the largest radii, which minimises the L2 reconstruction
// error for that many terms.
func (c *Chain) Truncate(maxLength int) *Chain {
	if maxLength < 0 {
		maxLength = 0
	}
	if len(c.epicycles) > maxLength {
		c.epicycles = c.epicycles[:maxLength:maxLength]
	}
	return c
}

// Evaluate returns the tip of the last epicycle at time t, with the first
// epicycle centred on offset.
func (c *Chain) Evaluate(t float64, offset Point) Point {
	curr := offset
	for _, e := range c.epicycles {
		curr = e.AtOffset(t, curr)
	}
	return curr
}

// Joints returns the centre of every epicycle followed by the chain's tip,
// so len(result) == Len()+1.
func (c *Chain) Joints(t float64, offset Point) []Point {
	out := make([]Point, 0, len(c.epicycles)+1)
	curr := offset
	out = append(out, curr)
	for _, e := range c.epicycles {
		curr = e.AtOffset(t, curr)
		out = append(out, curr)
	}
	return out
}
