package fourier

import (
	"math/rand"
	"testing"
)

func radii(es []Epicycle) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.Radius
	}
	return out
}

func TestChainExtendPreservesOrder(t *testing.T) {
	c := NewChain(Epicycle{Radius: 1}).
		Extend([]Epicycle{{Radius: 3}, {Radius: 2}, {Radius: 3}})
	diff(t, []float64{1, 3, 2, 3}, radii(c.Epicycles()))
}

func TestChainSort(t *testing.T) {
	c := NewChain(Epicycle{Radius: 1}, Epicycle{Radius: 5}, Epicycle{Radius: 3})
	diff(t, []float64{5, 3, 1}, radii(c.Sort(true).Epicycles()))
	diff(t, []float64{1, 3, 5}, radii(c.Sort(false).Epicycles()))
}

func TestChainTruncate(t *testing.T) {
	c := NewChain(Epicycle{Radius: 4}, Epicycle{Radius: 3}, Epicycle{Radius: 2})
	if c.Truncate(10).Len() != 3 {
		t.Fatal("truncate above length must be a no-op")
	}
	diff(t, []float64{4, 3}, radii(c.Truncate(2).Epicycles()))

	// extending after a truncate must not resurrect dropped entries
	c.Add(Epicycle{Radius: 9})
	diff(t, []float64{4, 3, 9}, radii(c.Epicycles()))
}

func TestTruncationMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	all := make([]Epicycle, 120)
	for i := range all {
		all[i] = Epicycle{Radius: rng.Float64() * 50, Rate: i}
	}

	for _, k := range []int{0, 1, 17, 60, 119, 120} {
		c := NewChain(all...).Sort(true).Truncate(k)
		if c.Len() != k {
			t.Fatalf("Truncate(%d) kept %d", k, c.Len())
		}
		kept := map[int]bool{}
		minKept := 1e300
		for _, e := range c.Epicycles() {
			kept[e.Rate] = true
			minKept = min(minKept, e.Radius)
		}
		for _, e := range all {
			if !kept[e.Rate] && e.Radius > minKept {
				t.Fatalf("k=%d: discarded radius %g exceeds retained %g", k, e.Radius, minKept)
			}
		}
	}
}

func TestSquareWaveTruncation(t *testing.T) {
	bins, err := DFT(squareWave())
	if err != nil {
		t.Fatal(err)
	}
	all := Epicycles(bins)
	c := NewChain(all...).Sort(true).Truncate(50)
	if c.Len() != 50 {
		t.Fatalf("got %d epicycles, want 50", c.Len())
	}

	kept := c.Epicycles()
	smallest := kept[len(kept)-1].Radius
	retained := map[int]bool{}
	for _, e := range kept {
		retained[e.Rate] = true
	}
	discarded := 0
	for _, e := range all {
		if retained[e.Rate] {
			continue
		}
		discarded++
		if e.Radius > smallest {
			t.Errorf("discarded rate %d radius %g > retained %g", e.Rate, e.Radius, smallest)
		}
	}
	if discarded != 150 {
		t.Fatalf("discarded %d epicycles, want 150", discarded)
	}
}

func TestEvaluateMatchesSum(t *testing.T) {
	c := NewChain(
		Epicycle{Radius: 30, Rate: 1, Phase: 0.3},
		Epicycle{Radius: 12, Rate: -2, Phase: 1.1},
		Epicycle{Radius: 4, Rate: 5, Phase: -2},
	)
	offset := Pt(100, -40)
	for _, tm := range []float64{0, 0.1, 0.37, 0.5, 0.99} {
		want := offset.Complex()
		for _, e := range c.Epicycles() {
			want = want.Add(Polar(e.Radius, e.Angle(tm)))
		}
		diff(t, want.Point(), c.Evaluate(tm, offset), approx())

		joints := c.Joints(tm, offset)
		if len(joints) != c.Len()+1 {
			t.Fatalf("Joints len = %d, want %d", len(joints), c.Len()+1)
		}
		diff(t, offset, joints[0])
		diff(t, c.Evaluate(tm, offset), joints[len(joints)-1])
	}
}

func TestEvaluateEmptyChainReturnsOffset(t *testing.T) {
	diff(t, Pt(3, 4), NewChain().Evaluate(0.5, Pt(3, 4)))
}

func TestFullChainReconstructsSignal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 40
	signal := make([]Complex, n)
	for i := range signal {
		signal[i] = Cx(rng.Float64()*100, rng.Float64()*100)
	}
	bins, err := DFT(signal)
	if err != nil {
		t.Fatal(err)
	}
	// sorted or not, a complete chain sums to the same endpoint
	c := NewChain(Epicycles(bins)...).Sort(true)
	for i, x := range signal {
		got := c.Evaluate(float64(i)/n, Point{})
		diff(t, x.Point(), got, approxWithin(1e-8))
	}
}

func TestBuildChain(t *testing.T) {
	c, err := BuildChain(squareWave(), 50)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", c.Len())
	}
	r := radii(c.Epicycles())
	for i := 1; i < len(r); i++ {
		if r[i] > r[i-1] {
			t.Fatalf("chain not radius-descending at %d: %v", i, r)
		}
	}

	// only odd harmonics survive the zero filter
	full, err := BuildChain(squareWave(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if full.Len() != 100 {
		t.Fatalf("full chain has %d epicycles, want 100", full.Len())
	}

	if _, err := BuildChain(nil, 5); err == nil {
		t.Fatal("expected error for empty signal")
	}
}
