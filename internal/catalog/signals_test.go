package catalog

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyjackson/fourier-series-drawer/internal/fourier"
	"github.com/joeyjackson/fourier-series-drawer/internal/pathfit"
)

func TestBuiltinShapes(t *testing.T) {
	sigs := Builtin()
	require.Len(t, sigs, 7)
	seen := map[string]bool{}
	for _, s := range sigs {
		assert.False(t, seen[s.Name], "duplicate %q", s.Name)
		seen[s.Name] = true
		assert.NotEmpty(t, s.Path, s.Name)

		b, err := pathfit.Bounds(s.Path)
		require.NoError(t, err, s.Name)
		if s.Name != "square-wave" {
			assert.Greater(t, b.Width(), 0.0, s.Name)
		}
		assert.Greater(t, b.Height(), 0.0, s.Name)

		chain, err := fourier.BuildChain(fourier.Samples(s.Path), 0)
		require.NoError(t, err, s.Name)
		assert.Positive(t, chain.Len(), s.Name)
	}
}

func TestSquareWaveLevels(t *testing.T) {
	path := squareWave(samplesPerShape)
	require.Len(t, path, 200)
	for i, p := range path {
		want := -50.0
		if i >= 100 {
			want = 50
		}
		assert.Equal(t, fourier.Pt(0, want), p, "sample %d", i)
	}

	// a 1D signal keeps exactly the strongest 50 epicycles
	chain, err := fourier.BuildChain(fourier.Samples(path), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, chain.Len())
}

func TestDiamondCorners(t *testing.T) {
	path := diamond(100)
	require.Len(t, path, 402)
	assert.Equal(t, fourier.Pt(-100, 0), path[0])
	assert.Equal(t, fourier.Pt(0, 100), path[100])
	assert.Equal(t, fourier.Pt(100, 0), path[200])
	assert.Equal(t, fourier.Pt(100, 0), path[201])
	assert.Equal(t, fourier.Pt(0, -100), path[301])
	assert.Equal(t, fourier.Pt(-100, 0), path[401])

	fit, err := pathfit.Fit(path, pathfit.Window{MinX: -200, MinY: -200, Width: 400, Height: 400, CenterInWindow: true})
	require.NoError(t, err)
	b, err := pathfit.Bounds(fit)
	require.NoError(t, err)
	assert.InDelta(t, 0, b.Center().X, 1e-9)
	assert.InDelta(t, 0, b.Center().Y, 1e-9)
	assert.InDelta(t, 400, b.Width(), 1e-9)
}

func TestCatalogGet(t *testing.T) {
	c := New(rand.New(rand.NewSource(1)))

	s, err := c.Get("heart")
	require.NoError(t, err)
	assert.Equal(t, "heart", s.Name)

	_, err = c.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSignal))

	for _, name := range []string{"", Random} {
		s, err := c.Get(name)
		require.NoError(t, err)
		assert.Contains(t, c.Names(), s.Name)
	}
}

func TestCatalogAddReplaces(t *testing.T) {
	c := New(rand.New(rand.NewSource(1)))
	n := c.Len()

	require.NoError(t, c.Add(Signal{Name: "mine", Path: []fourier.Point{fourier.Pt(1, 2)}}))
	require.NoError(t, c.Add(Signal{Name: "mine", Path: []fourier.Point{fourier.Pt(3, 4), fourier.Pt(5, 6)}}))
	assert.Equal(t, n+1, c.Len())

	s, err := c.Get("mine")
	require.NoError(t, err)
	assert.Len(t, s.Path, 2)
	assert.Equal(t, "mine", c.Names()[n])

	assert.Error(t, c.Add(Signal{Name: Random, Path: s.Path}))
	assert.Error(t, c.Add(Signal{Name: ""}))
	assert.ErrorIs(t, c.Add(Signal{Name: "empty"}), fourier.ErrEmptySignal)
}

func TestCatalogRandomCoversAll(t *testing.T) {
	c := New(rand.New(rand.NewSource(42)))
	seen := map[string]bool{}
	for range 500 {
		seen[c.Random().Name] = true
	}
	assert.Len(t, seen, c.Len())
}
