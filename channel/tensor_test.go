package channel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sicrate/channel"
	"github.com/katalvlaran/sicrate/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// TestNewTensor covers construction, copying and shape checks.
func TestNewTensor(t *testing.T) {
	t.Parallel()

	a := mat.NewCDense(1, 2, []complex128{1, 2i})
	b := mat.NewCDense(1, 2, []complex128{3, 4})
	h, err := channel.NewTensor(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Users())
	rx, tx := h.Dims()
	assert.Equal(t, 1, rx)
	assert.Equal(t, 2, tx)

	a.Set(0, 0, 100)
	assert.Equal(t, complex(1, 0), h.At(0).At(0, 0), "NewTensor copies its inputs")
	assert.Nil(t, h.At(2))
	assert.Len(t, h.Slices(), 2)
	assert.Equal(t, []float64{5, 25}, h.Gains())

	_, err = channel.NewTensor()
	require.ErrorIs(t, err, channel.ErrTooFewUsers)

	_, err = channel.NewTensor(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = channel.NewTensor(a, mat.NewCDense(2, 2, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTensor_Permute reorders users.
func TestTensor_Permute(t *testing.T) {
	t.Parallel()

	h, err := channel.NewTensor(
		mat.NewCDense(1, 1, []complex128{1}),
		mat.NewCDense(1, 1, []complex128{2}),
		mat.NewCDense(1, 1, []complex128{3}),
	)
	require.NoError(t, err)

	p, err := h.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, complex(3, 0), p.At(0).At(0, 0))
	assert.Equal(t, complex(1, 0), p.At(1).At(0, 0))
	assert.Equal(t, complex(2, 0), p.At(2).At(0, 0))

	_, err = h.Permute([]int{0, 0, 1})
	require.ErrorIs(t, err, matrix.ErrNotPermutation)
}

// TestRayleigh checks reproducibility, shape and the RNG requirement.
func TestRayleigh(t *testing.T) {
	t.Parallel()

	a, err := channel.Rayleigh(3, 2, 4, channel.WithSeed(11))
	require.NoError(t, err)
	b, err := channel.Rayleigh(3, 2, 4, channel.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, 3, a.Users())
	rx, tx := a.Dims()
	assert.Equal(t, 2, rx)
	assert.Equal(t, 4, tx)
	for i := 0; i < 3; i++ {
		assert.True(t, matrix.EqualApproxC(a.At(i), b.At(i), 0), "same seed, same user %d", i)
	}

	_, err = channel.Rayleigh(3, 2, 4)
	require.ErrorIs(t, err, channel.ErrNeedRandSource)
	_, err = channel.Rayleigh(0, 1, 1, channel.WithSeed(1))
	require.ErrorIs(t, err, channel.ErrTooFewUsers)
}

// TestRayleigh_PathGains verifies a zero path gain silences a user and that
// the average per-entry power tracks σ²·g over many draws.
func TestRayleigh_PathGains(t *testing.T) {
	t.Parallel()

	const tx = 4000
	h, err := channel.Rayleigh(2, 1, tx, channel.WithSeed(3), channel.WithVariance(2), channel.WithPathGains(0, 0.5))
	require.NoError(t, err)
	g := h.Gains()
	assert.Equal(t, 0.0, g[0])
	assert.InDelta(t, 1.0, g[1]/tx, 0.1, "mean entry power ≈ σ²·g = 1")
}

// TestLineOfSight checks unit-modulus steering entries and broadside phase.
func TestLineOfSight(t *testing.T) {
	t.Parallel()

	h, err := channel.LineOfSight(4, []float64{0, math.Pi / 6}, channel.WithPathGains(4))
	require.NoError(t, err)
	assert.Equal(t, 2, h.Users())

	// broadside: all elements in phase, amplitude √4
	for k := 0; k < 4; k++ {
		assert.InDelta(t, 2.0, real(h.At(0).At(0, k)), tol)
		assert.InDelta(t, 0.0, imag(h.At(0).At(0, k)), tol)
	}
	// 30°: phase step −π/2 per element, unit gain
	assert.InDelta(t, -1.0, imag(h.At(1).At(0, 1)), 1e-9)
	assert.InDelta(t, 4.0, h.Gains()[1], 1e-9)

	_, err = channel.LineOfSight(0, []float64{0})
	require.ErrorIs(t, err, channel.ErrTooFewUsers)
}
