package channel_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/sicrate/channel"
	"github.com/katalvlaran/sicrate/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewPrecoder covers row-major wrapping and length checks.
func TestNewPrecoder(t *testing.T) {
	t.Parallel()

	data := []complex128{1, 2, 3, 4}
	p, err := channel.NewPrecoder(2, 2, data)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 0), p.At(0, 1))
	data[1] = 0
	assert.Equal(t, complex(2, 0), p.At(0, 1), "data is copied")
	assert.InDelta(t, 30.0, channel.TotalPower(p), tol)
	assert.Equal(t, []float64{10, 20}, channel.ColumnPowers(p))

	_, err = channel.NewPrecoder(2, 2, data[:3])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = channel.NewPrecoder(0, 2, nil)
	require.ErrorIs(t, err, channel.ErrTooFewUsers)
}

// TestNormalizeColumns rescales to the requested column powers.
func TestNormalizeColumns(t *testing.T) {
	t.Parallel()

	p := mat.NewCDense(2, 2, []complex128{3, 0, 4i, 0})
	out, err := channel.NormalizeColumns(p, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, matrix.ColNormSq(out, 0), tol)
	assert.InDelta(t, 0.0, matrix.ColNormSq(out, 1), tol)
	assert.InDelta(t, 0.6, real(out.At(0, 0)), tol)
	assert.InDelta(t, 0.8, imag(out.At(1, 0)), tol)

	_, err = channel.NormalizeColumns(p, []float64{1, 1})
	require.ErrorIs(t, err, channel.ErrZeroColumn)
	_, err = channel.NormalizeColumns(p, []float64{-1, 0})
	require.ErrorIs(t, err, channel.ErrBadPower)
	_, err = channel.NormalizeColumns(p, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = channel.NormalizeColumns(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScalePrecoder doubles power when scaled by √2.
func TestScalePrecoder(t *testing.T) {
	t.Parallel()

	p := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1i})
	s, err := channel.ScalePrecoder(p, complex(math.Sqrt2, 0))
	require.NoError(t, err)
	assert.InDelta(t, 2*channel.TotalPower(p), channel.TotalPower(s), tol)
	assert.Equal(t, complex(1, 0), p.At(0, 0), "input untouched")
}

// TestPermuteColumns reorders layers.
func TestPermuteColumns(t *testing.T) {
	t.Parallel()

	p := mat.NewCDense(1, 3, []complex128{10, 20, 30})
	out, err := channel.PermuteColumns(p, []int{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, complex(20, 0), out.At(0, 0))
	assert.Equal(t, complex(30, 0), out.At(0, 1))
	assert.Equal(t, complex(10, 0), out.At(0, 2))

	_, err = channel.PermuteColumns(p, []int{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMaximumRatio aligns each column with the conjugate of its user's row.
func TestMaximumRatio(t *testing.T) {
	t.Parallel()

	h, err := channel.NewTensor(
		mat.NewCDense(1, 2, []complex128{1i, 0}),
		mat.NewCDense(1, 2, []complex128{1, 1}),
	)
	require.NoError(t, err)

	p, err := channel.MaximumRatio(h, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, matrix.ColNormSq(p, 0), tol)
	assert.InDelta(t, 2.0, matrix.ColNormSq(p, 1), tol)

	// matched filter: |h_l·p_l|² = P_l‖h_l‖²
	assert.InDelta(t, 1.0, matrix.AbsSq(matrix.RowCol(h.At(0), 0, p, 0)), tol)
	assert.InDelta(t, 4.0, matrix.AbsSq(matrix.RowCol(h.At(1), 0, p, 1)), tol)
	// the received amplitude is real and positive
	assert.InDelta(t, 0.0, cmplx.Phase(matrix.RowCol(h.At(0), 0, p, 0)), tol)

	multi, err := channel.Rayleigh(2, 2, 2, channel.WithSeed(1))
	require.NoError(t, err)
	_, err = channel.MaximumRatio(multi, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
