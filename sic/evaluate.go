// SPDX-License-Identifier: MIT
// Package: sicrate/sic
//
// evaluate.go — the layer metrics evaluator.
//
// Algorithm (per user row i; rows are independent):
//  1. A[i,l] = h_i·p_l, G[i,l] = |A[i,l]|² (one table for the whole call).
//  2. T[i,0] = Σ_l G[i,l] + 1.
//  3. T[i,j] = T[i,j-1] − G[i, c(j-1)], with c(j) the column decoded at stage j.
//  4. I[i,j] = T[i,j] − G[i, c(j)]            (direct, implicit order)
//     I[i,j] = I[i,j-1] − G[i, c(j)]          (incremental, explicit order)
//  5. Only the valid prefix j ≤ pos[i] is computed; the rest is NaN.
//  6. g = conj(A[i,c(j)])/T, mmse = I/T, u = 1/mmse, rate = log2(T/I).
//  7. R[j] = min over valid i of rate[i,j].
//
// Numeric policy:
//   - Degenerate cells (T ≤ 0, I < 0, non-finite) are kept as computed and
//     counted in a warning; nothing here returns an error after validation.
//   - rate is the real log2 of T/I, so a negative ratio yields NaN instead of
//     log2|T/I| (the real part of the complex logarithm).
//
// Complexity: O(U²·Nt) for the response table, O(U²) for everything else.

package sic

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/sicrate/channel"
	"github.com/katalvlaran/sicrate/matrix"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// noisePower is the receiver noise power all channel gains are normalized to.
const noisePower = 1.0

// recurrence selects how the interference term is derived.
type recurrence int

const (
	// direct re-derives I[i,j] from T[i,j].
	direct recurrence = iota
	// incremental updates I[i,j] from I[i,j-1].
	incremental
)

func (r recurrence) String() string {
	if r == incremental {
		return "incremental"
	}

	return "direct"
}

// Evaluate computes the layer metrics with the implicit identity order: layer
// j is precoder column j and user j's own layer, so user i decodes layers 0..i.
//
// Errors: ErrShapeMismatch (joined with the matrix/channel sentinel) when the
// channel is empty or not single-stream, or the precoder does not have
// tx rows and Users() columns.
func Evaluate(h channel.Tensor, p *mat.CDense, opts ...Option) (*Result, error) {
	users, err := validate(h, p)
	if err != nil {
		return nil, shapeErrorf("Evaluate", err)
	}

	return evaluate(h, p, channel.IdentityOrder(users), direct, newConfig(opts...))
}

// EvaluateOrdered computes the layer metrics for an explicit decoding order:
// stage k decodes precoder column order[k], the layer of user order[k].
//
// Errors: as Evaluate, plus ErrShapeMismatch when order is not a permutation
// of 0..Users()-1.
func EvaluateOrdered(h channel.Tensor, p *mat.CDense, order []int, opts ...Option) (*Result, error) {
	users, err := validate(h, p)
	if err != nil {
		return nil, shapeErrorf("EvaluateOrdered", err)
	}
	if err = matrix.ValidatePermutation(order, users); err != nil {
		return nil, shapeErrorf("EvaluateOrdered", err)
	}

	return evaluate(h, p, append([]int(nil), order...), incremental, newConfig(opts...))
}

// validate performs every shape check once and returns the user count.
func validate(h channel.Tensor, p *mat.CDense) (int, error) {
	users := h.Users()
	if users == 0 {
		return 0, channel.ErrTooFewUsers
	}
	if err := matrix.ValidateNotNil(p); err != nil {
		return 0, err
	}
	rx, tx := h.Dims()
	if rx != 1 {
		return 0, matrix.ErrBadShape
	}
	pr, pc := p.Dims()
	if pr != tx || pc != users {
		return 0, matrix.ErrDimensionMismatch
	}

	return users, nil
}

// evaluate runs the pipeline on validated inputs.
func evaluate(h channel.Tensor, p *mat.CDense, order []int, rec recurrence, cfg config) (*Result, error) {
	n := len(order)

	resp, err := matrix.Response(h.Slices(), p)
	if err != nil {
		return nil, shapeErrorf("evaluate", err)
	}
	gain, err := matrix.Gain(resp)
	if err != nil {
		return nil, shapeErrorf("evaluate", err)
	}
	mask, err := matrix.MaskFromOrder(order)
	if err != nil {
		return nil, shapeErrorf("evaluate", err)
	}

	res := &Result{
		Order: order,
		G:     mat.NewCDense(n, n, nil),
		U:     mat.NewDense(n, n, nil),
		R:     mat.NewVecDense(n, nil),
		T:     mat.NewDense(n, n, nil),
		I:     mat.NewDense(n, n, nil),
		MMSE:  mat.NewDense(n, n, nil),
		Rate:  mat.NewDense(n, n, nil),
		Mask:  mask,
	}

	degenerate := 0
	for i := 0; i < n; i++ {
		powerTerms(res.T, res.I, gain, order, mask, i, rec)

		for j := 0; j < n && mask.Valid(i, j); j++ {
			t, in := res.T.At(i, j), res.I.At(i, j)
			if !(t > 0) || in < 0 || math.IsInf(t, 0) || math.IsNaN(in) {
				degenerate++
			}

			mmse := in / t
			res.G.Set(i, j, cmplx.Conj(resp.At(i, order[j]))/complex(t, 0))
			res.MMSE.Set(i, j, mmse)
			res.U.Set(i, j, 1/mmse)
			res.Rate.Set(i, j, math.Log2(t/in))
		}
	}

	for _, d := range []*mat.Dense{res.U, res.T, res.I, res.MMSE, res.Rate} {
		if err = matrix.ApplyNaN(d, mask); err != nil {
			return nil, shapeErrorf("evaluate", err)
		}
	}
	if err = matrix.ApplyNaNC(res.G, mask); err != nil {
		return nil, shapeErrorf("evaluate", err)
	}

	for j := 0; j < n; j++ {
		// stage j is always decoded by its owner, so ok is true for permutations
		v, ok := matrix.ColumnMin(res.Rate, mask, j)
		if !ok {
			v = math.NaN()
		}
		res.R.SetVec(j, v)
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"users":      n,
		"recurrence": rec.String(),
	})
	if degenerate > 0 {
		log.WithField("cells", degenerate).Warn("degenerate power terms; check precoder power constraints")
	}
	log.WithField("sum_rate", res.SumRate()).Debug("layer metrics evaluated")

	return res, nil
}

// powerTerms fills row i of T and I over the valid prefix of the row.
func powerTerms(t, in, gain *mat.Dense, order []int, mask matrix.Mask, i int, rec recurrence) {
	n := len(order)

	total := noisePower
	for l := 0; l < n; l++ {
		total += gain.At(i, l)
	}
	t.Set(i, 0, total)
	in.Set(i, 0, total-gain.At(i, order[0]))

	for j := 1; j < n && mask.Valid(i, j); j++ {
		// perfect SIC removes the layer decoded at the previous stage
		t.Set(i, j, t.At(i, j-1)-gain.At(i, order[j-1]))
		switch rec {
		case incremental:
			in.Set(i, j, in.At(i, j-1)-gain.At(i, order[j]))
		default:
			in.Set(i, j, t.At(i, j)-gain.At(i, order[j]))
		}
	}
}
