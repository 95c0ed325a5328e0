// SPDX-License-Identifier: MIT
// Package: sicrate/sic
//
// batch.go — concurrent evaluation of independent configurations, the shape
// of an outer optimization loop that scores many candidate precoders.

package sic

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sicrate/channel"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Case is one configuration to evaluate. A nil Order selects Evaluate
// (implicit identity order); otherwise EvaluateOrdered is used.
type Case struct {
	Name     string
	Channel  channel.Tensor
	Precoder *mat.CDense
	Order    []int
}

// Evaluate runs the evaluator matching the case's order.
func (c Case) Evaluate(opts ...Option) (*Result, error) {
	if c.Order == nil {
		return Evaluate(c.Channel, c.Precoder, opts...)
	}

	return EvaluateOrdered(c.Channel, c.Precoder, c.Order, opts...)
}

// EvaluateBatch evaluates every case with at most WithConcurrency cases in
// flight. Results keep the input order. The first failing case (or ctx
// cancellation) stops cases not yet started and is returned.
func EvaluateBatch(ctx context.Context, cases []Case, opts ...Option) ([]*Result, error) {
	cfg := newConfig(opts...)
	out := make([]*Result, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i := range cases {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := cases[i].Evaluate(opts...)
			if err != nil {
				return fmt.Errorf("sic.EvaluateBatch: case %d (%q): %w", i, cases[i].Name, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	cfg.logger.WithField("cases", len(cases)).Debug("batch evaluated")

	return out, nil
}
