// SPDX-License-Identifier: MIT
// Package: sicrate/scenario
//
// scenario.go — YAML scenario documents.
//
// A scenario is a list of cases; each case is either explicit (channel rows
// and precoder written out) or generated (seeded Rayleigh channel with a
// maximum-ratio precoder). Unknown keys are rejected.

package scenario

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/sicrate/channel"
	"github.com/katalvlaran/sicrate/sic"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Scenario is the top-level document.
type Scenario struct {
	Name  string     `yaml:"name"`
	Cases []CaseSpec `yaml:"cases"`
}

// CaseSpec describes one configuration.
type CaseSpec struct {
	Name string `yaml:"name"`

	// Channel holds one matrix per user (rows = receive antennas).
	Channel  [][][]Complex `yaml:"channel,omitempty"`
	// Precoder is tx rows × users columns.
	Precoder [][]Complex   `yaml:"precoder,omitempty"`
	// Order is optional; empty selects the implicit identity order.
	Order    []int         `yaml:"order,omitempty"`
	// Combine reduces multi-antenna users: "" (none) or "strongest".
	Combine  string        `yaml:"combine,omitempty"`

	// Generate replaces Channel/Precoder with a seeded draw.
	Generate *Generate `yaml:"generate,omitempty"`
}

// Generate is a seeded Rayleigh + maximum-ratio case. Powers defaults to 1
// per user and PathGains to unit gain.
type Generate struct {
	Users       int       `yaml:"users"`
	Tx          int       `yaml:"tx"`
	Seed        int64     `yaml:"seed"`
	Powers      []float64 `yaml:"powers,omitempty"`
	PathGains   []float64 `yaml:"path_gains,omitempty"`
	OrderByGain bool      `yaml:"order_by_gain,omitempty"`
}

// combineStrongest is the only supported Combine mode.
const combineStrongest = "strongest"

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scenarioErrorf("Load", err)
	}

	return Parse(data)
}

// Parse decodes a scenario document. Unknown fields are errors.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, scenarioErrorf("Parse", ErrEmptyScenario)
		}
		return nil, scenarioErrorf("Parse", err)
	}
	if len(s.Cases) == 0 {
		return nil, scenarioErrorf("Parse", ErrEmptyScenario)
	}

	return &s, nil
}

// Build converts every case, stopping at the first error.
func (s *Scenario) Build() ([]sic.Case, error) {
	out := make([]sic.Case, len(s.Cases))
	for i := range s.Cases {
		c, err := s.Cases[i].Build()
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// Build turns the case description into an evaluator case.
func (c CaseSpec) Build() (sic.Case, error) {
	if c.Generate != nil {
		if len(c.Channel) > 0 || len(c.Precoder) > 0 || c.Combine != "" {
			// generate and explicit matrices are mutually exclusive
			return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", ErrBadEntry)
		}
		return c.generate()
	}
	if len(c.Channel) == 0 || len(c.Precoder) == 0 {
		return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", ErrBadEntry)
	}

	slices := make([]*mat.CDense, len(c.Channel))
	for u, rows := range c.Channel {
		m, err := dense(rows)
		if err != nil {
			return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", err)
		}
		slices[u] = m
	}
	h, err := channel.NewTensor(slices...)
	if err != nil {
		return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", err)
	}

	switch c.Combine {
	case "":
	case combineStrongest:
		if h, err = channel.SelectStrongest(h); err != nil {
			return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", err)
		}
	default:
		return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", ErrBadEntry)
	}

	p, err := dense(c.Precoder)
	if err != nil {
		return sic.Case{}, scenarioErrorf("CaseSpec.Build("+c.Name+")", err)
	}

	return sic.Case{Name: c.Name, Channel: h, Precoder: p, Order: order(c.Order)}, nil
}

// generate draws the seeded Rayleigh/maximum-ratio case.
func (c CaseSpec) generate() (sic.Case, error) {
	g := c.Generate
	opts := []channel.Option{channel.WithSeed(g.Seed)}
	if len(g.PathGains) > 0 {
		for _, v := range g.PathGains {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return sic.Case{}, scenarioErrorf("CaseSpec.generate("+c.Name+")", channel.ErrBadPower)
			}
		}
		opts = append(opts, channel.WithPathGains(g.PathGains...))
	}
	h, err := channel.Rayleigh(g.Users, 1, g.Tx, opts...)
	if err != nil {
		return sic.Case{}, scenarioErrorf("CaseSpec.generate("+c.Name+")", err)
	}

	powers := g.Powers
	if len(powers) == 0 {
		powers = make([]float64, g.Users)
		for i := range powers {
			powers[i] = 1
		}
	}
	p, err := channel.MaximumRatio(h, powers)
	if err != nil {
		return sic.Case{}, scenarioErrorf("CaseSpec.generate("+c.Name+")", err)
	}

	ord := order(c.Order)
	if g.OrderByGain {
		ord = channel.OrderByGain(h)
	}

	return sic.Case{Name: c.Name, Channel: h, Precoder: p, Order: ord}, nil
}

// dense converts a non-ragged row list into a CDense.
func dense(rows [][]Complex) (*mat.CDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadEntry
	}
	cols := len(rows[0])
	m := mat.NewCDense(len(rows), cols, nil)
	for i, r := range rows {
		if len(r) != cols {
			return nil, ErrBadEntry
		}
		for j, v := range r {
			m.Set(i, j, complex128(v))
		}
	}

	return m, nil
}

// order maps an empty YAML list to nil (implicit order).
func order(o []int) []int {
	if len(o) == 0 {
		return nil
	}

	return append([]int(nil), o...)
}
