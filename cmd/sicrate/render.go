// SPDX-License-Identifier: MIT
// Package: sicrate/cmd/sicrate
//
// render.go — table and JSON output.
//
// Masked cells (stage after the user's own layer) print as "·" in tables and
// null in JSON; NaN/±Inf in valid cells print as Go formats them in tables
// and null in JSON.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/sicrate/sic"
)

// maskedCell is printed for (user, stage) pairs the user never decodes.
const maskedCell = "·"

// renderTable prints one per-cell rate table per case followed by the
// layer rates R[j].
func renderTable(w io.Writer, cases []sic.Case, results []*sic.Result) error {
	for k, res := range results {
		n := res.Users()
		if _, err := fmt.Fprintf(w, "# %s  order=%v  sum=%s bit/s/Hz\n",
			caseName(cases[k].Name, k), res.Order, num(res.SumRate())); err != nil {
			return err
		}

		rows := make([][]string, 0, n+2)
		head := []string{"user"}
		for j := 0; j < n; j++ {
			head = append(head, fmt.Sprintf("stage %d (p%d)", j, res.Order[j]))
		}
		rows = append(rows, head)
		for i := 0; i < n; i++ {
			row := []string{strconv.Itoa(i)}
			for j := 0; j < n; j++ {
				if !res.Valid(i, j) {
					row = append(row, maskedCell)
					continue
				}
				row = append(row, num(res.Rate.At(i, j)))
			}
			rows = append(rows, row)
		}
		last := []string{"R"}
		for j := 0; j < n; j++ {
			last = append(last, num(res.R.AtVec(j)))
		}
		rows = append(rows, last)

		if err := writeAligned(w, rows); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// writeAligned pads every column to its widest cell by display width.
func writeAligned(w io.Writer, rows [][]string) error {
	var widths []int
	for _, r := range rows {
		for j, cell := range r {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}
	for _, r := range rows {
		cells := make([]string, len(r))
		for j, cell := range r {
			cells[j] = runewidth.FillRight(cell, widths[j])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " │ "), " ")); err != nil {
			return err
		}
	}

	return nil
}

// num formats a rate with four decimals; NaN/Inf print as Go does.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func caseName(name string, k int) string {
	if name == "" {
		return fmt.Sprintf("case %d", k)
	}

	return name
}

// jsonComplex is a complex cell; nil stands for a masked or non-finite cell.
type jsonComplex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

type jsonCase struct {
	Name      string           `json:"name"`
	Order     []int            `json:"order"`
	Rates     []*float64       `json:"rates"`
	UserRates []*float64       `json:"user_rates"`
	SumRate   *float64         `json:"sum_rate"`
	Weights   [][]*float64     `json:"weights"`
	Equalizer [][]*jsonComplex `json:"equalizer"`
	CellRates [][]*float64     `json:"cell_rates"`
}

type jsonReport struct {
	Scenario string     `json:"scenario"`
	Cases    []jsonCase `json:"cases"`
}

// renderJSON writes the full report; masked cells become null.
func renderJSON(w io.Writer, name string, cases []sic.Case, results []*sic.Result) error {
	rep := jsonReport{Scenario: name, Cases: make([]jsonCase, len(results))}
	for k, res := range results {
		n := res.Users()
		jc := jsonCase{
			Name:      caseName(cases[k].Name, k),
			Order:     res.Order,
			Rates:     make([]*float64, n),
			UserRates: make([]*float64, n),
			SumRate:   finite(res.SumRate()),
			Weights:   make([][]*float64, n),
			Equalizer: make([][]*jsonComplex, n),
			CellRates: make([][]*float64, n),
		}
		for j := 0; j < n; j++ {
			jc.Rates[j] = finite(res.R.AtVec(j))
		}
		for u, r := range res.UserRates() {
			jc.UserRates[u] = finite(r)
		}
		for i := 0; i < n; i++ {
			jc.Weights[i] = make([]*float64, n)
			jc.Equalizer[i] = make([]*jsonComplex, n)
			jc.CellRates[i] = make([]*float64, n)
			for j := 0; j < n; j++ {
				if !res.Valid(i, j) {
					continue
				}
				jc.Weights[i][j] = finite(res.U.At(i, j))
				jc.CellRates[i][j] = finite(res.Rate.At(i, j))
				if g := res.G.At(i, j); finite(real(g)) != nil && finite(imag(g)) != nil {
					jc.Equalizer[i][j] = &jsonComplex{Re: real(g), Im: imag(g)}
				}
			}
		}
		rep.Cases[k] = jc
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// finite returns &v for finite v and nil for NaN/±Inf (not representable in JSON).
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
