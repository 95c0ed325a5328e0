// Package matrix offers the small complex-valued kernels and validity masks
// that the SIC evaluator is built on.
//
// The matrix package provides:
//
//   - Sentinel errors and centralized boundary validators for gonum
//     *mat.CDense operands (nil, row-vector, product and permutation checks).
//   - Response / Gain tables: every user-by-layer received amplitude h_i·p_l
//     and power |h_i·p_l|² computed once per evaluation.
//   - Mask, an explicit validity grid with NaN export helpers and a
//     NaN-aware column minimum that skips masked cells.
//
// Storage is delegated to gonum.org/v1/gonum/mat; this package never keeps
// its own dense buffers.
package matrix
