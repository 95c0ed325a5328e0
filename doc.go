// Package sicrate scores superposition-coded downlinks decoded with
// successive interference cancellation (SIC), the building block of NOMA and
// rate-splitting transmit schemes.
//
// 🚀 What is sicrate?
//
//	Given a fixed channel, a fixed set of precoders (one per layer) and a
//	decoding order, sicrate computes for every user and every SIC stage:
//		• the scalar MMSE equalizer g the user applies to the stage's layer
//		• the MMSE weight u = 1/MMSE
//		• the per-cell rate log2(1 + SINR)
//	and, per layer, the achievable rate R: the minimum over every user that
//	has to decode that layer before reaching its own.
//
// ✨ Why sicrate?
//
//   - Deterministic – no state, no search; the same inputs give the same bits
//   - Explicit masking – cells a user never decodes are NaN and never enter R
//   - Typed errors – every boundary check returns a sentinel for errors.Is
//   - Batch-ready – score many candidate precoders concurrently
//
// Everything is organized under four packages and one command:
//
//	matrix/       — sentinel errors, validators, gain tables, validity masks
//	channel/      — channel tensors, precoders, fixtures, combining, orders
//	sic/          — the layer metrics evaluator and batch evaluation
//	scenario/     — YAML scenario files
//	cmd/sicrate/  — CLI: evaluate a scenario, print a table or JSON
//
// Quick picture (two users, user 0 decoded first):
//
//	stage:      0 (p0)   1 (p1)
//	user 0:     rate     ·
//	user 1:     rate     rate
//	R:          min      user 1
//
//	go get github.com/katalvlaran/sicrate
package sicrate
