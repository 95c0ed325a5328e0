package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sicrate/scenario"
)

var mixed = filepath.Join("testdata", "mixed.yaml")

// TestRun_Table renders every case and checks headers, masks and R rows.
func TestRun_Table(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-scenario", mixed, "-log-level", "info"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "# orthogonal  order=[0 1]  sum=1.0000 bit/s/Hz")
	assert.Contains(t, out, "# reversed  order=[1 0]  sum=1.0000 bit/s/Hz")
	assert.Contains(t, out, "# two-antenna  order=[0 1]  sum=1.0000 bit/s/Hz")
	assert.Contains(t, out, "user │ stage 0 (p0) │ stage 1 (p1)")
	assert.Contains(t, out, "user │ stage 0 (p1) │ stage 1 (p0)")
	assert.Contains(t, out, "R    │ 1.0000       │ 0.0000")
	assert.Contains(t, out, "R    │ 0.0000       │ 1.0000")
	// strongest antenna of user 0 has |h|² = 4 ⇒ log2(5)
	assert.Contains(t, out, "0    │ 2.3219")
	assert.Contains(t, out, maskedCell)

	logs := stderr.String()
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "scenario loaded")
}

// TestRun_JSON decodes the report and checks masked cells are null.
func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-scenario", mixed, "-format", "json", "-concurrency", "2"}, &stdout, &stderr)
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))
	assert.Equal(t, "mixed", rep.Scenario)
	require.Len(t, rep.Cases, 3)

	rev := rep.Cases[1]
	assert.Equal(t, "reversed", rev.Name)
	assert.Equal(t, []int{1, 0}, rev.Order)
	require.NotNil(t, rev.Rates[0])
	require.NotNil(t, rev.Rates[1])
	assert.InDelta(t, 0.0, *rev.Rates[0], 1e-12)
	assert.InDelta(t, 1.0, *rev.Rates[1], 1e-12)
	// user 0's layer is decoded second, user 1's first
	assert.InDelta(t, 1.0, *rev.UserRates[0], 1e-12)
	assert.InDelta(t, 0.0, *rev.UserRates[1], 1e-12)
	// user 1 stops after stage 0
	assert.Nil(t, rev.Weights[1][1])
	assert.Nil(t, rev.Equalizer[1][1])
	assert.Nil(t, rev.CellRates[1][1])
	require.NotNil(t, rev.Equalizer[1][0])
	// g = conj(h₁·p₁)/T = 1/2
	assert.InDelta(t, 0.5, rev.Equalizer[1][0].Re, 1e-12)
	assert.InDelta(t, 0.0, rev.Equalizer[1][0].Im, 1e-12)
}

// TestRun_EnvDefault picks the output format from the environment.
func TestRun_EnvDefault(t *testing.T) {
	t.Setenv(envFormat, formatJSON)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-scenario", mixed}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(stdout.String()), "{"))
}

// TestRun_Errors covers usage errors, bad levels and bad scenarios.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	usage := [][]string{
		{},
		{"-scenario", mixed, "-format", "xml"},
		{"-scenario", mixed, "-concurrency", "0"},
		{"-bogus"},
	}
	for _, args := range usage {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), args, &stdout, &stderr)
		require.ErrorIs(t, err, errUsage, "args %v", args)
		assert.Empty(t, stdout.String())
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-scenario", mixed, "-log-level", "loud"}, &stdout, &stderr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"-scenario", filepath.Join("testdata", "bad.yaml")}, &stdout, &stderr)
	require.ErrorIs(t, err, scenario.ErrBadEntry)

	err = run(context.Background(), []string{"-scenario", filepath.Join("testdata", "missing.yaml")}, &stdout, &stderr)
	require.Error(t, err)
}

// TestRun_Cancelled stops before any case is evaluated.
func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-scenario", mixed}, &stdout, &stderr)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}
