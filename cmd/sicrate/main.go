// SPDX-License-Identifier: MIT

// Command sicrate evaluates the SIC layer metrics of every case in a YAML
// scenario file and prints them as a table or JSON.
//
//	sicrate -scenario cases.yaml [-format table|json] [-concurrency N] [-log-level debug]
//
// Defaults for -format and -log-level may be set in .env through
// SICRATE_FORMAT and SICRATE_LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sicrate/scenario"
	"github.com/katalvlaran/sicrate/sic"
)

const (
	envFormat   = "SICRATE_FORMAT"
	envLogLevel = "SICRATE_LOG_LEVEL"

	formatTable = "table"
	formatJSON  = "json"
)

var errUsage = errors.New("usage")

func main() {
	// Load env
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "sicrate:", err)
		}
		os.Exit(1)
	}
}

// run is main without process globals, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sicrate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("scenario", "", "YAML scenario file (required)")
	format := fs.String("format", envOr(envFormat, formatTable), "output format: table or json")
	concurrency := fs.Int("concurrency", runtime.GOMAXPROCS(0), "cases evaluated in parallel")
	level := fs.String("log-level", envOr(envLogLevel, "info"), "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *path == "" || *concurrency < 1 || (*format != formatTable && *format != formatJSON) {
		fs.Usage()
		return errUsage
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	log := logger.WithField("run_id", uuid.NewString())

	s, err := scenario.Load(*path)
	if err != nil {
		return err
	}
	cases, err := s.Build()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"scenario": s.Name, "cases": len(cases)}).Info("scenario loaded")

	results, err := sic.EvaluateBatch(ctx, cases, sic.WithLogger(log), sic.WithConcurrency(*concurrency))
	if err != nil {
		return err
	}

	if *format == formatJSON {
		return renderJSON(stdout, s.Name, cases, results)
	}

	return renderTable(stdout, cases, results)
}

// envOr returns the environment value for key, or def when unset/empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
