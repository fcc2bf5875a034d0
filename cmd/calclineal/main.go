// SPDX-License-Identifier: MIT

// Package main provides calclineal, a CLI that runs YAML worksheets of exact
// matrix algebra and root-finding tasks and prints a YAML report.
//
// Usage:
//
//	calclineal [-workers N] [-steps] [-tol 1e-6] [-max-iter 100] [-timeout 30s] [-verbose] worksheet.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/achitoo/CalculadoraLineal/internal/config"
	"github.com/achitoo/CalculadoraLineal/internal/worksheet"
)

// errTasksFailed is returned when the report holds at least one failed task.
var errTasksFailed = errors.New("some tasks failed")

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

// Run loads the configured worksheet, runs it and writes the report to out.
// Progress lines go to errOut when cfg.Verbose is set. The report is written
// even when tasks fail; the returned error then counts the failures.
func Run(ctx context.Context, cfg config.Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Worksheet == "" {
		return errors.New("worksheet path is required")
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(errOut, "", 0)
	}

	sheet, err := worksheet.Load(cfg.Worksheet)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d tasks from %s", len(sheet.Tasks), cfg.Worksheet)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	report, runErr := worksheet.Run(ctx, sheet, worksheet.Options{
		Workers: cfg.Workers,
		Steps:   cfg.Steps,
		Defaults: worksheet.Defaults{
			Tol:     cfg.Tol,
			MaxIter: cfg.MaxIter,
		},
		Logger: logger,
	})
	if err := report.Encode(out); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if n := report.Failures(); n > 0 {
		return fmt.Errorf("%w: %d of %d", errTasksFailed, n, len(report.Results))
	}
	return nil
}
