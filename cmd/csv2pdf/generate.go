package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	csv2pdf "github.com/alnah/go-csv2pdf"
	"github.com/alnah/go-csv2pdf/internal/config"
	"github.com/alnah/go-csv2pdf/internal/dateutil"
	"github.com/alnah/go-csv2pdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrInputNotFound    = errors.New("input file not found")
	ErrInvalidExtension = errors.New("input must have a .csv extension")
)

// runGenerate loads configuration, builds the service, and runs the batch.
func runGenerate(positional []string, flags *genFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	inputPath := cfg.Input.Path
	if len(positional) > 0 {
		inputPath = positional[0]
	}
	if inputPath == "" {
		return ErrNoInput
	}
	if !strings.EqualFold(filepath.Ext(inputPath), ".csv") {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
	}
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	outputDir := cfg.Output.Dir
	if outputDir == "" {
		outputDir = "."
	}

	width := cfg.Layout.Width
	if width == 0 {
		width = csv2pdf.GroupWidthFull
	}
	layout, err := csv2pdf.LayoutForWidth(width)
	if err != nil {
		return err
	}

	// Resolve the issue stamp once for the entire batch.
	dateValue := cfg.Header.Date
	if dateValue == "" {
		dateValue = "auto"
	}
	stamp, err := dateutil.ResolveDate(dateValue, env.Now())
	if err != nil {
		return err
	}

	diag := io.Discard
	if flags.verbose {
		diag = env.Stderr
	}

	svc := csv2pdf.New(
		csv2pdf.WithLayout(layout),
		csv2pdf.WithFontPath(cfg.Font.Path),
		csv2pdf.WithStamp(stamp),
		csv2pdf.WithDiagnostics(diag),
		csv2pdf.WithReporter(func(r csv2pdf.AccountResult) {
			printAccountResult(r, flags, env)
		}),
	)

	result, err := svc.Run(inputPath, outputDir)
	if err != nil {
		return err
	}

	if !flags.quiet {
		printSummary(result, env.Stdout)
	}
	return nil
}

// mergeFlags overlays explicitly provided CLI flags onto the config.
func mergeFlags(flags *genFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.width != 0 {
		cfg.Layout.Width = flags.width
	}
	if flags.font != "" {
		cfg.Font.Path = flags.font
	}
	if flags.date != "" {
		cfg.Header.Date = flags.date
	}
}

// printAccountResult reports one account as it is processed.
func printAccountResult(r csv2pdf.AccountResult, flags *genFlags, env *Environment) {
	if r.Err != nil {
		fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", filepath.Base(r.OutputPath), r.Err)
		return
	}
	if flags.quiet {
		return
	}
	if flags.verbose {
		fmt.Fprintf(env.Stdout, "Created %s (%d records)\n", r.OutputPath, r.Records)
	} else {
		fmt.Fprintf(env.Stdout, "Created %s\n", filepath.Base(r.OutputPath))
	}
}

// printSummary reports the final counts and output location.
func printSummary(result csv2pdf.BatchResult, w io.Writer) {
	fmt.Fprintf(w, "\n%d created, %d skipped", result.Created, result.Skipped)
	if result.Failed > 0 {
		fmt.Fprintf(w, ", %d failed", result.Failed)
	}
	fmt.Fprintf(w, "\nOutput: %s\n", result.OutputDir)
}
