package main

import (
	"errors"
	"os"

	csv2pdf "github.com/alnah/go-csv2pdf"
	"github.com/alnah/go-csv2pdf/internal/config"
	"github.com/alnah/go-csv2pdf/internal/dateutil"
)

// Exit codes for the csv2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, undecodable input, permission denied
	ExitPDF     = 4 // PDF engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// PDF engine errors (exit 4)
	if errors.Is(err, csv2pdf.ErrComposePDF) ||
		errors.Is(err, csv2pdf.ErrWriteDocument) {
		return ExitPDF
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, csv2pdf.ErrOpenInput) ||
		errors.Is(err, csv2pdf.ErrDecodeInput) ||
		errors.Is(err, csv2pdf.ErrNoDataRows) ||
		errors.Is(err, csv2pdf.ErrOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInputNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidWidth) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, csv2pdf.ErrInvalidGroupWidth) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}
