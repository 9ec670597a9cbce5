package csv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrOpenInput   = errors.New("failed to open input file")
	ErrDecodeInput = errors.New("input is not decodable as UTF-8 or Shift_JIS")
	ErrNoDataRows  = errors.New("input has no data rows")
	ErrOutputDir   = errors.New("output directory not found")

	ErrComposePDF    = errors.New("PDF composition failed")
	ErrWriteDocument = errors.New("failed to write PDF file")

	// Layout validation errors.
	ErrInvalidGroupWidth = errors.New("invalid field-group width")
)
