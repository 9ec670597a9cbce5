package csv2pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-csv2pdf/internal/fileutil"
)

// File permission for written documents.
const filePermissions = 0o644 // rw-r--r--

// outputSuffix is appended to the account identifier to form the filename.
const outputSuffix = "_license_info.pdf"

// documentComposer abstracts composition so tests can inject failures.
type documentComposer interface {
	Compose(bundle AccountBundle) ([]byte, error)
}

// Compile-time interface implementation check.
var _ documentComposer = Composer{}

// Service orchestrates the decode-segment-compose pipeline over one input
// file. Processing is strictly sequential: one account is fully composed
// and written before the next begins.
type Service struct {
	cfg serviceConfig

	// newComposer is replaceable by tests; nil selects the real Composer.
	newComposer func(font FontHandle, labels Labels, stamp string) documentComposer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLayout, WithFontPath).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			layout: LayoutFull,
			labels: DefaultLabels(),
			now:    time.Now,
			diag:   io.Discard,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.newComposer == nil {
		s.newComposer = func(font FontHandle, labels Labels, stamp string) documentComposer {
			return Composer{Font: font, Labels: labels, Stamp: stamp}
		}
	}

	return s
}

// Run converts the input file into one PDF per account under outputDir.
//
// Decode failures, a missing output directory, and an input without data
// rows are fatal and produce no output. A compose or write failure for a
// single account is delivered to the reporter, counted in Failed, and
// does not stop the batch. A partially written file from a failed write
// is not cleaned up.
func (s *Service) Run(inputPath, outputDir string) (BatchResult, error) {
	result := BatchResult{OutputDir: outputDir}

	if !fileutil.DirExists(outputDir) {
		return result, fmt.Errorf("%w: %s", ErrOutputDir, outputDir)
	}

	font := ResolveFont(FontOptions{Path: s.cfg.fontPath}, s.cfg.diag)

	table, err := DecodeFile(inputPath)
	if err != nil {
		return result, err
	}
	if len(table) < 2 {
		return result, fmt.Errorf("%w: %s", ErrNoDataRows, inputPath)
	}

	bundles, skipped := Segmenter{Layout: s.cfg.layout}.Segment(table)
	result.Skipped = skipped

	stamp := s.cfg.stamp
	if stamp == "" {
		stamp = s.cfg.now().Format(StampLayout)
	}
	composer := s.newComposer(font, s.cfg.labels, stamp)

	for _, bundle := range bundles {
		filename := fileutil.SanitizeFilename(bundle.Account + outputSuffix)
		outputPath := filepath.Join(outputDir, filename)

		account := AccountResult{
			Account:    bundle.Account,
			OutputPath: outputPath,
			Records:    len(bundle.Records),
		}

		data, err := composer.Compose(bundle)
		if err == nil {
			if writeErr := os.WriteFile(outputPath, data, filePermissions); writeErr != nil {
				err = fmt.Errorf("%w: %v", ErrWriteDocument, writeErr)
			}
		}

		if err != nil {
			account.Err = err
			result.Failed++
		} else {
			result.Created++
		}

		s.report(account)
	}

	return result, nil
}

// report delivers a per-account outcome to the configured reporter.
func (s *Service) report(account AccountResult) {
	if s.cfg.reporter != nil {
		s.cfg.reporter(account)
	}
}
