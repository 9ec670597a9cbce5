package csv2pdf

import (
	"fmt"
	"io"
	"time"
)

// Field-group width constants.
const (
	GroupWidthCompact = 3
	GroupWidthFull    = 4
)

// Layout describes how the repeating field groups of a data row are read.
// Width is the number of columns per group; HasSerial reports whether the
// fourth slot (serial code) exists in this layout.
type Layout struct {
	Width     int
	HasSerial bool
}

// Predefined layouts. LayoutFull is the default.
var (
	LayoutCompact = Layout{Width: GroupWidthCompact}
	LayoutFull    = Layout{Width: GroupWidthFull, HasSerial: true}
)

// LayoutForWidth returns the layout for a field-group width.
// Returns ErrInvalidGroupWidth for any width other than 3 or 4.
func LayoutForWidth(width int) (Layout, error) {
	switch width {
	case GroupWidthCompact:
		return LayoutCompact, nil
	case GroupWidthFull:
		return LayoutFull, nil
	}
	return Layout{}, fmt.Errorf("%w: %d (must be 3 or 4)", ErrInvalidGroupWidth, width)
}

// CredentialRecord is one validated credential item belonging to an account.
// Name and ID are always non-empty; Password and Serial may be empty.
// Serial is populated only under LayoutFull.
type CredentialRecord struct {
	Name     string
	ID       string
	Password string
	Serial   string
}

// AccountBundle pairs an account identifier with its credential records.
// A bundle is never emitted with zero records.
type AccountBundle struct {
	Account string
	Records []CredentialRecord
}

// Labels holds the fixed document strings. Defaults are not intended to
// vary at runtime; overriding them is mainly useful in tests.
type Labels struct {
	Title        string // document heading
	Caution      string // warning line under the heading
	RecordPrefix string // prefix of each per-record sub-heading
}

// DefaultLabels returns the embedded Japanese document labels.
func DefaultLabels() Labels {
	return Labels{
		Title:        "ライセンス情報",
		Caution:      "この情報は他の人と共有しないでください",
		RecordPrefix: "教科書：",
	}
}

// AccountResult holds the outcome for a single account.
type AccountResult struct {
	Account    string
	OutputPath string
	Records    int
	Err        error
}

// BatchResult summarizes a full run.
type BatchResult struct {
	Created   int    // documents written
	Skipped   int    // data rows skipped during segmentation
	Failed    int    // accounts whose document could not be composed or written
	OutputDir string // resolved output directory
}

// StampLayout is the Go time layout of the default issue-date stamp.
const StampLayout = "2006.01.02"

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	layout   Layout
	labels   Labels
	fontPath string
	stamp    string
	now      func() time.Time
	reporter func(AccountResult)
	diag     io.Writer
}

// WithLayout sets the field-group layout. The default is LayoutFull.
func WithLayout(l Layout) Option {
	return func(s *Service) {
		s.cfg.layout = l
	}
}

// WithLabels overrides the embedded document labels.
func WithLabels(l Labels) Option {
	return func(s *Service) {
		s.cfg.labels = l
	}
}

// WithFontPath sets an explicit TrueType font file tried before the
// platform font paths.
func WithFontPath(path string) Option {
	return func(s *Service) {
		s.cfg.fontPath = path
	}
}

// WithStamp sets a fixed issue-date stamp. When empty, the stamp is
// derived from the clock at run time using StampLayout.
func WithStamp(stamp string) Option {
	return func(s *Service) {
		s.cfg.stamp = stamp
	}
}

// WithClock injects the time source used for the issue-date stamp.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("csv2pdf: WithClock time source must not be nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// WithReporter registers a callback invoked after each account is
// processed, successfully or not.
func WithReporter(fn func(AccountResult)) Option {
	return func(s *Service) {
		s.cfg.reporter = fn
	}
}

// WithDiagnostics sets the writer for font-resolution diagnostics.
// The default discards them.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Service) {
		s.cfg.diag = w
	}
}
