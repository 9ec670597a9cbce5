package csv2pdf

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Row is one line of the input table. Cells are untyped text.
type Row []string

// Field returns the cell at index i, or the empty string when the row is
// shorter. Later stages never need to bounds-check.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// RawTable is the decoded input: an ordered sequence of rows of possibly
// different lengths. It is immutable after decoding.
type RawTable []Row

// DecodeFile reads and decodes the tabular input at path.
// An unreadable file returns ErrOpenInput; an undecodable one returns
// ErrDecodeInput. Both are fatal for the whole run.
func DecodeFile(path string) (RawTable, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a tabular input stream. The bytes are interpreted as
// UTF-8; if they are not valid UTF-8, a Shift_JIS decode is attempted
// before parsing. Rows may have different widths and cells are never
// type-coerced.
func Decode(r io.Reader) (RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}

	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeInput, err)
		}
		// The Shift_JIS decoder substitutes U+FFFD for invalid bytes
		// instead of failing; a replacement character here means the
		// input decodes under neither encoding.
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			return nil, fmt.Errorf("%w: input is valid neither as UTF-8 nor as Shift_JIS", ErrDecodeInput)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows may be ragged
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeInput, err)
	}

	table := make(RawTable, len(records))
	for i, rec := range records {
		table[i] = Row(rec)
	}
	return table, nil
}
