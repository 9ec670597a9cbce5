package csv2pdf

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestRowField(t *testing.T) {
	t.Parallel()

	row := Row{"a", "", "c"}

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "first cell", index: 0, want: "a"},
		{name: "empty cell", index: 1, want: ""},
		{name: "last cell", index: 2, want: "c"},
		{name: "past the end", index: 3, want: ""},
		{name: "far past the end", index: 100, want: ""},
		{name: "negative index", index: -1, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := row.Field(tt.index); got != tt.want {
				t.Errorf("Field(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  RawTable
	}{
		{
			name:  "uniform rows",
			input: "h1,h2\na,b\nc,d\n",
			want:  RawTable{{"h1", "h2"}, {"a", "b"}, {"c", "d"}},
		},
		{
			name:  "ragged rows are preserved",
			input: "header\na@x.com,Math,u1,p1,s1\nb@x.com,Bio,u2\n",
			want: RawTable{
				{"header"},
				{"a@x.com", "Math", "u1", "p1", "s1"},
				{"b@x.com", "Bio", "u2"},
			},
		},
		{
			name:  "quoted cells with commas",
			input: "h\n\"a, b\",c\n",
			want:  RawTable{{"h"}, {"a, b", "c"}},
		},
		{
			name:  "empty cells stay empty strings",
			input: "h\n,,x\n",
			want:  RawTable{{"h"}, {"", "", "x"}},
		},
		{
			name:  "empty input yields empty table",
			input: "",
			want:  RawTable{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Decode() = %d rows, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("row %d has %d cells, want %d", i, len(got[i]), len(tt.want[i]))
				}
				for j := range tt.want[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("cell [%d][%d] = %q, want %q", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestDecodeShiftJISFallback(t *testing.T) {
	t.Parallel()

	// A Shift_JIS export of a header plus one Japanese data row. The raw
	// bytes are not valid UTF-8, which must trigger the fallback decode.
	utf8Input := "メール,教科書,ID,パスワード,シリアル\ntaro@example.com,数学,u1,p1,s1\n"
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(utf8Input))
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	table, err := Decode(bytes.NewReader(sjis))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("Decode() = %d rows, want 2", len(table))
	}
	if got := table[1].Field(1); got != "数学" {
		t.Errorf("cell [1][1] = %q, want %q", got, "数学")
	}
}

func TestDecodeRejectsUndecodableInput(t *testing.T) {
	t.Parallel()

	// 0xFF is invalid in UTF-8 and has no Shift_JIS mapping either, so
	// neither decode can produce clean text. The run must fail rather
	// than surface replacement characters as credential data.
	input := []byte("h\nx@x.com,\x80\xff\xff,u1,p1,s1\n")

	_, err := Decode(bytes.NewReader(input))
	if !errors.Is(err, ErrDecodeInput) {
		t.Fatalf("Decode() error = %v, want ErrDecodeInput", err)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	t.Parallel()

	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrOpenInput) {
		t.Errorf("DecodeFile() error = %v, want ErrOpenInput", err)
	}
}
