package csv2pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-pdf/fpdf"
)

// Font family names used in composed documents.
const (
	utf8FontFamily = "JapanSans" // registered UTF-8 font for label/CJK text
	fallbackFamily = "Helvetica" // core font, always available
	labelFamily    = "Helvetica" // short English field labels
	valueFamily    = "Courier"   // identifier/password/serial values
)

// FontHandle identifies the font used for title, caution, and record
// headings. It is immutable; when a TrueType font was resolved it carries
// the font bytes for per-document registration.
type FontHandle struct {
	family string
	data   []byte
}

// Family returns the registered font family name.
func (h FontHandle) Family() string { return h.family }

// UTF8 reports whether the handle carries a registered UTF-8 font rather
// than the core fallback.
func (h FontHandle) UTF8() bool { return h.data != nil }

// registerWith adds the font to a document's font table. Registering the
// same family twice on one document is a no-op inside the engine, so the
// call is idempotent.
func (h FontHandle) registerWith(pdf *fpdf.Fpdf) {
	if h.data == nil {
		return
	}
	pdf.AddUTF8FontFromBytes(h.family, "", h.data)
}

// FontOptions configures font resolution.
type FontOptions struct {
	Path string // explicit TrueType font file, tried first (optional)
}

// ResolveFont returns a usable font handle, trying an explicit font file
// first, then platform-conventional font paths, then the core fallback.
// It never fails: each candidate that cannot be loaded or registered
// writes one diagnostic line to diag and resolution moves on.
func ResolveFont(opts FontOptions, diag io.Writer) FontHandle {
	var candidates []string
	if opts.Path != "" {
		candidates = append(candidates, opts.Path)
	}
	candidates = append(candidates, platformFontPaths()...)

	for _, path := range candidates {
		data, err := os.ReadFile(path) // #nosec G304 -- candidate list is fixed or caller-provided
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(diag, "font %s: %v\n", path, err)
			}
			continue
		}

		// Probe registration on a throwaway document so a bad font file
		// (for example a .ttc collection) is rejected here, not mid-batch.
		probe := fpdf.New("P", "mm", "A4", "")
		probe.AddUTF8FontFromBytes(utf8FontFamily, "", data)
		if probe.Err() {
			fmt.Fprintf(diag, "font %s: %v\n", path, probe.Error())
			continue
		}

		return FontHandle{family: utf8FontFamily, data: data}
	}

	fmt.Fprintf(diag, "no usable TrueType font found, falling back to %s\n", fallbackFamily)
	return FontHandle{family: fallbackFamily}
}

// platformFontPaths returns the conventional system font locations for the
// current platform. Unlisted platforms resolve straight to the fallback.
func platformFontPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
			"/System/Library/Fonts/Hiragino Sans GB.ttc",
			"/Library/Fonts/Arial Unicode.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{
			filepath.Join(windir, "Fonts", "meiryo.ttc"),
			filepath.Join(windir, "Fonts", "msgothic.ttc"),
			filepath.Join(windir, "Fonts", "YuGothM.ttc"),
			filepath.Join(windir, "Fonts", "YuGothR.ttc"),
		}
	}
	return nil
}
