// Package csv2pdf converts tabular credential exports into per-account
// license-information PDF documents.
//
// # Quick Start
//
// Create a service and run it against a CSV export:
//
//	svc := csv2pdf.New()
//	result, err := svc.Run("accounts.csv", "out/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d created, %d skipped\n", result.Created, result.Skipped)
//
// Each data row of the input describes one account: column 0 holds an
// email-like account key, and the remaining columns hold repeating
// fixed-width groups of credential fields. One PDF is written per account,
// named after the local part of the account key.
//
// # Pipeline
//
// The run proceeds through these stages:
//
//  1. Font resolution (explicit path, platform font paths, core fallback)
//  2. Tabular decoding (UTF-8 first, Shift_JIS retry on invalid input)
//  3. Record segmentation (fixed-width field groups per row)
//  4. Document composition via go-pdf/fpdf (one PDF per account)
//
// Decoding failures abort the whole run; a composition or write failure for
// a single account is reported and the batch continues.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := csv2pdf.New(
//	    csv2pdf.WithLayout(csv2pdf.LayoutCompact),
//	    csv2pdf.WithFontPath("/path/to/font.ttf"),
//	    csv2pdf.WithReporter(func(r csv2pdf.AccountResult) {
//	        fmt.Println(r.Account)
//	    }),
//	)
//
// LayoutFull (the default) reads four columns per credential group
// (name, id, password, serial); LayoutCompact reads three (no serial).
package csv2pdf
