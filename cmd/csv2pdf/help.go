package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2pdf <input.csv> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one license-information PDF per account from a CSV export.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    CSV file (optional if config has input.path)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>    Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -w, --width <n>       Columns per credential group: 3 or 4 (default: 4)")
	fmt.Fprintln(w, "      --font <path>     TrueType font file for label/CJK text")
	fmt.Fprintln(w, "      --date <s>        Issue date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                        Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                        Presets (case-insensitive): stamp, iso, european, us")
	fmt.Fprintln(w, "  -q, --quiet           Suppress per-account progress")
	fmt.Fprintln(w, "  -v, --verbose         Verbose output")
	fmt.Fprintln(w, "      --version         Print version and exit")
	fmt.Fprintln(w, "  -h, --help            Show this help")
}
