package main

import (
	flag "github.com/spf13/pflag"
)

// genFlags holds the parsed command line.
type genFlags struct {
	config  string
	output  string
	width   int
	font    string
	date    string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// parseFlags parses args (including the program name at index 0) and
// returns the flags plus remaining positional arguments.
func parseFlags(args []string) (*genFlags, []string, error) {
	fs := flag.NewFlagSet("csv2pdf", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // usage is printed by the caller

	f := &genFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.width, "width", "w", 0, "columns per credential group (3 or 4)")
	fs.StringVar(&f.font, "font", "", "TrueType font file for label/CJK text")
	fs.StringVar(&f.date, "date", "", `issue date: "auto", "auto:FORMAT", or literal`)
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress per-account progress")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
