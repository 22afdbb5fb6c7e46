// internal/preparsecli/options.go
package preparsecli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"msadata/internal/version"

	coremsa "msadata-core/msa"
)

// Options holds all CLI flags for preparse-msas. Flag names keep the
// underscore spelling of the wider pipeline's tooling.
type Options struct {
	AlignmentsDirectory     string
	AlignmentArrayDirectory string
	MaxSeqCounts            coremsa.MaxSeqCounts
	NumWorkers              int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pre-parse per-chain multiple sequence alignments into compressed arrays

Version: %s

Each subdirectory of --alignments_directory is one chain; its alignment
files are parsed with per-database sequence caps and written as
<chain_id>.npz into --alignment_array_directory.

Known max_seq_counts keys:
  %s

Usage of %s:
`, name, version.Version, strings.Join(coremsa.KnownDatabaseNames(), ", "), name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var maxSeqCounts string

	fs.StringVar(&opt.AlignmentsDirectory, "alignments_directory", "",
		"directory containing per-chain folders with multiple sequence alignments [*]")
	fs.StringVar(&opt.AlignmentArrayDirectory, "alignment_array_directory", "",
		"output directory for the per-chain MSA npz files [*]")
	fs.StringVar(&maxSeqCounts, "max_seq_counts", "",
		`JSON object of database name → max sequences to parse, e.g. '{"uniref90_hits": 10000}'; alignments without a key are not parsed [*]`)
	fs.IntVar(&opt.NumWorkers, "num_workers", 0,
		"number of parallel workers [*]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.AlignmentsDirectory == "" {
		return opt, errors.New("--alignments_directory is required")
	}
	if opt.AlignmentArrayDirectory == "" {
		return opt, errors.New("--alignment_array_directory is required")
	}
	if maxSeqCounts == "" {
		return opt, errors.New("--max_seq_counts is required")
	}
	if opt.NumWorkers < 1 {
		return opt, errors.New("--num_workers must be ≥ 1")
	}
	limits, err := coremsa.ParseMaxSeqCounts(maxSeqCounts)
	if err != nil {
		return opt, fmt.Errorf("invalid --max_seq_counts: %v", err)
	}
	opt.MaxSeqCounts = limits
	return opt, nil
}
