// internal/fetchcli/options.go
package fetchcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"msadata/internal/version"

	"msadata-core/dbcatalog"
)

// Subcommands.
const (
	CmdList     = "list"
	CmdDownload = "download"
)

// Options holds the parsed msadb invocation.
type Options struct {
	Command string

	// download flags
	OutputDir      string
	DownloadBFD    bool
	DownloadCFDB   bool
	DownloadRNADBs bool
	JackhmmerDBs   []string // nil means "use the default set"
	HHblitsDBs     []string // nil means "use the default set"

	Version bool
}

func Usage(out io.Writer, name string) {
	fmt.Fprintf(out,
		`%s: manage the alignment reference databases in the openfold S3 bucket

Version: %s

Usage:
  %s list                     list available database archives
  %s download [options]       download and unpack databases

Download options:
      --output-dir string     local database directory [./alignment_dbs]
      --download-bfd          also download the %s database
      --download-cfdb         also download the %s database
      --download-rna-dbs      also download the RNA databases (%s)
      --jackhmmer-dbs NAMES   jackhmmer databases to download (repeatable,
                              comma-separated; replaces the default set: %s)
      --hhblits-dbs NAMES     hhblits databases to download (repeatable,
                              comma-separated; replaces the default set %s
                              and ignores the --download-bfd/--download-cfdb
                              flags)

Requires the aws CLI plus tar and gunzip on PATH. No AWS credentials are
needed; the bucket is public.
`,
		name, version.Version, name, name,
		dbcatalog.BFDDatabase, dbcatalog.CFDBDatabase,
		strings.Join(dbcatalog.RNADatabases, ", "),
		strings.Join(dbcatalog.JackhmmerDatabases, ", "),
		strings.Join(dbcatalog.HHblitsDatabases, ", "))
}

// ParseArgs parses the subcommand and its flags.
func ParseArgs(argv []string) (Options, error) {
	var opt Options
	if len(argv) == 0 {
		return opt, fmt.Errorf("a subcommand is required: %s | %s", CmdList, CmdDownload)
	}

	switch argv[0] {
	case "-h", "--help", "help":
		return opt, flag.ErrHelp
	case "-v", "--version", "version":
		opt.Version = true
		return opt, nil
	case CmdList:
		if len(argv) > 1 {
			return opt, fmt.Errorf("%s takes no arguments", CmdList)
		}
		opt.Command = CmdList
		return opt, nil
	case CmdDownload:
		opt.Command = CmdDownload
		return opt, parseDownloadFlags(&opt, argv[1:])
	default:
		return opt, fmt.Errorf("unknown subcommand %q", argv[0])
	}
}

func parseDownloadFlags(opt *Options, argv []string) error {
	fs := flag.NewFlagSet("msadb download", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var jackhmmer, hhblits stringSlice
	fs.StringVar(&opt.OutputDir, "output-dir", "./alignment_dbs", "local database directory")
	fs.BoolVar(&opt.DownloadBFD, "download-bfd", false, "also download bfd")
	fs.BoolVar(&opt.DownloadCFDB, "download-cfdb", false, "also download cfdb")
	fs.BoolVar(&opt.DownloadRNADBs, "download-rna-dbs", false, "also download the RNA databases")
	fs.Var(&jackhmmer, "jackhmmer-dbs", "jackhmmer database name (repeatable)")
	fs.Var(&hhblits, "hhblits-dbs", "hhblits database name (repeatable)")

	if err := fs.Parse(argv); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	opt.JackhmmerDBs = jackhmmer
	opt.HHblitsDBs = hhblits
	return nil
}

// stringSlice allows repeatable string flags; each value may itself be a
// comma-separated list.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }

func (s *stringSlice) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}
