// internal/fetchapp/app.go
package fetchapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"msadata/internal/fetchcli"
	"msadata/internal/s3util"
	"msadata/internal/shellutil"
	"msadata/internal/version"
)

// Remote location of the reference database archives.
const (
	Bucket = "openfold"
	Prefix = "alignment_databases"
)

// App bundles the downloader's collaborators so tests can substitute the
// shell transport.
type App struct {
	S3     s3util.Client
	Shell  shellutil.Runner
	Stdout io.Writer
	Stderr io.Writer
}

// RunContext is the msadb entrypoint. Unlike the pre-parser, any subprocess
// failure is fatal and aborts the remaining queue.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	opts, err := fetchcli.ParseArgs(argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fetchcli.Usage(stdout, "msadb")
			return 0
		}
		fmt.Fprintln(stderr, err)
		fetchcli.Usage(stderr, "msadb")
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "msadb version %s\n", version.Version)
		return 0
	}

	runner := shellutil.ExecRunner{Console: stderr}
	app := &App{
		S3:     s3util.Client{Run: runner},
		Shell:  runner,
		Stdout: stdout,
		Stderr: stderr,
	}

	switch opts.Command {
	case fetchcli.CmdList:
		err = app.List(ctx)
	case fetchcli.CmdDownload:
		err = app.Download(ctx, opts)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func (a *App) logf(format string, args ...any) {
	fmt.Fprintf(a.Stderr, format+"\n", args...)
}
