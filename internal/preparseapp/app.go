// internal/preparseapp/app.go
package preparseapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"msadata/internal/preparsecli"
	"msadata/internal/progress"
	"msadata/internal/version"

	coremsa "msadata-core/msa"
)

// RunContext is the preparse-msas entrypoint. Per-chain failures are logged
// and do not fail the run: a missing <chain>.npz in the output directory is
// the only signal that a chain went wrong.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := preparsecli.NewFlagSet("preparse-msas")
	fs.SetOutput(io.Discard)

	opts, err := preparsecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "preparse-msas version %s\n", version.Version)
		return 0
	}
	for _, dir := range []string{opts.AlignmentsDirectory, opts.AlignmentArrayDirectory} {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			fmt.Fprintf(stderr, "error: %s is not an existing directory\n", dir)
			return 2
		}
	}

	chains, err := listChains(opts.AlignmentsDirectory)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	caps := opts.MaxSeqCounts.Map()
	prog := progress.New(stderr, len(chains))

	jobs := make(chan string)
	var wg sync.WaitGroup
	wg.Add(opts.NumWorkers)
	for w := 0; w < opts.NumWorkers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case chain, ok := <-jobs:
					if !ok {
						return
					}
					prog.JobDone(preparseChain(
						opts.AlignmentsDirectory, opts.AlignmentArrayDirectory, caps, chain))
				}
			}
		}()
	}

feed:
	for _, chain := range chains {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- chain:
		}
	}
	close(jobs)
	wg.Wait()
	prog.Close()

	if ctx.Err() != nil {
		return 130
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// listChains enumerates the immediate subdirectories of the alignments
// directory; each name is one chain identifier.
func listChains(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list chains in %s: %w", dir, err)
	}
	var chains []string
	for _, e := range entries {
		if e.IsDir() {
			chains = append(chains, e.Name())
		}
	}
	return chains, nil
}

// preparseChain processes one chain directory to completion: resolve the
// alignment files, parse with caps applied, write one npz archive. The
// recover keeps a panicking chain from taking down its worker slot.
func preparseChain(alignDir, arrayDir string, caps map[string]int, chain string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chain %s: panic: %v", chain, r)
		}
	}()

	files, err := coremsa.StandardizeFilepaths(filepath.Join(alignDir, chain))
	if err != nil {
		return fmt.Errorf("chain %s: %w", chain, err)
	}
	msas, err := coremsa.ParseDirect(files, caps)
	if err != nil {
		return fmt.Errorf("chain %s: %w", chain, err)
	}

	records := make(map[string]coremsa.Record, len(msas))
	for db, m := range msas {
		records[db] = coremsa.NewRecord(m)
	}
	if err := coremsa.WriteArchive(filepath.Join(arrayDir, chain+".npz"), records); err != nil {
		return fmt.Errorf("chain %s: %w", chain, err)
	}
	return nil
}
