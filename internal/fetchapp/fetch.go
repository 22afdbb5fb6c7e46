// internal/fetchapp/fetch.go
package fetchapp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"msadata/internal/fetchcli"

	"msadata-core/dbcatalog"
)

// SelectJackhmmer resolves the jackhmmer-family names to download: the
// explicit list when given, otherwise the default set; the RNA databases
// are appended when requested.
func SelectJackhmmer(opts fetchcli.Options) []string {
	dbs := baseJackhmmer(opts)
	if opts.DownloadRNADBs {
		dbs = append(dbs, dbcatalog.RNADatabases...)
	}
	return dbs
}

func baseJackhmmer(opts fetchcli.Options) []string {
	if opts.JackhmmerDBs != nil {
		return append([]string{}, opts.JackhmmerDBs...)
	}
	return append([]string{}, dbcatalog.JackhmmerDatabases...)
}

// SelectHHblits resolves the hhblits-family names. An explicit list wins
// outright and the bfd/cfdb booleans are ignored entirely.
func SelectHHblits(opts fetchcli.Options) []string {
	if opts.HHblitsDBs != nil {
		return append([]string{}, opts.HHblitsDBs...)
	}
	dbs := append([]string{}, dbcatalog.HHblitsDatabases...)
	if opts.DownloadBFD {
		dbs = append(dbs, dbcatalog.BFDDatabase)
	}
	if opts.DownloadCFDB {
		dbs = append(dbs, dbcatalog.CFDBDatabase)
	}
	return dbs
}

// Download fetches and unpacks the selected databases, one at a time. The
// first failed subprocess aborts the rest of the queue.
func (a *App) Download(ctx context.Context, opts fetchcli.Options) error {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return err
	}

	jackhmmerDBs := baseJackhmmer(opts)
	a.logf("Jackhmmer databases to process: %v", jackhmmerDBs)
	if opts.DownloadRNADBs {
		a.logf("Including RNA databases: %v", dbcatalog.RNADatabases)
		jackhmmerDBs = append(jackhmmerDBs, dbcatalog.RNADatabases...)
	}
	for _, db := range jackhmmerDBs {
		if err := a.fetchFasta(ctx, opts.OutputDir, db); err != nil {
			return err
		}
	}

	hhblitsDBs := SelectHHblits(opts)
	a.logf("HHblits databases to process: %v", hhblitsDBs)
	for _, db := range hhblitsDBs {
		if err := a.fetchTarball(ctx, opts.OutputDir, db); err != nil {
			return err
		}
	}
	return nil
}

// fetchFasta downloads <db>.fasta.gz and decompresses it in place. The
// unzipped sibling existing means a prior run already finished this one.
func (a *App) fetchFasta(ctx context.Context, outDir, db string) error {
	archive := filepath.Join(outDir, db, db+".fasta.gz")
	if _, err := os.Stat(strings.TrimSuffix(archive, ".gz")); err == nil {
		a.logf("%s exists, skipping", db)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(archive), 0755); err != nil {
		return err
	}
	a.logf("Downloading %s...", db)
	if err := a.S3.Copy(ctx, Bucket, fmt.Sprintf("%s/%s.fasta.gz", Prefix, db), archive); err != nil {
		return err
	}
	a.logf("Unzipping %s...", db)
	return a.Shell.Run(ctx, "gunzip", archive)
}

// fetchTarball downloads <db>.tar.gz, extracts it next to the per-database
// directory and removes the archive. The skip check is directory existence
// only, so a directory left by an interrupted extraction also skips.
func (a *App) fetchTarball(ctx context.Context, outDir, db string) error {
	dir := filepath.Join(outDir, db)
	archive := filepath.Join(dir, db+".tar.gz")
	if _, err := os.Stat(dir); err == nil {
		a.logf("%s exists, skipping", db)
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	a.logf("Downloading %s...", db)
	if err := a.S3.Copy(ctx, Bucket, fmt.Sprintf("%s/%s.tar.gz", Prefix, db), archive); err != nil {
		return err
	}
	a.logf("Extracting %s...", db)
	if err := a.Shell.Run(ctx, "tar", "xzf", archive, "-C", outDir); err != nil {
		return err
	}
	// tar does not clean up after itself.
	_ = os.Remove(archive)
	return nil
}
