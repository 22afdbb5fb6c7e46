// core/msa/parse.go
package msa

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/TuftsBCB/io/msa"
	"github.com/TuftsBCB/seq"
)

type msaReader func(io.Reader) (seq.MSA, error)

var formatReaders = map[string]msaReader{
	"fasta":     msa.ReadFasta,
	"stockholm": msa.ReadStockholm,
	"a2m":       msa.Read,
	"a3m":       msa.Read,
}

// ParseDirect reads the alignments in fileList and returns them keyed by
// database name. Databases without an entry in maxSeqCounts are not parsed
// at all; the rest are truncated to their cap. A read failure on any listed
// file fails the whole chain rather than producing a partial archive.
func ParseDirect(fileList []string, maxSeqCounts map[string]int) (map[string]seq.MSA, error) {
	out := make(map[string]seq.MSA)
	for _, path := range fileList {
		db, format, ok := SplitDatabaseName(filepath.Base(path))
		if !ok {
			continue
		}
		limit, ok := maxSeqCounts[db]
		if !ok {
			continue
		}
		read := formatReaders[format]

		r, err := openReader(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		m, err := read(r)
		cerr := r.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if cerr != nil {
			return nil, fmt.Errorf("close %s: %w", path, cerr)
		}
		if len(m.Entries) > limit {
			m.Entries = m.Entries[:limit]
		}
		out[db] = m
	}
	return out, nil
}
