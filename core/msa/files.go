// core/msa/files.go
package msa

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Alignment file formats are routed by extension. A trailing .gz is allowed
// on any of them and stripped before the lookup.
var extToFormat = map[string]string{
	"fasta": "fasta", "fa": "fasta", "fas": "fasta", "ali": "fasta",
	"sto": "stockholm",
	"a2m": "a2m",
	"a3m": "a3m",
}

// SplitDatabaseName splits an alignment filename into its database name and
// format. ok is false when the extension is not a recognized alignment
// format; such files are ignored by the pre-parser.
func SplitDatabaseName(filename string) (db, format string, ok bool) {
	base := strings.TrimSuffix(filename, ".gz")
	ext := filepath.Ext(base)
	if len(ext) < 2 {
		return "", "", false
	}
	format, ok = extToFormat[ext[1:]]
	if !ok {
		return "", "", false
	}
	return strings.TrimSuffix(base, ext), format, true
}

// StandardizeFilepaths resolves the alignment files of one chain directory:
// every regular file with a recognized alignment extension, sorted by
// database name so parse order is stable.
func StandardizeFilepaths(chainDir string) ([]string, error) {
	entries, err := os.ReadDir(chainDir)
	if err != nil {
		return nil, fmt.Errorf("resolve alignments in %s: %w", chainDir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, _, ok := SplitDatabaseName(e.Name()); !ok {
			continue
		}
		paths = append(paths, filepath.Join(chainDir, e.Name()))
	}
	sort.Slice(paths, func(i, j int) bool {
		di, _, _ := SplitDatabaseName(filepath.Base(paths[i]))
		dj, _, _ := SplitDatabaseName(filepath.Base(paths[j]))
		return di < dj
	})
	return paths, nil
}
