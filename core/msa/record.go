// core/msa/record.go
package msa

import (
	"fmt"
	"os"
	"sort"

	"github.com/TuftsBCB/seq"

	"msadata-core/npz"
)

// Record is the plain, array-shaped form of one parsed alignment: sequence
// headers plus a rectangular residue matrix. Ragged rows (a3m insertions)
// are padded with '-' to the longest row.
type Record struct {
	Headers []string
	Rows    [][]byte
}

// NewRecord converts a parsed MSA into its serializable record.
func NewRecord(m seq.MSA) Record {
	width := 0
	for _, e := range m.Entries {
		if e.Len() > width {
			width = e.Len()
		}
	}
	rec := Record{
		Headers: make([]string, len(m.Entries)),
		Rows:    make([][]byte, len(m.Entries)),
	}
	for i, e := range m.Entries {
		rec.Headers[i] = e.Name
		row := make([]byte, width)
		for j, r := range e.Residues {
			row[j] = byte(r)
		}
		for j := e.Len(); j < width; j++ {
			row[j] = '-'
		}
		rec.Rows[i] = row
	}
	return rec
}

// WriteArchive persists the records of one chain as a compressed NumPy
// archive: for each database, a "<db>.headers" string member and a
// "<db>.msa" byte-matrix member. Databases are written in sorted order so
// the archive is byte-stable for a given input.
func WriteArchive(path string, records map[string]Record) error {
	names := make([]string, 0, len(records))
	for db := range records {
		names = append(names, db)
	}
	sort.Strings(names)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := npz.NewWriter(f)
	for _, db := range names {
		rec := records[db]
		if err := w.WriteStrings(db+".headers", rec.Headers); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := w.WriteUint8Matrix(db+".msa", rec.Rows); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
