// core/msa/record_test.go
package msa

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/TuftsBCB/seq"
)

func residues(s string) []seq.Residue {
	rs := make([]seq.Residue, len(s))
	for i := range s {
		rs[i] = seq.Residue(s[i])
	}
	return rs
}

func TestNewRecordPadsRaggedRows(t *testing.T) {
	m := seq.MSA{Entries: []seq.Sequence{
		{Name: "s1", Residues: residues("ACGTAC")},
		{Name: "s2", Residues: residues("ACG")},
	}}
	rec := NewRecord(m)
	if len(rec.Headers) != 2 || rec.Headers[0] != "s1" || rec.Headers[1] != "s2" {
		t.Fatalf("headers: %v", rec.Headers)
	}
	if string(rec.Rows[0]) != "ACGTAC" {
		t.Fatalf("row 0: %q", rec.Rows[0])
	}
	if string(rec.Rows[1]) != "ACG---" {
		t.Fatalf("row 1 not padded: %q", rec.Rows[1])
	}
}

func TestNewRecordEmpty(t *testing.T) {
	rec := NewRecord(seq.MSA{})
	if len(rec.Headers) != 0 || len(rec.Rows) != 0 {
		t.Fatalf("want empty record, got %+v", rec)
	}
}

func TestWriteArchiveMembers(t *testing.T) {
	m := seq.MSA{Entries: []seq.Sequence{
		{Name: "s1", Residues: residues("ACGT")},
		{Name: "s2", Residues: residues("AC-T")},
	}}
	path := filepath.Join(t.TempDir(), "1abcA.npz")
	recs := map[string]Record{
		"uniref90_hits": NewRecord(m),
		"bfd_hits":      NewRecord(m),
	}
	if err := WriteArchive(path, recs); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	want := []string{
		"bfd_hits.headers.npy", "bfd_hits.msa.npy",
		"uniref90_hits.headers.npy", "uniref90_hits.msa.npy",
	}
	if len(names) != len(want) {
		t.Fatalf("members: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("member %d = %q, want %q (all: %v)", i, names[i], want[i], names)
		}
	}
}
