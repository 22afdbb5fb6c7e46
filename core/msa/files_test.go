// core/msa/files_test.go
package msa

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitDatabaseName(t *testing.T) {
	cases := []struct {
		in     string
		db     string
		format string
		ok     bool
	}{
		{"uniref90_hits.fasta", "uniref90_hits", "fasta", true},
		{"uniref90_hits.fasta.gz", "uniref90_hits", "fasta", true},
		{"bfd_hits.a3m", "bfd_hits", "a3m", true},
		{"pdb_seqres_hits.sto", "pdb_seqres_hits", "stockholm", true},
		{"rfam_hits.ali", "rfam_hits", "fasta", true},
		{"notes.txt", "", "", false},
		{"README", "", "", false},
		{".gz", "", "", false},
	}
	for _, tc := range cases {
		db, format, ok := SplitDatabaseName(tc.in)
		if db != tc.db || format != tc.format || ok != tc.ok {
			t.Errorf("SplitDatabaseName(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.in, db, format, ok, tc.db, tc.format, tc.ok)
		}
	}
}

func TestStandardizeFilepaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"uniref90_hits.sto", "bfd_hits.a3m.gz", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.fasta"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := StandardizeFilepaths(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("want 2 alignment files, got %v", paths)
	}
	// Sorted by database name: bfd_hits before uniref90_hits.
	if filepath.Base(paths[0]) != "bfd_hits.a3m.gz" || filepath.Base(paths[1]) != "uniref90_hits.sto" {
		t.Fatalf("wrong order: %v", paths)
	}
}

func TestStandardizeFilepathsMissingDir(t *testing.T) {
	if _, err := StandardizeFilepaths(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
