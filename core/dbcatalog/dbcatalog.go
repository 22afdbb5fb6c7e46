// core/dbcatalog/dbcatalog.go

// Package dbcatalog is the static table of known alignment-database
// archives: which names exist, which archive family they ship as, and what
// kind of molecule they cover. Both the downloader's selection logic and the
// catalog listing are driven from here.
package dbcatalog

import "fmt"

// Archive families. Jackhmmer databases are single compressed FASTA files;
// HHblits databases are tarballs bundling a full hhsuite database.
var (
	JackhmmerDatabases = []string{"uniprot", "uniref90", "mgnify", "pdb_seqres"}
	RNADatabases       = []string{"rfam", "rnacentral", "nucleotide_collection"}
	HHblitsDatabases   = []string{"uniref30"}
)

const (
	BFDDatabase  = "bfd"
	CFDBDatabase = "cfdb"
)

// Molecule-type labels as shown in the catalog listing.
const (
	TypeProtein = "Protein"
	TypeNucleic = "DNA/RNA"
)

// KnownArchives maps archive filenames to their molecule type.
func KnownArchives() map[string]string {
	known := make(map[string]string)
	for _, db := range JackhmmerDatabases {
		known[db+".fasta.gz"] = TypeProtein
	}
	for _, db := range RNADatabases {
		known[db+".fasta.gz"] = TypeNucleic
	}
	for _, db := range append(append([]string{}, HHblitsDatabases...), BFDDatabase, CFDBDatabase) {
		known[db+".tar.gz"] = TypeProtein
	}
	return known
}

// Classify looks up an archive filename. Unknown files get an empty type.
func Classify(filename string) (moleculeType string, known bool) {
	moleculeType, known = KnownArchives()[filename]
	return moleculeType, known
}

// FormatSize renders a byte count with binary (1024-based) units and one
// decimal place. Values of a petabyte and beyond stay in PB.
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f PB", size)
}
