// core/msa/limits.go
package msa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxSeqCounts caps the number of sequences parsed per alignment database.
// The field set is closed: unknown keys in the input JSON are rejected so a
// typo'd database name fails loudly instead of being silently ignored.
type MaxSeqCounts struct {
	// Jackhmmer databases
	UniprotHits   *int `json:"uniprot_hits"`
	Uniref90Hits  *int `json:"uniref90_hits"`
	MgnifyHits    *int `json:"mgnify_hits"`
	PdbSeqresHits *int `json:"pdb_seqres_hits"`

	// HHblits databases
	Uniref30Hits *int `json:"uniref30_hits"`
	BfdHits      *int `json:"bfd_hits"`
	CfdbHits     *int `json:"cfdb_hits"`

	// RNA databases
	RfamHits                 *int `json:"rfam_hits"`
	RnacentralHits           *int `json:"rnacentral_hits"`
	NucleotideCollectionHits *int `json:"nucleotide_collection_hits"`
}

type limitField struct {
	name string
	val  **int
}

func (c *MaxSeqCounts) fields() []limitField {
	return []limitField{
		{"uniprot_hits", &c.UniprotHits},
		{"uniref90_hits", &c.Uniref90Hits},
		{"mgnify_hits", &c.MgnifyHits},
		{"pdb_seqres_hits", &c.PdbSeqresHits},
		{"uniref30_hits", &c.Uniref30Hits},
		{"bfd_hits", &c.BfdHits},
		{"cfdb_hits", &c.CfdbHits},
		{"rfam_hits", &c.RfamHits},
		{"rnacentral_hits", &c.RnacentralHits},
		{"nucleotide_collection_hits", &c.NucleotideCollectionHits},
	}
}

// ParseMaxSeqCounts validates a user-supplied JSON object against the known
// database names. Unknown keys, non-integer values and values < 1 are all
// rejected with a descriptive error.
func ParseMaxSeqCounts(s string) (MaxSeqCounts, error) {
	var c MaxSeqCounts
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return MaxSeqCounts{}, fmt.Errorf("max_seq_counts: %v", err)
	}
	// Trailing garbage after the object is as bad as a malformed one.
	if dec.More() {
		return MaxSeqCounts{}, fmt.Errorf("max_seq_counts: trailing data after JSON object")
	}
	for _, f := range c.fields() {
		if v := *f.val; v != nil && *v < 1 {
			return MaxSeqCounts{}, fmt.Errorf("max_seq_counts: %s must be a positive integer, got %d", f.name, *v)
		}
	}
	return c, nil
}

// Map flattens the set fields into a plain database-name → cap mapping,
// dropping unset fields.
func (c *MaxSeqCounts) Map() map[string]int {
	m := make(map[string]int)
	for _, f := range c.fields() {
		if v := *f.val; v != nil {
			m[f.name] = *v
		}
	}
	return m
}

// KnownDatabaseNames returns the closed set of accepted keys, for help text.
func KnownDatabaseNames() []string {
	var c MaxSeqCounts
	var names []string
	for _, f := range c.fields() {
		names = append(names, f.name)
	}
	return names
}

// String is used in usage text.
func (c *MaxSeqCounts) String() string {
	m := c.Map()
	var parts []string
	for _, f := range c.fields() {
		if v, ok := m[f.name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", f.name, v))
		}
	}
	return strings.Join(parts, ",")
}
