// pkg/api/report_v1.go
package api

// HaplotypeV1 is the stable JSON schema for one test haplotype's
// accumulated counters. Keep fields, names, and types stable; add new
// fields only with ",omitempty".
type HaplotypeV1 struct {
	Haplotype   int    `json:"haplotype"` // 1 or 2
	Switches    uint64 `json:"switches"`
	FalseSNPs   uint64 `json:"false_snps"`
	FalseIndels uint64 `json:"false_indels"`
	BadCalls    uint64 `json:"bad_calls"`
}

// EventV1 is the stable schema for one per-column classification event.
type EventV1 struct {
	Kind      string `json:"kind"` // false_indel | false_snp | switch | bad_call | true_indel | indel_site_false_snp
	Haplotype int    `json:"haplotype,omitempty"`
	Position  int    `json:"position"` // 1-based alignment column
}

// ReportV1 is the stable schema for a whole evaluation run.
type ReportV1 struct {
	TruePrefix string        `json:"true_prefix"`
	Width      int           `json:"alignment_width"`
	Haplotypes []HaplotypeV1 `json:"haplotypes"`
	Events     []EventV1     `json:"events,omitempty"`
}
