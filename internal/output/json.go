// internal/output/json.go
package output

import (
	"io"

	"hapeval-core/eval"
	"hapeval/internal/jsonutil"
	"hapeval/pkg/api"
)

// ToAPIEvent converts a domain event to the stable wire schema (v1).
func ToAPIEvent(ev eval.Event) api.EventV1 {
	return api.EventV1{
		Kind:      KindString(ev.Kind),
		Haplotype: ev.Hap,
		Position:  ev.Pos,
	}
}

// ToAPIReport converts final metrics (plus any buffered events) to the
// stable wire schema (v1).
func ToAPIReport(truePrefix string, width int, m eval.Metrics, events []eval.Event) api.ReportV1 {
	r := api.ReportV1{
		TruePrefix: truePrefix,
		Width:      width,
		Haplotypes: []api.HaplotypeV1{
			{Haplotype: 1, Switches: m.Test[0].Switches, FalseSNPs: m.Test[0].FalseSNPs, FalseIndels: m.Test[0].FalseIndels, BadCalls: m.Test[0].BadCalls},
			{Haplotype: 2, Switches: m.Test[1].Switches, FalseSNPs: m.Test[1].FalseSNPs, FalseIndels: m.Test[1].FalseIndels, BadCalls: m.Test[1].BadCalls},
		},
	}
	for _, ev := range events {
		r.Events = append(r.Events, ToAPIEvent(ev))
	}
	return r
}

// WriteJSON writes one pretty-indented v1 report document.
func WriteJSON(w io.Writer, truePrefix string, width int, m eval.Metrics, events []eval.Event) error {
	return jsonutil.EncodePretty(w, ToAPIReport(truePrefix, width, m, events))
}

// WriteJSONLSummary writes the v1 report as a single trailing JSONL
// line (events have already been streamed one per line).
func WriteJSONLSummary(w io.Writer, truePrefix string, width int, m eval.Metrics) error {
	return jsonutil.EncodeLine(w, ToAPIReport(truePrefix, width, m, nil))
}
