// internal/output/events.go
package output

import (
	"fmt"

	"hapeval-core/eval"
)

// FormatEvent renders one classification event as a single sentence
// with its 1-based alignment position.
func FormatEvent(ev eval.Event) string {
	switch ev.Kind {
	case eval.KindFalseIndel:
		return fmt.Sprintf("False indel at position %d", ev.Pos)
	case eval.KindFalseSNP:
		return fmt.Sprintf("False SNP at position %d", ev.Pos)
	case eval.KindSwitch:
		return fmt.Sprintf("Test haplotype %d switches at position %d", ev.Hap, ev.Pos)
	case eval.KindBadCall:
		return fmt.Sprintf("Test haplotype %d doesn't match either true haplotype at position %d", ev.Hap, ev.Pos)
	case eval.KindTrueIndel:
		return fmt.Sprintf("True indel at position %d", ev.Pos)
	case eval.KindIndelFalseSNP:
		return fmt.Sprintf("False SNP due to test haplotype %d at position %d", ev.Hap, ev.Pos)
	}
	return fmt.Sprintf("Unclassified event at position %d", ev.Pos)
}

// KindString is the stable wire name of an event kind.
func KindString(k eval.Kind) string {
	switch k {
	case eval.KindFalseIndel:
		return "false_indel"
	case eval.KindFalseSNP:
		return "false_snp"
	case eval.KindSwitch:
		return "switch"
	case eval.KindBadCall:
		return "bad_call"
	case eval.KindTrueIndel:
		return "true_indel"
	case eval.KindIndelFalseSNP:
		return "indel_site_false_snp"
	}
	return "unknown"
}
