// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"hapeval-core/eval"
)

// WriteText prints the eight-line counter summary. The wording is
// frozen; downstream pipelines grep these lines.
func WriteText(w io.Writer, m eval.Metrics) error {
	for _, line := range []struct {
		format string
		value  uint64
	}{
		{"Haplotype switches for test haplotype 1: %d\n", m.Test[0].Switches},
		{"Haplotype switches for test haplotype 2: %d\n", m.Test[1].Switches},
		{"False SNPs in haplotype 1: %d\n", m.Test[0].FalseSNPs},
		{"False SNPs in haplotype 2: %d\n", m.Test[1].FalseSNPs},
		{"False indels in haplotype 1: %d\n", m.Test[0].FalseIndels},
		{"False indels in haplotype 2: %d\n", m.Test[1].FalseIndels},
		{"Bad base calls in haplotype 1: %d\n", m.Test[0].BadCalls},
		{"Bad base calls in haplotype 2: %d\n", m.Test[1].BadCalls},
	} {
		if _, err := fmt.Fprintf(w, line.format, line.value); err != nil {
			return err
		}
	}
	return nil
}
