// core/align/partition.go
package align

import (
	"fmt"
	"strings"

	"hapeval-core/fasta"
)

// Quartet holds the four aligned haplotype sequences of one evaluation
// run: the two ground-truth haplotypes and the two reconstructed ones,
// in order of appearance in the source alignment.
type Quartet struct {
	TrueHeaders [2]string
	TestHeaders [2]string
	True        [2][]byte
	Test        [2][]byte
}

// Partition routes alignment records to true or test slots. A record is
// a true haplotype when its header contains truePrefix anywhere; the
// first two such records become true 1 and 2, the first two non-matching
// records become test 1 and 2. Any further records are ignored and their
// headers returned so the caller can warn about them.
func Partition(records []fasta.Record, truePrefix string) (Quartet, []string, error) {
	var (
		q       Quartet
		ignored []string
		nTrue   int
		nTest   int
	)
	for _, r := range records {
		if strings.Contains(r.Header, truePrefix) {
			if nTrue < 2 {
				q.TrueHeaders[nTrue] = r.Header
				q.True[nTrue] = r.Seq
				nTrue++
				continue
			}
		} else if nTest < 2 {
			q.TestHeaders[nTest] = r.Header
			q.Test[nTest] = r.Seq
			nTest++
			continue
		}
		ignored = append(ignored, r.Header)
	}
	if nTrue != 2 || nTest != 2 {
		return Quartet{}, nil, fmt.Errorf(
			"alignment must contain 2 true and 2 test haplotypes, got %d true and %d test", nTrue, nTest)
	}
	return q, ignored, nil
}

// Validate checks the quartet invariant: all four sequences share one
// alignment width. The column classifier assumes this and does not
// re-check it.
func (q Quartet) Validate() error {
	w := len(q.True[0])
	for i, s := range [][]byte{q.True[1], q.Test[0], q.Test[1]} {
		if len(s) != w {
			return fmt.Errorf("aligned sequences differ in length: %d vs %d (record %d)", w, len(s), i+2)
		}
	}
	return nil
}

// Width returns the alignment width.
func (q Quartet) Width() int { return len(q.True[0]) }
