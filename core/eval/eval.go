// core/eval/eval.go
package eval

import "hapeval-core/align"

// Gap is the alignment gap symbol.
const Gap = '-'

// Phase records which true haplotype a test haplotype most recently
// matched at a heterozygous SNP column. It starts unset, is mutated
// only at heterozygous SNP columns, and is never reset mid-run.
type Phase uint8

const (
	PhaseUnset Phase = iota
	PhaseTracksOne
	PhaseTracksTwo
)

// Kind classifies one per-column event.
type Kind uint8

const (
	KindFalseIndel Kind = iota // non-gap test base while the other test haplotype gaps a homozygous site
	KindFalseSNP               // test base deviating from a homozygous true base
	KindSwitch                 // phase switch at a heterozygous SNP
	KindBadCall                // test base matching neither true allele at a heterozygous SNP
	KindTrueIndel              // true haplotypes disagree and at least one is a gap
	KindIndelFalseSNP          // test base matching neither true allele at a true-indel column
)

// Event is one classification outcome at one column. Pos is 1-based.
// Hap is 1 or 2, or 0 for events not tied to a test haplotype.
type Event struct {
	Kind Kind
	Hap  int
	Pos  int
}

// Counts are the accumulated error counters for one test haplotype.
type Counts struct {
	Switches    uint64
	FalseSNPs   uint64
	FalseIndels uint64
	BadCalls    uint64
}

// Metrics holds the counters for both test haplotypes.
type Metrics struct {
	Test [2]Counts
}

// Evaluate walks the alignment left to right, classifies every column,
// and accumulates per-test-haplotype metrics. Events are reported
// through emit as they are produced; a nil emit disables the side
// channel. The quartet must be width-validated (Quartet.Validate)
// before the call.
//
// Phase state is the only information carried between columns, so the
// pass is strictly sequential; switch counting depends on column order.
func Evaluate(q align.Quartet, emit func(Event)) Metrics {
	var m Metrics
	var phase [2]Phase
	if emit == nil {
		emit = func(Event) {}
	}

	width := q.Width()
	for i := 0; i < width; i++ {
		t1, t2 := q.True[0][i], q.True[1][i]
		pos := i + 1

		if t1 == t2 {
			// Homozygous site.
			s1, s2 := q.Test[0][i], q.Test[1][i]
			switch {
			case s1 == Gap || s2 == Gap:
				// A shared gap reads as a homozygous deletion and
				// counts nothing. A lone gap charges the haplotype
				// holding the base.
				if s1 != Gap {
					m.Test[0].FalseIndels++
					emit(Event{Kind: KindFalseIndel, Hap: 1, Pos: pos})
				}
				if s2 != Gap {
					m.Test[1].FalseIndels++
					emit(Event{Kind: KindFalseIndel, Hap: 2, Pos: pos})
				}
			case s1 != s2:
				// Exactly one test haplotype deviates from the
				// homozygous true base.
				if s1 != t1 {
					m.Test[0].FalseSNPs++
					emit(Event{Kind: KindFalseSNP, Hap: 1, Pos: pos})
				} else {
					m.Test[1].FalseSNPs++
					emit(Event{Kind: KindFalseSNP, Hap: 2, Pos: pos})
				}
			}
			continue
		}

		if t1 != Gap && t2 != Gap {
			// Heterozygous SNP: phase-track each test haplotype
			// independently.
			for k := 0; k < 2; k++ {
				s := q.Test[k][i]
				switch s {
				case t1:
					if phase[k] == PhaseTracksTwo {
						m.Test[k].Switches++
						emit(Event{Kind: KindSwitch, Hap: k + 1, Pos: pos})
					}
					phase[k] = PhaseTracksOne
				case t2:
					if phase[k] == PhaseTracksOne {
						m.Test[k].Switches++
						emit(Event{Kind: KindSwitch, Hap: k + 1, Pos: pos})
					}
					phase[k] = PhaseTracksTwo
				default:
					m.Test[k].BadCalls++
					emit(Event{Kind: KindBadCall, Hap: k + 1, Pos: pos})
				}
			}
			continue
		}

		// True indel column: excluded from phase tracking. A test base
		// matching neither true allele is still a false SNP.
		emit(Event{Kind: KindTrueIndel, Pos: pos})
		for k := 0; k < 2; k++ {
			if s := q.Test[k][i]; s != t1 && s != t2 {
				m.Test[k].FalseSNPs++
				emit(Event{Kind: KindIndelFalseSNP, Hap: k + 1, Pos: pos})
			}
		}
	}
	return m
}
