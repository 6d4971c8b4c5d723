// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("p", "", "")
	fs.Bool("o", false, "")
	return fs
}

func TestSplitValueFlagConsumesArg(t *testing.T) {
	flags, pos := SplitFlagsAndPositionals(newFS(), []string{"-p", "truth", "aln.fa"})
	if !reflect.DeepEqual(flags, []string{"-p", "truth"}) || !reflect.DeepEqual(pos, []string{"aln.fa"}) {
		t.Fatalf("flags=%v pos=%v", flags, pos)
	}
}

func TestSplitBoolFlagKeepsPositional(t *testing.T) {
	flags, pos := SplitFlagsAndPositionals(newFS(), []string{"-o", "aln.fa"})
	if !reflect.DeepEqual(flags, []string{"-o"}) || !reflect.DeepEqual(pos, []string{"aln.fa"}) {
		t.Fatalf("flags=%v pos=%v", flags, pos)
	}
}

func TestSplitEqualsForm(t *testing.T) {
	flags, pos := SplitFlagsAndPositionals(newFS(), []string{"--p=truth", "aln.fa"})
	if !reflect.DeepEqual(flags, []string{"--p=truth"}) || !reflect.DeepEqual(pos, []string{"aln.fa"}) {
		t.Fatalf("flags=%v pos=%v", flags, pos)
	}
}

func TestSplitDashIsPositional(t *testing.T) {
	_, pos := SplitFlagsAndPositionals(newFS(), []string{"-p", "truth", "-"})
	if !reflect.DeepEqual(pos, []string{"-"}) {
		t.Fatalf("pos=%v", pos)
	}
}

func TestSplitDoubleDashEndsFlags(t *testing.T) {
	flags, pos := SplitFlagsAndPositionals(newFS(), []string{"-p", "truth", "--", "-o"})
	if !reflect.DeepEqual(flags, []string{"-p", "truth"}) || !reflect.DeepEqual(pos, []string{"-o"}) {
		t.Fatalf("flags=%v pos=%v", flags, pos)
	}
}
