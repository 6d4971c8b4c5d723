// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"hapeval/internal/cliutil"
)

// Output formats
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
)

// Options holds all CLI flags and the positional alignment path.
type Options struct {
	TruePrefix     string
	PositionOutput bool
	AlignmentFile  string

	Output string // text|json|jsonl
	Quiet  bool

	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// Register wires all flags onto fs.
func Register(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.TruePrefix, "true_prefix", "", "header prefix of the true haplotype pair [*]")
	fs.StringVar(&o.TruePrefix, "p", "", "alias of --true_prefix")
	fs.BoolVar(&o.PositionOutput, "position_output", false, "print one line per classified column event [false]")
	fs.BoolVar(&o.PositionOutput, "o", false, "alias of --position_output")

	fs.StringVar(&o.Output, "output", OutputText, "output format: text | json | jsonl [text]")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
}

// ParseArgs registers and parses all flags and the positional alignment
// path, then validates.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	Register(fs, &opt)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if len(posArgs) > 0 {
		opt.AlignmentFile = posArgs[0]
	}

	// Validation
	if opt.TruePrefix == "" {
		return opt, errors.New("missing --true_prefix")
	}
	if opt.AlignmentFile == "" {
		return opt, errors.New("missing input alignment file path")
	}
	if len(posArgs) > 1 {
		return opt, fmt.Errorf("unexpected extra argument %q (exactly one alignment file)", posArgs[1])
	}
	switch opt.Output {
	case OutputText, OutputJSON, OutputJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
