// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"hapeval-core/align"
	"hapeval-core/eval"
	"hapeval-core/fasta"
	"hapeval/internal/cli"
	"hapeval/internal/cmdutil"
	"hapeval/internal/output"
	"hapeval/internal/version"
	"hapeval/internal/writers"
)

// Exit codes. Argument, input, and alignment failures stay distinct so
// batch callers can tell them apart.
const (
	ExitOK           = 0
	ExitUsage        = 2
	ExitWriteError   = 3
	ExitOpenError    = 5
	ExitReadError    = 6
	ExitBadAlignment = 7
	ExitCanceled     = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hapeval")
	cli.InstallUsage(fs, "hapeval")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hapeval version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	rc, err := fasta.Open(opts.AlignmentFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOpenError
	}
	records, err := fasta.ReadAll(ctx, rc)
	_ = rc.Close()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		_, _ = fmt.Fprintln(stderr, err)
		return ExitReadError
	}

	q, ignored, err := align.Partition(records, opts.TruePrefix)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitBadAlignment
	}
	for _, h := range ignored {
		cmdutil.Warnf(stderr, opts.Quiet, "ignoring extra record %q", h)
	}
	if err := q.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitBadAlignment
	}

	// Position events go through a writer goroutine (text/jsonl) so they
	// appear as encountered; json buffers them into the final document.
	var (
		emit     func(eval.Event)
		events   chan<- eval.Event
		writeErr <-chan error
		buffered []eval.Event
	)
	if opts.PositionOutput {
		switch opts.Output {
		case cli.OutputJSON:
			emit = func(ev eval.Event) { buffered = append(buffered, ev) }
		case cli.OutputJSONL:
			events, writeErr = writers.StartEventJSONLWriter(outw, 64)
		default:
			events, writeErr = writers.StartEventTextWriter(outw, 64)
		}
		if events != nil {
			ch := events
			emit = func(ev eval.Event) {
				select {
				case ch <- ev:
				case <-ctx.Done():
				}
			}
		}
	}

	m := eval.Evaluate(q, emit)

	if events != nil {
		close(events)
		if werr := <-writeErr; writers.IsBrokenPipe(werr) {
			return ExitOK
		} else if werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return ExitWriteError
		}
	}
	if ctx.Err() != nil {
		return ExitCanceled
	}

	switch opts.Output {
	case cli.OutputJSON:
		err = output.WriteJSON(outw, opts.TruePrefix, q.Width(), m, buffered)
	case cli.OutputJSONL:
		err = output.WriteJSONLSummary(outw, opts.TruePrefix, q.Width(), m)
	default:
		err = output.WriteText(outw, m)
	}
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWriteError
	}
	return flush(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flush drains the buffered writer, mapping broken pipes to success and
// other write failures to ExitWriteError.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitWriteError
	}
	return code
}
