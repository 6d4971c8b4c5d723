// internal/writers/events.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"hapeval-core/eval"
	"hapeval/internal/jsonlutil"
	"hapeval/internal/output"
)

// StartEventJSONLWriter streams each classification event as one JSON
// line (v1), in emission order.
func StartEventJSONLWriter(out io.Writer, bufSize int) (chan<- eval.Event, <-chan error) {
	return jsonlutil.Start[eval.Event](out, bufSize,
		func(enc *json.Encoder, ev eval.Event) error {
			return enc.Encode(output.ToAPIEvent(ev))
		},
		IsBrokenPipe,
	)
}

// StartEventTextWriter streams each classification event as one
// sentence line, in emission order.
func StartEventTextWriter(out io.Writer, bufSize int) (chan<- eval.Event, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan eval.Event, bufSize)
	done := make(chan error, 1)

	go func() {
		for ev := range in {
			if _, err := fmt.Fprintln(out, output.FormatEvent(ev)); err != nil {
				done <- err
				for range in { // keep the producer unblocked
				}
				return
			}
		}
		done <- nil
	}()

	return in, done
}
