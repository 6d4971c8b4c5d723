// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA record with its sequence lines concatenated.
// Header keeps the full text after '>' (not just the first token):
// true/test haplotype routing matches a prefix anywhere in the header,
// so nothing may be cut off. Gap characters in Seq are preserved.
type Record struct {
	Header string
	Seq    []byte
}

// ReadAll parses every record from r. Whole sequences are kept in
// memory: downstream column iteration needs all records at full width,
// so there is no chunked variant here.
//
// It is cancelable, returning promptly when ctx is Done, even mid-record.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		records []Record
		cur     *Record
	)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			records = append(records, Record{Header: string(bytes.TrimSpace(line[1:]))})
			cur = &records[len(records)-1]
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return records, nil
}

// ReadAllPath opens path (gzip/stdin aware) and reads every record.
func ReadAllPath(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadAll(ctx, rc)
}
