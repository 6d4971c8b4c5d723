// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const aligned = `>true_hap1 simulated
ACG-T
ACGTA
>true_hap2 simulated
ACGCT
ACGTA
`

func TestReadAllConcatenatesLines(t *testing.T) {
	recs, err := ReadAll(context.Background(), strings.NewReader(aligned))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if string(recs[0].Seq) != "ACG-TACGTA" {
		t.Errorf("sequence lines not concatenated: %q", recs[0].Seq)
	}
	if recs[0].Header != "true_hap1 simulated" {
		t.Errorf("full header not retained: %q", recs[0].Header)
	}
}

func TestReadAllKeepsGapsAndCase(t *testing.T) {
	recs, err := ReadAll(context.Background(), strings.NewReader(">r\nac-GT\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(recs[0].Seq) != "ac-GT" {
		t.Errorf("sequence altered: %q", recs[0].Seq)
	}
}

func TestReadAllSkipsBlankLines(t *testing.T) {
	recs, err := ReadAll(context.Background(), strings.NewReader(">r\nAC\n\nGT\n\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(recs[0].Seq) != "ACGT" {
		t.Errorf("blank lines mishandled: %q", recs[0].Seq)
	}
}

func TestReadAllRejectsHeaderlessData(t *testing.T) {
	if _, err := ReadAll(context.Background(), strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("expected error for sequence before first header")
	}
}

func TestReadAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadAll(ctx, strings.NewReader(aligned)); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// writeGz creates a gzipped FASTA file and returns its path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("hapeval-%d.fa.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadAllPathGzip(t *testing.T) {
	gzPath := writeGz(t, aligned)
	defer func() { _ = os.Remove(gzPath) }()

	recs, err := ReadAllPath(context.Background(), gzPath)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 2 || string(recs[1].Seq) != "ACGCTACGTA" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestReadAllPathStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, aligned)
		_ = w.Close()
	}()

	recs, err := ReadAllPath(context.Background(), "-")
	if err != nil {
		t.Fatalf("read stdin: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(os.TempDir(), "hapeval-no-such-file.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
