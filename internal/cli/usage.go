// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"hapeval/internal/version"
)

// InstallUsage sets a grouped Usage() handler on fs.
func InstallUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – haplotype reconstruction accuracy scorer\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage: %s -p TRUE_PREFIX [options] input_alignment.fa\n\n", name)
		fmt.Fprintln(out, "Scores two reconstructed haplotypes against the two true haplotypes of a")
		fmt.Fprintln(out, "four-record aligned FASTA: phase switches at heterozygous SNPs, false SNPs,")
		fmt.Fprintln(out, "false indels, and bad base calls, per test haplotype.")

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -p, --true_prefix string    Header prefix of the true haplotype pair [*]")
		fmt.Fprintln(out, "  input_alignment.fa          Aligned multi-FASTA (gzip ok, '-' for STDIN)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --position_output       Print one line per classified column event [%s]\n", def("position_output"))
		fmt.Fprintf(out, "      --output string         Output format: text | json | jsonl [%s]\n", def("output"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
