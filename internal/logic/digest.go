package logic

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/paes/internal/encryption"
	"github.com/idelchi/paes/pkg/sha256"
)

// Digest prints a sha256sum-style line for every path and every literal string.
// All inputs are attempted; the first error is returned.
func Digest(s Streams, paths, texts []string, verbose bool) error {
	var first error

	for _, text := range texts {
		fmt.Fprintf(s.Out, "%s  %q\n", sha256.Sum256([]byte(text)), text)
	}

	for _, path := range paths {
		digest, n, err := encryption.DigestFile(path)
		if err != nil {
			fmt.Fprintf(s.Err, "Error hashing %q: %v\n", path, err)

			if first == nil {
				first = err
			}

			continue
		}

		if verbose {
			fmt.Fprintf(s.Out, "%s  %s (%s)\n", digest, path, humanize.IBytes(uint64(n))) //nolint:gosec // byte counts are non-negative

			continue
		}

		fmt.Fprintf(s.Out, "%s  %s\n", digest, path)
	}

	return first
}
