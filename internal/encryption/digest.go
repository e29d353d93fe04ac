package encryption

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idelchi/paes/pkg/sha256"
)

// Digest streams r through SHA-256 in pooled chunks and returns the digest
// and the number of bytes hashed.
func Digest(r io.Reader) (sha256.Digest, int64, error) {
	bufp := bufferPool.Get().(*[]byte) //nolint:forcetypeassert // pool only holds *[]byte
	defer bufferPool.Put(bufp)

	buf := *bufp
	h := sha256.New()

	var total int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return sha256.Digest{}, total, fmt.Errorf("hashing: %w", werr)
			}

			total += int64(n)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return sha256.Digest{}, total, fmt.Errorf("%w: reading: %w", ErrIO, err)
		}
	}

	return h.Read(), total, nil
}

// DigestFile hashes the file at path. "-" reads standard input.
func DigestFile(path string) (sha256.Digest, int64, error) {
	if path == "-" {
		return Digest(os.Stdin)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return sha256.Digest{}, 0, fmt.Errorf("%w: opening %q: %w", ErrIO, path, err)
	}
	defer f.Close()

	return Digest(f)
}
