package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/idelchi/paes/pkg/aes"
)

// Tail decides what happens to input that does not end on a block boundary.
type Tail int

const (
	// Reject fails with aes.ErrShortBlock unless the input is block-aligned.
	Reject Tail = iota
	// Passthrough transforms every full block and copies the trailing
	// len%16 bytes unmodified. Output length always equals input length.
	Passthrough
	// PKCS7 pads before encrypting and strips the padding after decrypting.
	// Ciphertext grows by 1 to 16 bytes.
	PKCS7
)

// String returns the policy name as accepted by ParseTail.
func (t Tail) String() string {
	switch t {
	case Reject:
		return "reject"
	case Passthrough:
		return "passthrough"
	case PKCS7:
		return "pkcs7"
	default:
		return fmt.Sprintf("Tail(%d)", int(t))
	}
}

// ParseTail maps a policy name to a Tail.
func ParseTail(s string) (Tail, error) {
	switch strings.ToLower(s) {
	case "reject":
		return Reject, nil
	case "passthrough":
		return Passthrough, nil
	case "pkcs7":
		return PKCS7, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownTail, s, strings.Join(TailNames(), ", "))
	}
}

// TailNames lists the accepted policy names.
func TailNames() []string {
	return []string{Reject.String(), Passthrough.String(), PKCS7.String()}
}

// Transform runs the backend over src under the given tail policy and
// returns a newly allocated result. On error nothing is returned.
func Transform(ctx context.Context, b Backend, c *aes.Context, dir aes.Direction, src []byte, tail Tail) ([]byte, error) {
	switch tail {
	case Reject:
		if rem := len(src) % aes.BlockSize; rem != 0 {
			return nil, fmt.Errorf("%w: %d trailing bytes after %d blocks", aes.ErrShortBlock, rem, len(src)/aes.BlockSize)
		}

		return run(ctx, b, c, dir, src)
	case Passthrough:
		aligned := len(src) - len(src)%aes.BlockSize

		out := make([]byte, len(src))
		if err := b.Run(ctx, c, dir, out[:aligned], src[:aligned]); err != nil {
			return nil, err
		}

		copy(out[aligned:], src[aligned:])

		return out, nil
	case PKCS7:
		if dir == aes.Encrypt {
			padded := pkcs7Pad(src)

			if err := b.Run(ctx, c, dir, padded, padded); err != nil {
				return nil, err
			}

			return padded, nil
		}

		if len(src) == 0 {
			return nil, ErrEmptyData
		}

		out, err := run(ctx, b, c, dir, src)
		if err != nil {
			return nil, err
		}

		return pkcs7Unpad(out)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTail, int(tail))
	}
}

func run(ctx context.Context, b Backend, c *aes.Context, dir aes.Direction, src []byte) ([]byte, error) {
	out := make([]byte, len(src))

	if err := b.Run(ctx, c, dir, out, src); err != nil {
		return nil, err
	}

	return out, nil
}
