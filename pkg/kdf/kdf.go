// Package kdf turns a password into AES key material by truncating its SHA-256 digest.
//
// The derivation is unsalted and single-pass. It exists to reproduce keys
// compatible with files written by earlier versions of the tool, not to
// resist offline guessing.
package kdf

import (
	"errors"
	"fmt"

	"github.com/idelchi/paes/pkg/aes"
	"github.com/idelchi/paes/pkg/sha256"
)

// ErrInvalidKeyLength is returned when the requested key length is not 16, 24 or 32 bytes.
var ErrInvalidKeyLength = errors.New("kdf: invalid key length")

// Derive returns the first length bytes of SHA-256(password).
func Derive(password string, length int) ([]byte, error) {
	switch length {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes (must be 16, 24 or 32, at most %d)", ErrInvalidKeyLength, length, sha256.Size)
	}

	h := sha256.New()

	if _, err := h.Write([]byte(password)); err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	digest := h.Read()

	key := make([]byte, length)
	copy(key, digest[:length])

	return key, nil
}

// ForKeySize derives key material for an AES key size given in bits.
func ForKeySize(password string, bits int) ([]byte, error) {
	n, err := aes.KeyBytes(bits)
	if err != nil {
		return nil, err
	}

	return Derive(password, n)
}
