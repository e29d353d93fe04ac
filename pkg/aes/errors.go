package aes

import "errors"

var (
	// ErrInvalidKeySize is returned for key sizes other than 128, 192 or 256 bits.
	ErrInvalidKeySize = errors.New("aes: invalid key size")
	// ErrShortBlock is returned when a buffer is not a whole number of 16-byte blocks.
	ErrShortBlock = errors.New("aes: input not a multiple of the block size")
	// ErrInvalidDirection is returned when parsing an unknown cipher direction.
	ErrInvalidDirection = errors.New("aes: invalid direction")
)
