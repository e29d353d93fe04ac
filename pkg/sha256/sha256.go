// Package sha256 implements the SHA-256 hash algorithm as defined in FIPS 180-4.
//
// The Hash type is an incremental, block-buffered state machine: input may be
// written in chunks of any size, every full 64-byte block is compressed as soon
// as it is complete, and Final applies the Merkle–Damgård padding.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"hash"
)

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the size of a SHA-256 input block in bytes.
	BlockSize = 64
)

// ErrFinalized is returned when writing to a Hash after Final without a Reset.
var ErrFinalized = errors.New("sha256: write after final")

const (
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19
)

// lengthOffset is where the 64-bit message length starts in the last block.
const lengthOffset = BlockSize - 8

var _ hash.Hash = (*Hash)(nil)

// Digest is a SHA-256 checksum.
type Digest [Size]byte

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hash holds the running state of a SHA-256 computation.
// The zero value is an empty hash ready for use.
type Hash struct {
	// h holds the eight chaining words
	h [8]uint32

	// buf accumulates input until a full block is available
	buf [BlockSize]byte

	// count is the number of bytes currently buffered, always < BlockSize between calls
	count int

	// blocks is the number of whole blocks compressed so far
	blocks uint64

	// final is set once padding has been applied
	final bool

	// ready is set by Reset; a zero Hash resets itself on first use
	ready bool
}

// New returns a Hash initialized to the SHA-256 IV.
func New() *Hash {
	d := new(Hash)
	d.Reset()

	return d
}

// Reset restores the initial state: standard IV, nothing buffered, zero blocks.
func (d *Hash) Reset() {
	d.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	d.buf = [BlockSize]byte{}
	d.count = 0
	d.blocks = 0
	d.final = false
	d.ready = true
}

// Size returns the digest size in bytes.
func (d *Hash) Size() int { return Size }

// BlockSize returns the compression block size in bytes.
func (d *Hash) BlockSize() int { return BlockSize }

// Write absorbs p into the hash state. Chunk boundaries do not affect the result.
// It returns ErrFinalized if called after Final.
func (d *Hash) Write(p []byte) (int, error) {
	if !d.ready {
		d.Reset()
	}

	if d.final {
		return 0, ErrFinalized
	}

	n := len(p)

	for len(p) > 0 {
		// Compress straight from the input when nothing is buffered.
		if d.count == 0 && len(p) >= BlockSize {
			d.compress(p[:BlockSize])
			p = p[BlockSize:]

			continue
		}

		copied := copy(d.buf[d.count:], p)
		d.count += copied
		p = p[copied:]

		if d.count == BlockSize {
			d.compress(d.buf[:])
			d.count = 0
		}
	}

	return n, nil
}

// Final pads the message and compresses the last block(s).
// Calling Final more than once has no further effect.
func (d *Hash) Final() {
	if !d.ready {
		d.Reset()
	}

	if d.final {
		return
	}

	bits := (d.blocks*BlockSize + uint64(d.count)) << 3

	d.buf[d.count] = 0x80
	d.count++

	// No room left for the length: pad out this block and start another.
	if d.count > lengthOffset {
		clear(d.buf[d.count:])
		d.compress(d.buf[:])
		d.count = 0
	}

	clear(d.buf[d.count:lengthOffset])
	binary.BigEndian.PutUint64(d.buf[lengthOffset:], bits)
	d.compress(d.buf[:])

	d.count = 0
	d.final = true
}

// Read finalizes the hash if needed and returns the chaining words big-endian.
func (d *Hash) Read() Digest {
	d.Final()

	var digest Digest

	for i, word := range d.h {
		binary.BigEndian.PutUint32(digest[i*4:], word)
	}

	return digest
}

// Sum appends the digest of the data written so far to b.
// Unlike Read it does not change the state of d.
func (d *Hash) Sum(b []byte) []byte {
	clone := *d
	digest := clone.Read()

	return append(b, digest[:]...)
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) Digest {
	d := New()
	_, _ = d.Write(data) //nolint:errcheck // a fresh Hash never returns an error

	return d.Read()
}

// compress runs the compression function over one block and counts it.
func (d *Hash) compress(p []byte) {
	block(&d.h, p)
	d.blocks++
}
