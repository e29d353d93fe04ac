package aes

import (
	"crypto/cipher"
	"fmt"
)

// Context binds an expanded key schedule to the block transforms.
// A Context is immutable and safe for concurrent use by multiple goroutines.
type Context struct {
	schedule *Schedule
}

var _ cipher.Block = (*Context)(nil)

// NewContext expands key and returns a ready Context.
func NewContext(key []byte) (*Context, error) {
	schedule, err := Expand(key)
	if err != nil {
		return nil, err
	}

	return &Context{schedule: schedule}, nil
}

// Schedule returns the expanded key.
func (c *Context) Schedule() *Schedule { return c.schedule }

// BlockSize returns 16.
func (c *Context) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst. dst and src may overlap entirely.
func (c *Context) Encrypt(dst, src []byte) {
	c.crypt(&policies[Encrypt], dst, src)
}

// Decrypt decrypts the first block of src into dst. dst and src may overlap entirely.
func (c *Context) Decrypt(dst, src []byte) {
	c.crypt(&policies[Decrypt], dst, src)
}

// CryptBlock transforms exactly one block in the given direction.
func (c *Context) CryptBlock(dir Direction, dst, src []byte) error {
	p, err := dir.policy()
	if err != nil {
		return err
	}

	if len(src) < BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("%w: got %d bytes", ErrShortBlock, min(len(src), len(dst)))
	}

	c.crypt(p, dst, src)

	return nil
}

// CryptBlocks transforms every 16-byte block of src into dst independently.
// len(src) must be a multiple of BlockSize and dst at least as long; nothing
// is written otherwise.
func (c *Context) CryptBlocks(dir Direction, dst, src []byte) error {
	p, err := dir.policy()
	if err != nil {
		return err
	}

	if len(src)%BlockSize != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrShortBlock, len(src)%BlockSize)
	}

	if len(dst) < len(src) {
		return fmt.Errorf("%w: output buffer of %d bytes for %d bytes of input", ErrShortBlock, len(dst), len(src))
	}

	for off := 0; off < len(src); off += BlockSize {
		c.crypt(p, dst[off:off+BlockSize], src[off:off+BlockSize])
	}

	return nil
}

func (c *Context) crypt(p *roundPolicy, dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}

	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}

	var s State

	copy(s[:], src[:BlockSize])
	p.run(&s, c.schedule)
	copy(dst, s[:])
}
