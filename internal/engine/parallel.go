package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/paes/pkg/aes"
)

// Run transforms src into dst. Cancellation is observed between tasks; a task
// that has started always finishes its run of blocks.
func (p Parallel) Run(ctx context.Context, c *aes.Context, dir aes.Direction, dst, src []byte) error {
	if len(src)%aes.BlockSize != 0 {
		return fmt.Errorf("%w: %d trailing bytes", aes.ErrShortBlock, len(src)%aes.BlockSize)
	}

	if len(dst) < len(src) {
		return fmt.Errorf("%w: output buffer of %d bytes for %d bytes of input", aes.ErrShortBlock, len(dst), len(src))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p = NewParallel(p.Workers, p.ChunkBlocks)
	chunk := min(p.ChunkBlocks, len(src)/aes.BlockSize) * aes.BlockSize

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)

	for off := 0; off < len(src); off += chunk {
		end := min(off+chunk, len(src))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return c.CryptBlocks(dir, dst[off:end], src[off:end])
		})
	}

	return g.Wait()
}
