package engine

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/idelchi/paes/pkg/aes"
)

const (
	// SequentialName selects the single-threaded backend.
	SequentialName = "sequential"
	// ParallelName selects the work-queue backend.
	ParallelName = "parallel"

	// DefaultChunkBlocks is the number of blocks handed to one parallel task.
	DefaultChunkBlocks = 4096
	// MaxChunkBlocks caps a task at 16 MiB.
	MaxChunkBlocks = 1 << 20
)

// Backend transforms a block-aligned buffer with a prepared cipher context.
// Implementations must accept dst and src being the same slice.
type Backend interface {
	Name() string
	Run(ctx context.Context, c *aes.Context, dir aes.Direction, dst, src []byte) error
}

// New returns the backend registered under name. workers and chunkBlocks
// only apply to the parallel backend; zero selects the defaults.
func New(name string, workers, chunkBlocks int) (Backend, error) {
	switch name {
	case SequentialName, "cpu":
		return Sequential{}, nil
	case ParallelName, "gpu":
		return NewParallel(workers, chunkBlocks), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}
}

// Names lists the canonical backend names.
func Names() []string {
	return []string{SequentialName, ParallelName}
}

// Sequential processes one block after the other on the calling goroutine.
type Sequential struct{}

// Name returns "sequential".
func (Sequential) Name() string { return SequentialName }

// Run transforms src into dst. The context is only consulted before the first block.
func (Sequential) Run(ctx context.Context, c *aes.Context, dir aes.Direction, dst, src []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.CryptBlocks(dir, dst, src)
}

// Parallel splits the buffer into runs of ChunkBlocks blocks and processes
// up to Workers runs at once.
type Parallel struct {
	Workers     int
	ChunkBlocks int
}

// NewParallel returns a Parallel backend, substituting defaults for non-positive
// values and capping chunkBlocks at MaxChunkBlocks.
func NewParallel(workers, chunkBlocks int) Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if chunkBlocks <= 0 {
		chunkBlocks = DefaultChunkBlocks
	}

	chunkBlocks = min(chunkBlocks, MaxChunkBlocks)

	return Parallel{Workers: workers, ChunkBlocks: chunkBlocks}
}

// Name returns "parallel".
func (Parallel) Name() string { return ParallelName }
