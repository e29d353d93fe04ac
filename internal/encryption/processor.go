package encryption

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/engine"
	"github.com/idelchi/paes/internal/fileutil"
	"github.com/idelchi/paes/pkg/aes"
	"github.com/idelchi/paes/pkg/kdf"
)

// fallbackDecryptSuffix names decrypted output when stripping the encrypted
// suffix would otherwise reuse the input path.
const fallbackDecryptSuffix = ".dec"

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// cipher holds the key schedule shared by every file and worker
	cipher *aes.Context

	backend engine.Backend
	tail    engine.Tail
	dir     aes.Direction

	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// Option customizes a Processor.
type Option func(*Processor)

// WithLogger sets the structured logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// WithOutput redirects the per-file report lines.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(p *Processor) {
		p.stdout = stdout
		p.stderr = stderr
	}
}

// NewProcessor derives or decodes the key, expands it once and selects the
// engine, tail policy and direction named by cfg.
func NewProcessor(cfg *config.Config, opts ...Option) (*Processor, error) {
	material, err := KeyMaterial(cfg)
	if err != nil {
		return nil, err
	}

	cipher, err := aes.NewContext(material)
	if err != nil {
		return nil, fmt.Errorf("expanding key: %w", err)
	}

	backend, err := engine.New(cfg.Engine, cfg.Parallel, cfg.ChunkBlocks)
	if err != nil {
		return nil, err
	}

	tail, err := engine.ParseTail(cfg.Tail)
	if err != nil {
		return nil, err
	}

	dir, err := aes.ParseDirection(cfg.Mode)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		cfg:     cfg,
		cipher:  cipher,
		backend: backend,
		tail:    tail,
		dir:     dir,
		logger:  slog.New(slog.DiscardHandler),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		results: make(chan Result, len(cfg.Files)),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// KeyMaterial returns the raw key for cfg: the decoded --key, or the password
// hashed down to the configured key size.
func KeyMaterial(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Key != "":
		return cfg.KeyBytes()
	case cfg.Password != "":
		material, err := kdf.ForKeySize(cfg.Password, cfg.KeyBits)
		if err != nil {
			return nil, fmt.Errorf("deriving key: %w", err)
		}

		return material, nil
	default:
		return nil, ErrNoKey
	}
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Every file is attempted; the returned error reports the first failure.
//
//nolint:cyclop
func (p *Processor) ProcessFiles(ctx context.Context) (Summary, error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	var summary Summary

	go func() {
		defer close(done)

		for result := range p.results {
			summary.add(result)

			if result.Error != nil {
				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete && filepath.Clean(result.Input) != filepath.Clean(result.Output) {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			result := p.processFile(ctx, file, OutputPath(file, p.cfg))
			p.results <- result

			return result.Error
		})
	}

	err := group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return summary, fmt.Errorf("%w: %d of %d: %w", ErrFailed, summary.Errored, len(p.cfg.Files), err)
	}

	return summary, nil
}

// processFile transforms a single file and writes it atomically to outPath.
func (p *Processor) processFile(ctx context.Context, filename, outPath string) (result Result) {
	start := time.Now()
	result = Result{Input: filename, Output: outPath}

	defer func() {
		result.Duration = time.Since(start)

		if result.Error != nil {
			p.logger.Debug("file failed", "input", filename, "error", result.Error)

			return
		}

		p.logger.Debug("file processed",
			"input", filename,
			"output", outPath,
			"bytes", result.InputSize,
			"blocks", result.Blocks,
			"engine", p.backend.Name(),
			"duration", result.Duration,
		)
	}()

	result.InputSize, result.OutputSize, result.Blocks, result.Error = p.transformFile(ctx, filename, outPath)

	return result
}

//nolint:nonamedreturns // err is inspected by the deferred cleanup
func (p *Processor) transformFile(ctx context.Context, filename, outPath string) (in, out int64, blocks int, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: preparing atomic write: %w", ErrIO, err)
	}

	defer tc.CleanupOnError(&err)

	src, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading input: %w", ErrIO, err)
	}

	dst, err := engine.Transform(ctx, p.backend, p.cipher, p.dir, src, p.tail)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%sing: %w", p.dir, err)
	}

	if _, err = tc.TmpFile.Write(dst); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: writing output: %w", ErrIO, err)
	}

	out, err = tc.Commit(p.cfg.PreserveTimestamps)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return int64(len(src)), out, max(len(src), len(dst)) / aes.BlockSize, nil
}

// OutputPath returns where the result for filename is written: the explicit
// --output, or the name with the encrypt suffix appended, or stripped and
// replaced by the decrypt suffix.
func OutputPath(filename string, cfg *config.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}

	if !cfg.Decrypt() {
		return filename + cfg.Suffixes.Encrypt
	}

	trimmed := strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
	ext := cfg.Suffixes.Decrypt

	if trimmed+ext == filename {
		ext += fallbackDecryptSuffix
	}

	return trimmed + ext
}
