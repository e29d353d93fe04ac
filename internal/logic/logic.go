// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/encryption"
)

// Streams are the writers user-facing output goes to.
type Streams struct {
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// Run is the main logic of the application.
func Run(ctx context.Context, cfg *config.Config, s Streams) error {
	start, done, err := preamble(cfg, s)
	if done || err != nil {
		return err
	}

	proc, err := encryption.NewProcessor(cfg,
		encryption.WithLogger(s.Logger),
		encryption.WithOutput(s.Out, s.Err),
	)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	s.Logger.Debug("starting",
		"mode", cfg.Mode,
		"files", len(cfg.Files),
		"key_bits", cfg.KeyBits,
		"engine", cfg.Engine,
		"tail", cfg.Tail,
	)

	summary, err := proc.ProcessFiles(ctx)

	if cfg.Stats {
		printStats(s.Err, cfg, summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config, s Streams) (time.Time, bool, error) {
	start := time.Now()

	if cfg.Dry {
		return start, true, dryRun(cfg, s, start)
	}

	return start, false, nil
}

// dryRun previews what would be processed without actually encrypting/decrypting.
func dryRun(cfg *config.Config, s Streams, start time.Time) error {
	var summary encryption.Summary

	for _, file := range cfg.Files {
		info, err := os.Stat(file)
		if err != nil {
			summary.Errored++

			fmt.Fprintf(s.Err, "Error processing %q: %v\n", file, err)

			continue
		}

		summary.Processed++
		summary.InputSize += info.Size()
		summary.Blocks += int(info.Size() / 16)

		if !cfg.Quiet {
			fmt.Fprintf(s.Out, "Would process %q -> %q\n", file, encryption.OutputPath(file, cfg))
		}
	}

	if cfg.Stats {
		printStats(s.Err, cfg, summary, time.Since(start))
	}

	return nil
}

func printStats(w io.Writer, cfg *config.Config, summary encryption.Summary, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Mode:       %s\n", cfg.Mode)
	fmt.Fprintf(w, "  Key size:   %d bits\n", cfg.KeyBits)
	fmt.Fprintf(w, "  Engine:     %s\n", engineLabel(cfg))
	fmt.Fprintf(w, "  Tail:       %s\n", cfg.Tail)
	fmt.Fprintf(w, "  Processed:  %d\n", summary.Processed)
	fmt.Fprintf(w, "  Errors:     %d\n", summary.Errored)
	//nolint:gosec // sizes are sums of file sizes and never negative
	fmt.Fprintf(w, "  Size:       %s\n", humanize.IBytes(uint64(max(0, summary.InputSize))))
	//nolint:gosec // same as above
	fmt.Fprintf(w, "  Output:     %s\n", humanize.IBytes(uint64(max(0, summary.OutputSize))))
	fmt.Fprintf(w, "  Blocks:     %s\n", humanize.Comma(int64(summary.Blocks)))
	fmt.Fprintf(w, "  Duration:   %s\n", duration.Round(time.Microsecond))

	if seconds := duration.Seconds(); seconds > 0 && summary.InputSize > 0 {
		fmt.Fprintf(w, "  Throughput: %s/s\n", humanize.IBytes(uint64(float64(summary.InputSize)/seconds)))
	}
}

func engineLabel(cfg *config.Config) string {
	switch cfg.Engine {
	case "parallel", "gpu":
		return fmt.Sprintf("parallel (%d workers, %d blocks per task)", cfg.Parallel, cfg.ChunkBlocks)
	default:
		return "sequential"
	}
}
