package encryption

import "time"

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// InputSize is the number of bytes read.
	InputSize int64

	// Output file size in bytes
	OutputSize int64

	// Blocks is the number of whole blocks run through the cipher.
	Blocks int

	// Duration covers read, transform and write.
	Duration time.Duration

	// Any error that occurred during processing
	Error error
}

// Summary aggregates the results of a run.
type Summary struct {
	Processed int
	Errored   int
	InputSize int64
	OutputSize int64
	Blocks    int
}

func (s *Summary) add(r Result) {
	if r.Error != nil {
		s.Errored++

		return
	}

	s.Processed++
	s.InputSize += r.InputSize
	s.OutputSize += r.OutputSize
	s.Blocks += r.Blocks
}
