package commands

import (
	"errors"

	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/engine"
	"github.com/idelchi/paes/pkg/aes"
	"github.com/idelchi/paes/pkg/kdf"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error returned by the root command to a process exit status:
// 2 for invalid invocations, 1 for any other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrUsage),
		errors.Is(err, aes.ErrInvalidKeySize),
		errors.Is(err, aes.ErrInvalidDirection),
		errors.Is(err, kdf.ErrInvalidKeyLength),
		errors.Is(err, engine.ErrUnknownBackend),
		errors.Is(err, engine.ErrUnknownTail):
		return ExitUsage
	default:
		return ExitFailure
	}
}
