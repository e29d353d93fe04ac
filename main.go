// Command paes encrypts and decrypts files with AES.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/paes/internal/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals
var version = "unknown"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := commands.NewRootCommand(version)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return commands.ExitCode(err)
	}

	return commands.ExitOK
}
