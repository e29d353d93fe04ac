package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/paes/internal/logic"
)

// NewDigestCommand creates the digest subcommand, a sha256sum built on the
// package's own hash engine.
func NewDigestCommand() *cobra.Command {
	var (
		texts   []string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "digest [flags] [files...]",
		Short: "Print SHA-256 digests of files, stdin or strings",
		Long: `Print SHA-256 digests of files, stdin or strings.

With no files and no --text, standard input is hashed. "-" also names standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(texts) == 0 {
				args = []string{"-"}
			}

			s := logic.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

			return logic.Digest(s, args, texts, verbose)
		},
	}

	cmd.Flags().StringArrayVarP(&texts, "text", "t", nil, "Hash this string instead of a file (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the number of bytes hashed")

	return cmd
}
