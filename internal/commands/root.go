package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/engine"
)

// NewRootCommand creates the root command with common configuration.
// All run options are persistent flags so every subcommand shares them.
func NewRootCommand(version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "paes [flags] command [flags]"
	root.Short = "AES file encryption with sequential and parallel block engines"
	root.Long = `paes encrypts and decrypts files with AES-128, AES-192 or AES-256.

Each 16-byte block is transformed independently (ECB): identical plaintext
blocks give identical ciphertext blocks, and no IV or header is written.
The key is the SHA-256 digest of the password, truncated to the key size,
or raw key material given in hex.

Three invocation forms are accepted:

  paes encrypt|decrypt [flags] files...
  paes encrypt|decrypt <input> <output> <key_bits> <password>
  paes -i INPUT -o OUTPUT -m MODE [-k KEY_BITS] [-p PASSWORD] [-d ENGINE]`
	root.Example = `  paes encrypt -p secret notes.txt
  paes decrypt -p secret -k 128 notes.txt.aes
  paes -i notes.txt -o notes.bin -m encrypt -k 256 -d parallel -j 8
  paes digest -t abc
  paes derive -p secret -k 192 --schedule`

	// Flags are bound per run by config.Load on its own viper instance.
	root.PersistentPreRunE = nil
	root.Args = cobra.NoArgs
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	})

	flags := root.PersistentFlags()

	flags.StringSliceP("input", "i", nil, "Input file(s), in addition to positional arguments")
	flags.StringP("output", "o", "", "Output file, only with a single input")
	flags.StringP("mode", "m", "", "Mode for the flag form: encrypt or decrypt")
	flags.IntP("key-bits", "k", 128, "Key size in bits: 128, 192 or 256")
	flags.StringP("password", "p", "", "Password to derive the key from, prompted for if neither it nor --key is set")
	flags.String("key", "", "Raw key material, hex-encoded, instead of a password")

	flags.StringP("engine", "d", engine.ParallelName,
		fmt.Sprintf("Block engine: %s (cpu and gpu are accepted aliases)", strings.Join(engine.Names(), " or ")))
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.IntP("chunk-blocks", "g", engine.DefaultChunkBlocks, "Blocks per parallel task")
	flags.String("tail", engine.Passthrough.String(), "Trailing partial block policy: reject, passthrough or pkcs7")

	flags.String("encrypt-ext", ".aes", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print parameters, sizes and timing to stderr")
	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.Bool("dry", false, "Show what would be processed without writing anything")
	flags.Bool("delete", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("preserve-timestamps", false, "Copy the input modification time to the output")

	flags.String("config", "", "Configuration file (JSON with comments)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Write JSON logs to this file (rotated) instead of stderr")

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		mode, err := cmd.Flags().GetString("mode")
		if err != nil {
			return err
		}

		inputs, err := cmd.Flags().GetStringSlice("input")
		if err != nil {
			return err
		}

		if mode == "" && len(inputs) == 0 {
			return cmd.Help()
		}

		return execute(cmd, "", nil)
	}

	root.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewDigestCommand(),
		NewDeriveCommand(),
	)

	return root
}
