package commands

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/logging"
	"github.com/idelchi/paes/internal/logic"
	"github.com/idelchi/paes/internal/prompt"
)

// passwordPrompter is swapped out in tests.
//
//nolint:gochecknoglobals
var passwordPrompter = prompt.New

// load resolves flags, environment and config file into a Config.
// mode is set by the encrypt and decrypt subcommands and must agree with an explicit --mode.
func load(cmd *cobra.Command, mode string, args []string) (*config.Config, error) {
	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return nil, err
	}

	if mode != "" {
		if cmd.Flags().Changed("mode") && cfg.Mode != mode {
			return nil, fmt.Errorf("%w: --mode %s conflicts with the %s command", config.ErrUsage, cfg.Mode, mode)
		}

		cfg.Mode = mode
	}

	if in, out, bits, password, ok := legacyArgs(args); ok {
		if cfg.Output != "" || cfg.Password != "" || cfg.Key != "" {
			return nil, fmt.Errorf("%w: positional <input> <output> <key_bits> <password> cannot be combined with -o, -p or --key", config.ErrUsage)
		}

		cfg.Output, cfg.KeyBits, cfg.Password = out, bits, password
		args = []string{in}
	}

	cfg.Files = append(cfg.Files, args...)

	return cfg, nil
}

// legacyArgs recognizes "<input> <output> <key_bits> <password>". The third
// argument must be a key size and must not name an existing file.
func legacyArgs(args []string) (in, out string, bits int, password string, ok bool) {
	const legacyCount = 4

	if len(args) != legacyCount {
		return "", "", 0, "", false
	}

	bits, err := strconv.Atoi(args[2])
	if err != nil || !slices.Contains([]int{128, 192, 256}, bits) {
		return "", "", 0, "", false
	}

	if _, err := os.Stat(args[2]); err == nil {
		return "", "", 0, "", false
	}

	return args[0], args[1], bits, args[3], true
}

// execute runs encrypt or decrypt for the resolved configuration.
func execute(cmd *cobra.Command, mode string, args []string) error {
	cfg, err := load(cmd, mode, args)
	if err != nil {
		return err
	}

	if cfg.Show {
		out, err := cfg.Display()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Key == "" && cfg.Password == "" && !cfg.Dry {
		password, err := passwordPrompter().Password(!cfg.Decrypt())
		if err != nil {
			return err
		}

		cfg.Password = password
	}

	logger, closer, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	}
	defer closer.Close()

	return logic.Run(cmd.Context(), cfg, logic.Streams{
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Logger: logger,
	})
}
