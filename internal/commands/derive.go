package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/encryption"
	"github.com/idelchi/paes/internal/logic"
	"github.com/idelchi/paes/pkg/aes"
)

// NewDeriveCommand creates the derive subcommand, which prints the key
// material a password produces for --key-bits.
func NewDeriveCommand() *cobra.Command {
	var schedule bool

	cmd := &cobra.Command{
		Use:   "derive [flags]",
		Short: "Print the key derived from a password, optionally with its expanded schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd, "", nil)
			if err != nil {
				return err
			}

			if cfg.Key == "" && cfg.Password == "" {
				password, err := passwordPrompter().Password(false)
				if err != nil {
					return err
				}

				cfg.Password = password
			}

			material, err := encryption.KeyMaterial(cfg)
			if err != nil {
				return err
			}

			c, err := aes.NewContext(material)
			if err != nil {
				return fmt.Errorf("%w: %w", config.ErrUsage, err)
			}

			logic.Derive(logic.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}, c, schedule)

			return nil
		},
	}

	cmd.Flags().BoolVar(&schedule, "schedule", false, "Also print every round key of the expanded schedule")

	return cmd
}
