package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// EnvPrefix is prepended to every flag name to form its environment variable,
// e.g. PAES_KEY_BITS for --key-bits.
const EnvPrefix = "PAES"

// Load resolves the configuration from flags, environment and, when --config
// names one, a JSON-with-comments file, in that order of precedence.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing configuration: %w", ErrUsage, err)
	}

	cfg.Files = append(cfg.Files, v.GetStringSlice("input")...)

	return cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied flag
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}

	v.SetConfigType("json")

	if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSONInPlace(data))); err != nil {
		return fmt.Errorf("%w: parsing config file %q: %w", ErrUsage, path, err)
	}

	return nil
}
