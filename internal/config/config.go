// Package config holds the runtime configuration of paes and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage marks configuration errors that are the caller's fault.
var ErrUsage = errors.New("usage")

// Suffixes control output naming when no explicit output is given.
type Suffixes struct {
	Encrypt string `mapstructure:"encrypt-ext" yaml:"encrypt-ext"`
	Decrypt string `mapstructure:"decrypt-ext" yaml:"decrypt-ext"`
}

// Config holds everything a run needs, resolved from flags, environment and config file.
type Config struct {
	// Mode is encrypt or decrypt.
	Mode string `validate:"required,oneof=encrypt decrypt" yaml:"mode"`

	// Output file path. Only valid with a single input.
	Output string `yaml:"output,omitempty"`

	// KeyBits is the AES key size.
	KeyBits int `mapstructure:"key-bits" validate:"oneof=128 192 256" yaml:"key-bits"`

	// Password is hashed into key material when Key is empty.
	Password string `validate:"exclusive=Key" label:"--password" yaml:"password,omitempty"`

	// Key is raw key material, hex-encoded.
	Key string `validate:"omitempty,hexadecimal" label:"--key" yaml:"key,omitempty"`

	// Engine selects the block backend.
	Engine string `validate:"oneof=sequential parallel cpu gpu" yaml:"engine"`

	// Parallel bounds both concurrent files and concurrent block runs.
	Parallel int `validate:"min=1" yaml:"parallel"`

	// ChunkBlocks is the number of blocks per parallel task, at most 1<<20.
	ChunkBlocks int `mapstructure:"chunk-blocks" validate:"min=1,max=1048576" label:"--chunk-blocks" yaml:"chunk-blocks"`

	// Tail is the policy for a trailing partial block.
	Tail string `validate:"oneof=reject passthrough pkcs7" yaml:"tail"`

	Suffixes Suffixes `mapstructure:",squash" yaml:",inline"`

	Quiet              bool `yaml:"quiet"`
	Stats              bool `yaml:"stats"`
	Show               bool `yaml:"-"`
	Dry                bool `yaml:"dry"`
	Delete             bool `yaml:"delete"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps" yaml:"preserve-timestamps"`

	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error" yaml:"log-level"`
	LogFile  string `mapstructure:"log-file" yaml:"log-file,omitempty"`

	// Files are the inputs, from --input and positional arguments.
	Files []string `validate:"min=1,dive,required" label:"input" yaml:"files"`
}

// Decrypt reports whether the run decrypts.
func (c *Config) Decrypt() bool { return c.Mode == "decrypt" }

// Validate checks the struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	validate := validator.NewValidator()

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if errs := validate.Validate(c); len(errs) > 0 {
		return fmt.Errorf("%w: validating configuration: %w", ErrUsage, errors.Join(errs...))
	}

	if c.Output != "" && len(c.Files) != 1 {
		return fmt.Errorf("%w: --output requires exactly one input, got %d", ErrUsage, len(c.Files))
	}

	if c.Key != "" {
		raw, err := c.KeyBytes()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}

		if len(raw)*8 != c.KeyBits {
			return fmt.Errorf("%w: --key has %d bits but --key-bits is %d", ErrUsage, len(raw)*8, c.KeyBits)
		}
	}

	return nil
}

// KeyBytes decodes Key.
func (c *Config) KeyBytes() ([]byte, error) {
	raw, err := key.FromHex(c.Key)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	return raw, nil
}

// Redacted returns a copy with secrets masked, for display.
func (c *Config) Redacted() Config {
	const mask = "********"

	r := *c

	if r.Password != "" {
		r.Password = mask
	}

	if r.Key != "" {
		r.Key = mask
	}

	return r
}

// Display renders the redacted configuration as YAML.
func (c *Config) Display() (string, error) {
	out, err := yaml.Marshal(c.Redacted())
	if err != nil {
		return "", fmt.Errorf("marshalling configuration: %w", err)
	}

	return string(out), nil
}
