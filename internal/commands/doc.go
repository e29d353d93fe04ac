// Package commands provides the command-line interface for the paes tool.
//
// It implements commands for:
//   - encryption and decryption of files, in both subcommand and flag form
//   - SHA-256 digests of files and strings
//   - key derivation and key schedule inspection
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
