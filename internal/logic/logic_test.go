package logic_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/paes/internal/config"
	"github.com/idelchi/paes/internal/logic"
	"github.com/idelchi/paes/pkg/aes"
)

func streams() (logic.Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	return logic.Streams{Out: &out, Err: &errOut, Logger: slog.New(slog.DiscardHandler)}, &out, &errOut
}

func cfgFor(mode string, files ...string) *config.Config {
	return &config.Config{
		Mode:        mode,
		KeyBits:     256,
		Password:    "logic",
		Engine:      "sequential",
		Parallel:    1,
		ChunkBlocks: 1,
		Tail:        "pkcs7",
		LogLevel:    "info",
		Suffixes:    config.Suffixes{Encrypt: ".aes"},
		Files:       files,
	}
}

func TestRunRoundTripWithStats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plain := filepath.Join(dir, "doc.txt")
	content := []byte(strings.Repeat("x", 1000))
	require.NoError(t, os.WriteFile(plain, content, 0o600))

	s, out, errOut := streams()

	cfg := cfgFor("encrypt", plain)
	cfg.Stats = true

	require.NoError(t, logic.Run(context.Background(), cfg, s))
	assert.Contains(t, out.String(), "Processed")
	assert.Contains(t, errOut.String(), "Key size:   256 bits")
	assert.Contains(t, errOut.String(), "Blocks:     63")
	assert.Contains(t, errOut.String(), "Size:       1000 B")
	assert.Contains(t, errOut.String(), "Output:     1008 B")

	encrypted, err := os.ReadFile(plain + ".aes")
	require.NoError(t, err)
	assert.Len(t, encrypted, 1008)

	cfg = cfgFor("decrypt", plain+".aes")
	cfg.Output = filepath.Join(dir, "back.txt")

	require.NoError(t, logic.Run(context.Background(), cfg, s))

	back, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, content, back)
}

func TestRunWrongPassword(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plain := filepath.Join(dir, "doc.txt")
	content := []byte("two whole blocks of plaintext!!!")
	require.NoError(t, os.WriteFile(plain, content, 0o600))

	s, _, _ := streams()

	cfg := cfgFor("encrypt", plain)
	cfg.Tail = "passthrough"
	require.NoError(t, logic.Run(context.Background(), cfg, s))

	cfg = cfgFor("decrypt", plain+".aes")
	cfg.Tail = "passthrough"
	cfg.Password = "not the password"
	cfg.Output = filepath.Join(dir, "wrong.txt")

	// Passthrough has no padding to check, so a wrong key always decrypts to garbage.
	require.NoError(t, logic.Run(context.Background(), cfg, s))

	back, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Len(t, back, len(content))
	assert.NotEqual(t, content[:aes.BlockSize], back[:aes.BlockSize])
	assert.NotEqual(t, content[aes.BlockSize:], back[aes.BlockSize:])
}

func TestDryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plain := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(plain, make([]byte, 64), 0o600))

	s, out, errOut := streams()

	cfg := cfgFor("encrypt", plain, filepath.Join(dir, "missing"))
	cfg.Dry = true
	cfg.Stats = true

	require.NoError(t, logic.Run(context.Background(), cfg, s))
	assert.Contains(t, out.String(), "Would process")
	assert.Contains(t, errOut.String(), "missing")
	assert.Contains(t, errOut.String(), "Blocks:     4")
	assert.NoFileExists(t, plain+".aes")
}

func TestDigest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, out, errOut := streams()

	err := logic.Digest(s, []string{path, filepath.Join(t.TempDir(), "missing")}, []string{"abc"}, false)
	require.Error(t, err)

	assert.Contains(t, out.String(), `ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  "abc"`)
	assert.Contains(t, out.String(), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  "+path)
	assert.Contains(t, errOut.String(), "missing")
}

func TestDerive(t *testing.T) {
	t.Parallel()

	s, out, _ := streams()

	material := []byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}

	c, err := aes.NewContext(material)
	require.NoError(t, err)

	logic.Derive(s, c, true)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+1+1+11)

	assert.Equal(t, "2b7e151628aed2a6abf7158809cf4f3c", lines[0])
	assert.Equal(t, "Nk=4 Nr=10 words=44", lines[2])
	assert.Equal(t, "round  1  a0fafe17 88542cb1 23a33939 2a6c7605", lines[4])
	assert.Equal(t, "round 10  d014f9a8 c9ee2589 e13f0cc8 b6630ca6", lines[13])
}
