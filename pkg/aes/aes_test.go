package aes_test

import (
	"bytes"
	stdaes "crypto/aes"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/yawning/bsaes.git"

	"github.com/idelchi/paes/pkg/aes"
)

// BlockVector is a single-block known answer from testdata/blocks.yml.
type BlockVector struct {
	Name       string `yaml:"name"`
	Key        string `yaml:"key"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

func load[T any](t *testing.T, path string) []T {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []T
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out)

	return out
}

func unhex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func TestKnownAnswers(t *testing.T) {
	t.Parallel()

	for _, v := range load[BlockVector](t, "testdata/blocks.yml") {
		t.Run(v.Name, func(t *testing.T) {
			t.Parallel()

			require := require.New(t)

			c, err := aes.NewContext(unhex(t, v.Key))
			require.NoError(err)

			pt := unhex(t, v.Plaintext)
			ct := unhex(t, v.Ciphertext)

			got := make([]byte, aes.BlockSize)
			require.NoError(c.CryptBlock(aes.Encrypt, got, pt))
			require.Equal(ct, got, "encrypt")

			require.NoError(c.CryptBlock(aes.Decrypt, got, ct))
			require.Equal(pt, got, "decrypt")
		})
	}
}

func TestInPlace(t *testing.T) {
	t.Parallel()

	v := load[BlockVector](t, "testdata/blocks.yml")[0]

	c, err := aes.NewContext(unhex(t, v.Key))
	require.NoError(t, err)

	buf := unhex(t, v.Plaintext)
	c.Encrypt(buf, buf)
	assert.Equal(t, v.Ciphertext, hex.EncodeToString(buf))

	c.Decrypt(buf, buf)
	assert.Equal(t, v.Plaintext, hex.EncodeToString(buf))
}

func TestRoundTripAllKeySizes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	for _, bits := range []int{128, 192, 256} {
		n, err := aes.KeyBytes(bits)
		require.NoError(t, err)

		key := make([]byte, n)
		for i := range key {
			key[i] = byte(rng.UintN(256))
		}

		c, err := aes.NewContext(key)
		require.NoError(t, err)

		src := make([]byte, 64*aes.BlockSize)
		for i := range src {
			src[i] = byte(rng.UintN(256))
		}

		ct := make([]byte, len(src))
		require.NoError(t, c.CryptBlocks(aes.Encrypt, ct, src))
		assert.NotEqual(t, src, ct)

		pt := make([]byte, len(src))
		require.NoError(t, c.CryptBlocks(aes.Decrypt, pt, ct))
		assert.Equal(t, src, pt, "%d-bit key", bits)
	}
}

func TestBlocksAreIndependent(t *testing.T) {
	t.Parallel()

	c, err := aes.NewContext(make([]byte, 16))
	require.NoError(t, err)

	src := bytes.Repeat([]byte("0123456789abcdef"), 3)
	dst := make([]byte, len(src))
	require.NoError(t, c.CryptBlocks(aes.Encrypt, dst, src))

	assert.Equal(t, dst[:16], dst[16:32])
	assert.Equal(t, dst[:16], dst[32:])
}

func TestMatchesReferenceImplementations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))

	for _, size := range []int{16, 24, 32} {
		for range 20 {
			key := make([]byte, size)
			block := make([]byte, aes.BlockSize)

			for i := range key {
				key[i] = byte(rng.UintN(256))
			}

			for i := range block {
				block[i] = byte(rng.UintN(256))
			}

			ours, err := aes.NewContext(key)
			require.NoError(t, err)

			std, err := stdaes.NewCipher(key)
			require.NoError(t, err)

			bs, err := bsaes.NewCipher(key)
			require.NoError(t, err)

			got := make([]byte, aes.BlockSize)
			want := make([]byte, aes.BlockSize)
			sliced := make([]byte, aes.BlockSize)

			ours.Encrypt(got, block)
			std.Encrypt(want, block)
			bs.Encrypt(sliced, block)

			require.Equal(t, want, got, "stdlib encrypt, key %x", key)
			require.Equal(t, sliced, got, "bitsliced encrypt, key %x", key)

			ours.Decrypt(got, block)
			std.Decrypt(want, block)
			require.Equal(t, want, got, "stdlib decrypt, key %x", key)
		}
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := aes.NewContext(make([]byte, 15))
	require.ErrorIs(t, err, aes.ErrInvalidKeySize)

	_, err = aes.KeyBytes(64)
	require.ErrorIs(t, err, aes.ErrInvalidKeySize)

	c, err := aes.NewContext(make([]byte, 16))
	require.NoError(t, err)

	dst := bytes.Repeat([]byte{0xaa}, 48)
	err = c.CryptBlocks(aes.Encrypt, dst, make([]byte, 33))
	require.ErrorIs(t, err, aes.ErrShortBlock)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 48), dst, "nothing written on rejected input")

	err = c.CryptBlocks(aes.Encrypt, make([]byte, 16), make([]byte, 32))
	require.ErrorIs(t, err, aes.ErrShortBlock)

	err = c.CryptBlock(aes.Decrypt, dst, make([]byte, 15))
	require.ErrorIs(t, err, aes.ErrShortBlock)

	err = c.CryptBlocks(aes.Direction(9), dst, make([]byte, 16))
	require.ErrorIs(t, err, aes.ErrInvalidDirection)

	require.NoError(t, c.CryptBlocks(aes.Encrypt, nil, nil))
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want aes.Direction
		err  bool
	}{
		{in: "encrypt", want: aes.Encrypt},
		{in: "Decrypt", want: aes.Decrypt},
		{in: " ENCRYPT ", want: aes.Encrypt},
		{in: "cbc", err: true},
		{in: "", err: true},
	}

	for _, tt := range tests {
		got, err := aes.ParseDirection(tt.in)
		if tt.err {
			require.ErrorIs(t, err, aes.ErrInvalidDirection, tt.in)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "decrypt", aes.Decrypt.String())
}

func BenchmarkCryptBlocks(b *testing.B) {
	for _, size := range []int{16, 24, 32} {
		c, err := aes.NewContext(make([]byte, size))
		if err != nil {
			b.Fatal(err)
		}

		buf := make([]byte, 1024)

		b.Run(fmt.Sprintf("AES-%d", size*8), func(b *testing.B) {
			b.SetBytes(int64(len(buf)))

			for b.Loop() {
				_ = c.CryptBlocks(aes.Encrypt, buf, buf)
			}
		})
	}
}
