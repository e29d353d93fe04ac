package aes_test

import (
	"encoding/hex"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/paes/pkg/aes"
)

func hexOf(b []byte) string { return hex.EncodeToString(b) }

func state(t *testing.T, s string) aes.State {
	t.Helper()

	var st aes.State

	require.Len(t, s, 2*aes.BlockSize)
	copy(st[:], unhex(t, s))

	return st
}

// The first round of the FIPS-197 Appendix B cipher example, stage by stage.
func TestFirstRoundTrace(t *testing.T) {
	t.Parallel()

	sched, err := aes.Expand(unhex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	require.NoError(t, err)

	s := state(t, "3243f6a8885a308d313198a2e0370734")

	rk := sched.RoundKey(0)
	s.AddRoundKey(&rk)
	require.Equal(t, "193de3bea0f4e22b9ac68d2ae9f84808", hexOf(s[:]))

	s.SubBytes()
	require.Equal(t, "d42711aee0bf98f1b8b45de51e415230", hexOf(s[:]))

	s.ShiftRows()
	require.Equal(t, "d4bf5d30e0b452aeb84111f11e2798e5", hexOf(s[:]))

	s.MixColumns()
	require.Equal(t, "046681e5e0cb199a48f8d37a2806264c", hexOf(s[:]))

	rk = sched.RoundKey(1)
	s.AddRoundKey(&rk)
	require.Equal(t, "a49c7ff2689f352b6b5bea43026a5049", hexOf(s[:]))

	// Walk it back.
	s.AddRoundKey(&rk)
	s.InvMixColumns()
	require.Equal(t, "d4bf5d30e0b452aeb84111f11e2798e5", hexOf(s[:]))

	s.InvShiftRows()
	require.Equal(t, "d42711aee0bf98f1b8b45de51e415230", hexOf(s[:]))

	s.InvSubBytes()
	require.Equal(t, "193de3bea0f4e22b9ac68d2ae9f84808", hexOf(s[:]))
}

func TestStateLayout(t *testing.T) {
	t.Parallel()

	var s aes.State
	for i := range s {
		s[i] = byte(i)
	}

	for k := range aes.BlockSize {
		assert.Equal(t, byte(k), s.At(k%4, k/4))
	}

	s.ShiftRows()

	// Row r of column c comes from column (c+r) mod 4.
	for c := range aes.Nb {
		for r := range 4 {
			assert.Equal(t, byte(((c+r)%aes.Nb)*4+r), s.At(r, c), "row %d col %d", r, c)
		}
	}
}

func TestTransformsInvert(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))

	for range 100 {
		var s aes.State
		for i := range s {
			s[i] = byte(rng.UintN(256))
		}

		orig := s

		s.SubBytes()
		s.InvSubBytes()
		require.Equal(t, orig, s, "sub bytes")

		s.ShiftRows()
		s.InvShiftRows()
		require.Equal(t, orig, s, "shift rows")

		s.MixColumns()
		s.InvMixColumns()
		require.Equal(t, orig, s, "mix columns")

		var rk [aes.BlockSize]byte
		for i := range rk {
			rk[i] = byte(rng.UintN(256))
		}

		s.AddRoundKey(&rk)
		s.AddRoundKey(&rk)
		require.Equal(t, orig, s, "add round key")
	}
}

func TestMixColumnKnownColumns(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, out [4]byte }{
		{in: [4]byte{0xdb, 0x13, 0x53, 0x45}, out: [4]byte{0x8e, 0x4d, 0xa1, 0xbc}},
		{in: [4]byte{0xf2, 0x0a, 0x22, 0x5c}, out: [4]byte{0x9f, 0xdc, 0x58, 0x9d}},
		{in: [4]byte{0x01, 0x01, 0x01, 0x01}, out: [4]byte{0x01, 0x01, 0x01, 0x01}},
		{in: [4]byte{0xc6, 0xc6, 0xc6, 0xc6}, out: [4]byte{0xc6, 0xc6, 0xc6, 0xc6}},
		{in: [4]byte{0xd4, 0xd4, 0xd4, 0xd5}, out: [4]byte{0xd5, 0xd5, 0xd7, 0xd6}},
		{in: [4]byte{0x2d, 0x26, 0x31, 0x4c}, out: [4]byte{0x4d, 0x7e, 0xbd, 0xf8}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, aes.MixColumn(tt.in), "mix %x", tt.in)
		assert.Equal(t, tt.in, aes.InvMixColumn(tt.out), "inverse mix %x", tt.out)
	}
}

func TestSBoxIsPermutation(t *testing.T) {
	t.Parallel()

	seen := make(map[byte]bool, 256)

	for i := range 256 {
		b := byte(i)
		seen[aes.SBox(b)] = true

		require.Equal(t, b, aes.InvSBox(aes.SBox(b)))
		require.Equal(t, b, aes.SBox(aes.InvSBox(b)))
	}

	assert.Len(t, seen, 256)
	assert.Equal(t, byte(0x63), aes.SBox(0x00))
	assert.Equal(t, byte(0xed), aes.SBox(0x53))
}

func TestFieldArithmetic(t *testing.T) {
	t.Parallel()

	// FIPS-197 section 4.2 examples.
	assert.Equal(t, byte(0xc1), aes.Multiply(0x57, 0x83))
	assert.Equal(t, byte(0xfe), aes.Multiply(0x57, 0x13))
	assert.Equal(t, byte(0xae), aes.Xtime(0x57))
	assert.Equal(t, byte(0x47), aes.Xtime(0xae))
	assert.Equal(t, byte(0x8e), aes.Xtime(0x47))
	assert.Equal(t, byte(0x07), aes.Xtime(0x8e))

	for i := range 256 {
		a := byte(i)
		assert.Equal(t, aes.Xtime(a), aes.Multiply(a, 0x02))
		assert.Equal(t, a, aes.Multiply(a, 0x01))
		assert.Equal(t, byte(0), aes.Multiply(a, 0x00))
	}
}
