package aes

import (
	"encoding/hex"
	"fmt"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// Nb is the number of 32-bit columns in the state.
	Nb = 4
)

// Word is one 32-bit column of the key schedule, most significant byte first.
type Word [4]byte

// String returns the word as eight hex digits, the notation used by FIPS-197.
func (w Word) String() string {
	return hex.EncodeToString(w[:])
}

// KeyBytes returns the key length in bytes for a key size in bits.
func KeyBytes(bits int) (int, error) {
	switch bits {
	case 128, 192, 256:
		return bits / 8, nil
	default:
		return 0, fmt.Errorf("%w: %d bits (must be 128, 192 or 256)", ErrInvalidKeySize, bits)
	}
}

// Schedule is an expanded AES key: Nb*(Nr+1) words, read-only once built.
// It is safe for concurrent use.
type Schedule struct {
	words  []Word
	rounds [][BlockSize]byte
	nk     int
	nr     int
}

// Expand runs the FIPS-197 key expansion over a 16, 24 or 32 byte key.
func Expand(key []byte) (*Schedule, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes (must be 16, 24 or 32)", ErrInvalidKeySize, len(key))
	}

	nk := len(key) / 4
	nr := nk + 6
	words := make([]Word, Nb*(nr+1))

	for i := range nk {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < len(words); i++ {
		temp := words[i-1]

		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}

		for j := range temp {
			words[i][j] = words[i-nk][j] ^ temp[j]
		}
	}

	rounds := make([][BlockSize]byte, nr+1)

	for i, w := range words {
		copy(rounds[i/Nb][(i%Nb)*4:], w[:])
	}

	return &Schedule{words: words, rounds: rounds, nk: nk, nr: nr}, nil
}

// rotWord turns [a0,a1,a2,a3] into [a1,a2,a3,a0].
func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	return Word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// Rounds returns Nr.
func (s *Schedule) Rounds() int { return s.nr }

// KeyWords returns Nk.
func (s *Schedule) KeyWords() int { return s.nk }

// Len returns the number of words in the schedule.
func (s *Schedule) Len() int { return len(s.words) }

// Word returns word i of the schedule.
func (s *Schedule) Word(i int) Word { return s.words[i] }

// RoundKey returns the 16-byte key added in the given round, 0 through Nr.
func (s *Schedule) RoundKey(round int) [BlockSize]byte {
	return s.rounds[round]
}

// Bytes returns a copy of the whole schedule flattened into bytes,
// the layout handed to block-parallel backends.
func (s *Schedule) Bytes() []byte {
	out := make([]byte, 0, len(s.words)*4)

	for _, w := range s.words {
		out = append(out, w[:]...)
	}

	return out
}
