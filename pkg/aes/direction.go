package aes

import (
	"fmt"
	"strings"
)

// Direction selects the forward or inverse cipher.
type Direction int

const (
	// Encrypt runs the forward cipher.
	Encrypt Direction = iota
	// Decrypt runs the inverse cipher.
	Decrypt
)

// String returns "encrypt" or "decrypt".
func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "encrypt" or "decrypt" (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be encrypt or decrypt)", ErrInvalidDirection, s)
	}
}

// roundPolicy describes one direction of the cipher as data, so that a
// single loop drives both. A middle round runs stages in order, then mixes
// either before or after the round key is added.
type roundPolicy struct {
	stages      [2]func(*State)
	mix         func(*State)
	mixAfterKey bool
	// key maps a step in [0, nr] to the round key index used at that step.
	key func(nr, step int) int
}

//nolint:gochecknoglobals
var policies = [...]roundPolicy{
	Encrypt: {
		stages: [2]func(*State){(*State).SubBytes, (*State).ShiftRows},
		mix:    (*State).MixColumns,
		key:    func(_, step int) int { return step },
	},
	Decrypt: {
		stages:      [2]func(*State){(*State).InvShiftRows, (*State).InvSubBytes},
		mix:         (*State).InvMixColumns,
		mixAfterKey: true,
		key:         func(nr, step int) int { return nr - step },
	},
}

func (d Direction) policy() (*roundPolicy, error) {
	if d < Encrypt || d > Decrypt {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	return &policies[d], nil
}

// run applies all Nr+1 round-key additions of the policy to s.
func (p *roundPolicy) run(s *State, sched *Schedule) {
	nr := sched.nr

	s.AddRoundKey(&sched.rounds[p.key(nr, 0)])

	for step := 1; step < nr; step++ {
		p.stages[0](s)
		p.stages[1](s)

		if !p.mixAfterKey {
			p.mix(s)
		}

		s.AddRoundKey(&sched.rounds[p.key(nr, step)])

		if p.mixAfterKey {
			p.mix(s)
		}
	}

	p.stages[0](s)
	p.stages[1](s)
	s.AddRoundKey(&sched.rounds[p.key(nr, nr)])
}
