package logic

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/idelchi/paes/pkg/aes"
)

// Derive prints the key material of c and, with schedule set, the expanded
// schedule, one round key of four words per line.
func Derive(s Streams, c *aes.Context, schedule bool) {
	sched := c.Schedule()

	// The first Nk words of the schedule are the key itself.
	fmt.Fprintln(s.Out, hex.EncodeToString(sched.Bytes()[:sched.KeyWords()*4]))

	if !schedule {
		return
	}

	fmt.Fprintf(s.Out, "\nNk=%d Nr=%d words=%d\n", sched.KeyWords(), sched.Rounds(), sched.Len())

	for round := 0; round <= sched.Rounds(); round++ {
		words := make([]string, aes.Nb)
		for i := range words {
			words[i] = sched.Word(round*aes.Nb + i).String()
		}

		fmt.Fprintf(s.Out, "round %2d  %s\n", round, strings.Join(words, " "))
	}
}
