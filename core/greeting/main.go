// Package greeting picks the welcome sentence.
package greeting

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Fallback is returned when no sentence is available.
const Fallback = "The void is silent."

// Sentences is the default sentence list.
var Sentences = []string{
	"Don't work too hard. The sun will expand and engulf this CPU anyway.",
	"Everything you do today will eventually be overwritten.",
	"Nothing matters. Build good software anyway.",
	"That is all.",
	"The loop continues.",
	"The universe has not noticed.",
	"Try not to take it too seriously.",
}

// NewRand returns a generator seeded from the OS entropy source. If the
// entropy source is unreadable the generator falls back to a runtime-seeded
// source.
func NewRand() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// Pick returns a sentence of l chosen uniformly with r, or Fallback if l is
// empty.
func Pick(r *rand.Rand, l []string) string {
	if len(l) == 0 {
		return Fallback
	}
	return l[r.IntN(len(l))]
}

// Welcome returns a random sentence of l, or of Sentences if l is empty.
func Welcome(l []string) string {
	if len(l) == 0 {
		l = Sentences
	}
	return Pick(NewRand(), l)
}
