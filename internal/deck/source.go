package deck

import (
	crand "crypto/rand"
	"fmt"
	mrand "math/rand/v2"
)

// Source is the randomness a deck shuffles with. *math/rand/v2.Rand and
// *math/rand.Rand both satisfy it; implementations must produce a uniform
// permutation.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
// It panics if the system entropy source cannot be read.
func NewSource() Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("deck: reading entropy: %v", err))
	}
	return mrand.New(mrand.NewChaCha8(seed))
}

// Seeded returns a deterministic source. Equal seeds give equal shuffles.
func Seeded(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
