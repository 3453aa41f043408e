// Package sha512256 provides the default hasher: SHA-512/256, the same
// algorithm the teacher's canonical CONIKS hasher (crypto/hasher/coniks)
// wraps from the standard library. It fixes N = 32, giving a 256-bit tree
// depth.
package sha512256

import (
	"crypto/sha512"

	"github.com/sparsemt/smt-go/hasher"
)

// ID is the registered name of this hasher.
const ID = "sha512-256"

func init() {
	hasher.Register(ID, New)
}

type sha512256Hasher struct{}

// New returns a Hasher backed by stdlib SHA-512/256.
func New() hasher.Hasher {
	return sha512256Hasher{}
}

func (sha512256Hasher) ID() string {
	return ID
}

func (sha512256Hasher) Size() int {
	return sha512.Size256
}

func (h sha512256Hasher) New() hasher.State {
	return sha512.New512_256()
}

func (h sha512256Hasher) Digest(ms ...[]byte) []byte {
	s := h.New()
	for _, m := range ms {
		s.Write(m)
	}
	return s.Sum(nil)
}
