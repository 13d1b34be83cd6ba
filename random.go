package dlproof

import (
	"crypto/rand"
	"io"
)

// RandomScalar reads 64 fresh bytes of entropy and reduces them modulo the
// group order. It panics if the entropy source fails.
func (s *Suite) RandomScalar() Scalar {
	r := s.nonces
	if r == nil {
		r = rand.Reader
	}

	var b [64]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		panic(err)
	}

	return wideReduce(s.curve, b[:])
}
