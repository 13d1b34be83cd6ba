package dlproof

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// withNonceReader returns a copy of s that draws nonces from r.
func withNonceReader(s *Suite, r io.Reader) *Suite {
	c := *s
	c.nonces = r
	return &c
}

// seededReader returns a deterministic stream for reproducible proofs.
func seededReader(seed string) io.Reader {
	h := sha3.NewShake256()
	h.Write([]byte(seed))
	return h
}

// repeatReader returns the same bytes on every read, so every nonce is equal.
type repeatReader struct {
	b [64]byte
}

func (r *repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b[i%len(r.b)]
	}
	return len(p), nil
}
