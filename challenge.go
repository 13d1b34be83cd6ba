package dlproof

import (
	"crypto/sha512"
	"hash"

	"github.com/dchest/blake2b"
	"github.com/gtank/merlin"
	"golang.org/x/crypto/sha3"
)

// DefaultTranscriptLabel is the merlin domain separator of the
// "ristretto255-merlin" suite.
const DefaultTranscriptLabel = "dlproof-schnorr-v1"

// Challenger derives the Fiat-Shamir challenge scalar from the public point,
// the commitment and the message. It must be deterministic.
type Challenger interface {
	Name() string
	Challenge(curve Curve, X, R Point, message []byte) Scalar
}

// HashChallenger hashes enc(X) || enc(R) || message with a 512-bit hash and
// reduces the whole digest modulo the group order.
type HashChallenger struct {
	name    string
	newHash func() hash.Hash
}

var _ Challenger = &HashChallenger{}

// SHA512Challenger is the wire-compatible challenge derivation.
func SHA512Challenger() *HashChallenger {
	return &HashChallenger{name: "sha512", newHash: sha512.New}
}

func SHA3Challenger() *HashChallenger {
	return &HashChallenger{name: "sha3-512", newHash: sha3.New512}
}

func Blake2bChallenger() *HashChallenger {
	return &HashChallenger{name: "blake2b-512", newHash: blake2b.New512}
}

func (c *HashChallenger) Name() string {
	return c.name
}

func (c *HashChallenger) Challenge(curve Curve, X, R Point, message []byte) Scalar {
	h := c.newHash()
	h.Write(X.Encode())
	h.Write(R.Encode())
	h.Write(message)
	return wideReduce(curve, h.Sum(nil))
}

// TranscriptChallenger derives the challenge from a merlin transcript.
type TranscriptChallenger struct {
	label string
}

var _ Challenger = &TranscriptChallenger{}

func NewTranscriptChallenger(label string) *TranscriptChallenger {
	return &TranscriptChallenger{label: label}
}

func (c *TranscriptChallenger) Name() string {
	return "merlin"
}

func (c *TranscriptChallenger) Challenge(curve Curve, X, R Point, message []byte) Scalar {
	t := merlin.NewTranscript(c.label)
	t.AppendMessage([]byte("X"), X.Encode())
	t.AppendMessage([]byte("R"), R.Encode())
	t.AppendMessage([]byte("message"), message)
	return wideReduce(curve, t.ExtractBytes([]byte("challenge"), 64))
}

func wideReduce(curve Curve, wide []byte) Scalar {
	s, err := curve.ScalarFromUniformBytes(wide)
	if err != nil {
		panic(err)
	}

	return s
}

// ComputeChallenge returns the challenge for X, R and message under this suite.
func (s *Suite) ComputeChallenge(X, R Point, message []byte) Scalar {
	return s.challenger.Challenge(s.curve, X, R, message)
}
