// Package dlproof implements a non-interactive Schnorr proof of knowledge of a
// discrete logarithm, bound to an application message with the Fiat-Shamir
// transform.
//
// A prover holding a secret scalar x publishes X = x*G together with a
// commitment R = r*G and a response s = r + c*x, where the challenge
// c = H(X || R || message) is reduced from a 512-bit digest. A verifier accepts
// iff s*G == R + c*X.
//
// The package-level functions use DefaultSuite, which is ristretto255 with
// SHA-512. Points travel as standard base64 and scalars as lowercase hex.
package dlproof

import (
	"github.com/athanorlabs/go-dlproof/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

// Proof is a proof that the creator knows the discrete log of PublicKey.
type Proof struct {
	PublicKey  Point
	Commitment Point
	Response   Scalar
}

// CreateProof proves knowledge of secret bound to message with the default
// suite, returning the encoded public point, commitment and response.
func CreateProof(secret Scalar, message string) (pub, commit, response string) {
	return DefaultSuite().CreateProof(secret, message)
}

// VerifyProof verifies an encoded proof against message with the default suite.
// Malformed input returns an error wrapping ErrDecode or ErrInvalidPoint; a
// well-formed proof that does not verify returns false and a nil error.
func VerifyProof(pub, commit, response, message string) (bool, error) {
	return DefaultSuite().VerifyProof(pub, commit, response, message)
}

func EncodePoint(p Point) string {
	return DefaultSuite().EncodePoint(p)
}

func DecodePoint(text string) (Point, error) {
	return DefaultSuite().DecodePoint(text)
}

func ScalarToHex(s Scalar) string {
	return DefaultSuite().ScalarToHex(s)
}

func ScalarFromHex(text string) (Scalar, error) {
	return DefaultSuite().ScalarFromHex(text)
}

// RandomScalar returns a fresh uniformly random scalar from the OS CSPRNG.
func RandomScalar() Scalar {
	return DefaultSuite().RandomScalar()
}

// ComputeChallenge returns the Fiat-Shamir challenge for X, R and message.
func ComputeChallenge(X, R Point, message string) Scalar {
	return DefaultSuite().ComputeChallenge(X, R, []byte(message))
}
