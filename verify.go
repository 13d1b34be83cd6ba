package dlproof

import (
	"fmt"
)

// Verify reports whether p is a valid proof for message, i.e. whether
// s*G == R + c*X with c recomputed from p.PublicKey, p.Commitment and message.
func (s *Suite) Verify(p *Proof, message []byte) bool {
	c := s.ComputeChallenge(p.PublicKey, p.Commitment, message)

	lhs := s.curve.ScalarBaseMul(p.Response)
	rhs := p.Commitment.Add(p.PublicKey.ScalarMul(c))
	return lhs.Equals(rhs)
}

// VerifyProof decodes a proof from its text wire form and verifies it against
// message. Decoding failures are returned as errors wrapping ErrDecode or
// ErrInvalidPoint; a proof that decodes but does not verify returns false.
func (s *Suite) VerifyProof(pub, commit, response, message string) (bool, error) {
	X, err := s.DecodePoint(pub)
	if err != nil {
		return false, fmt.Errorf("public point: %w", err)
	}

	R, err := s.DecodePoint(commit)
	if err != nil {
		return false, fmt.Errorf("commitment: %w", err)
	}

	resp, err := s.ScalarFromHex(response)
	if err != nil {
		return false, fmt.Errorf("response: %w", err)
	}

	return s.Verify(&Proof{
		PublicKey:  X,
		Commitment: R,
		Response:   resp,
	}, []byte(message)), nil
}
