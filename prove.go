package dlproof

// NewProof proves knowledge of secret, bound to message. A fresh nonce is
// drawn for every call.
func (s *Suite) NewProof(secret Scalar, message []byte) *Proof {
	X := s.curve.ScalarBaseMul(secret)

	r := s.RandomScalar()
	R := s.curve.ScalarBaseMul(r)

	c := s.ComputeChallenge(X, R, message)

	// s = r + c*x
	resp := r.Add(c.Mul(secret))

	return &Proof{
		PublicKey:  X,
		Commitment: R,
		Response:   resp,
	}
}

// CreateProof is NewProof with the result in its text wire form.
func (s *Suite) CreateProof(secret Scalar, message string) (pub, commit, response string) {
	p := s.NewProof(secret, []byte(message))
	return s.EncodePoint(p.PublicKey), s.EncodePoint(p.Commitment), s.ScalarToHex(p.Response)
}
