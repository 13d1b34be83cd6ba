package dlproof

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProofMessage is the text wire form of a proof together with the message it
// is bound to. Fields are not validated until the message is verified.
type ProofMessage struct {
	PubPoint   string `json:"pub_point"`
	Commitment string `json:"commitment"`
	Response   string `json:"response"`
	Message    string `json:"message"`
}

// NewProofMessage creates a proof for message with the default suite.
func NewProofMessage(secret Scalar, message string) *ProofMessage {
	return DefaultSuite().NewProofMessage(secret, message)
}

// Verify verifies m with the default suite.
func (m *ProofMessage) Verify() (bool, error) {
	return DefaultSuite().VerifyMessage(m)
}

func (s *Suite) NewProofMessage(secret Scalar, message string) *ProofMessage {
	pub, commit, response := s.CreateProof(secret, message)
	return &ProofMessage{
		PubPoint:   pub,
		Commitment: commit,
		Response:   response,
		Message:    message,
	}
}

func (s *Suite) VerifyMessage(m *ProofMessage) (bool, error) {
	return s.VerifyProof(m.PubPoint, m.Commitment, m.Response, m.Message)
}

// ParseProofMessage decodes a JSON ProofMessage. Unknown fields are rejected.
func ParseProofMessage(data []byte) (*ProofMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m ProofMessage
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: invalid proof message: %s", ErrDecode, err)
	}

	return &m, nil
}
