package dlproof

import (
	"bytes"
	"fmt"
)

// Serialize encodes the proof as enc(X) || enc(R) || enc(s).
func (p *Proof) Serialize() []byte {
	b := append(p.PublicKey.Encode(), p.Commitment.Encode()...)
	b = append(b, p.Response.Encode()...)
	return b
}

// Deserialize decodes the proof for the given curve, which must match the one
// used by the prover. Points are decoded strictly; the response is reduced
// modulo the group order like ScalarFromHex.
func (p *Proof) Deserialize(curve Curve, in []byte) error {
	reader := bytes.NewBuffer(in)

	pointLen := curve.CompressedPointSize()
	scalarLen := curve.ScalarSize()

	if len(in) < 2*pointLen+scalarLen {
		return errInputBytesTooShort
	}

	if len(in) > 2*pointLen+scalarLen {
		return fmt.Errorf("%w: %d trailing bytes", ErrDecode, len(in)-2*pointLen-scalarLen)
	}

	var err error
	p.PublicKey, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return fmt.Errorf("public point: %w", err)
	}

	p.Commitment, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return fmt.Errorf("commitment: %w", err)
	}

	p.Response, err = curve.ScalarFromBytes(reader.Next(scalarLen))
	if err != nil {
		return fmt.Errorf("response: %w", err)
	}

	return nil
}
