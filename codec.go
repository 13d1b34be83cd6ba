package dlproof

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// pointEncoding rejects non-zero trailing bits so that every point has exactly
// one text form.
var pointEncoding = base64.StdEncoding.Strict()

// EncodePoint returns the standard base64 encoding of p's compressed form.
func (s *Suite) EncodePoint(p Point) string {
	return pointEncoding.EncodeToString(p.Encode())
}

// DecodePoint parses the output of EncodePoint.
func (s *Suite) DecodePoint(text string) (Point, error) {
	// the decoder would otherwise skip line breaks
	if strings.ContainsAny(text, "\r\n") {
		return nil, fmt.Errorf("%w: invalid base64 point: line break in input", ErrDecode)
	}

	b, err := pointEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 point: %s", ErrDecode, err)
	}

	if len(b) != s.curve.CompressedPointSize() {
		return nil, fmt.Errorf("%w: point bytes not %d", ErrDecode, s.curve.CompressedPointSize())
	}

	return s.curve.DecodeToPoint(b)
}

// ScalarToHex returns the lowercase hex encoding of the canonical scalar bytes.
func (s *Suite) ScalarToHex(sc Scalar) string {
	return hex.EncodeToString(sc.Encode())
}

// ScalarFromHex parses a hex scalar. Values at or above the group order are
// reduced rather than rejected, so distinct inputs may yield the same scalar.
func (s *Suite) ScalarFromHex(text string) (Scalar, error) {
	// only the lowercase form produced by ScalarToHex is accepted
	if strings.ContainsAny(text, "ABCDEF") {
		return nil, fmt.Errorf("%w: invalid hex: uppercase digit", ErrDecode)
	}

	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex: %s", ErrDecode, err)
	}

	if len(b) != s.curve.ScalarSize() {
		return nil, fmt.Errorf("%w: scalar not %d bytes", ErrDecode, s.curve.ScalarSize())
	}

	return s.curve.ScalarFromBytes(b)
}
