// Package ed25519 implements types.Curve for the prime-order subgroup of
// edwards25519. Decoding is strict: the y coordinate must be canonical and the
// point must have no torsion component.
package ed25519

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/athanorlabs/go-dlproof/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	pointSize  = 32
	scalarSize = 32
)

// minusOne is l-1, so that [minusOne]P + P = [l]P.
var minusOne = func() *edwards25519.Scalar {
	var b [scalarSize]byte
	b[0] = 1
	one, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return edwards25519.NewScalar().Negate(one)
}()

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "ed25519"
}

func (c *CurveImpl) CompressedPointSize() int {
	return pointSize
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	var b [scalarSize]byte
	binary.LittleEndian.PutUint32(b[:4], in)

	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("%w: uniform scalar input must be 64 bytes, got %d", types.ErrDecode, len(b))
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrDecode, err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

// ScalarFromBytes reduces a 32-byte little-endian value modulo l.
func (c *CurveImpl) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", types.ErrDecode, scalarSize, len(b))
	}

	var wide [64]byte
	copy(wide[:scalarSize], b)
	return c.ScalarFromUniformBytes(wide[:])
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != pointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", types.ErrDecode, pointSize, len(b))
	}

	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidPoint, err)
	}

	// SetBytes accepts non-canonical y coordinates
	if !bytes.Equal(p.Bytes(), b) {
		return nil, fmt.Errorf("%w: non-canonical edwards25519 encoding", types.ErrInvalidPoint)
	}

	if !inPrimeOrderSubgroup(p) {
		return nil, fmt.Errorf("%w: point has a torsion component", types.ErrInvalidPoint)
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func inPrimeOrderSubgroup(p *edwards25519.Point) bool {
	lp := new(edwards25519.Point).ScalarMult(minusOne, p)
	lp.Add(lp, p)
	return lp.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: edwards25519.NewScalar().Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: edwards25519.NewScalar().Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: edwards25519.NewScalar().Multiply(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Invert(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, pp.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}
