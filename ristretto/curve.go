// Package ristretto is a second implementation of the ristretto255 group,
// backed by github.com/bwesterb/go-ristretto. It produces the same encodings
// as package ristretto255 and the two are interchangeable on the wire.
package ristretto

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/bwesterb/go-ristretto"

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

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "ristretto255"
}

func (c *CurveImpl) CompressedPointSize() int {
	return pointSize
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) BasePoint() Point {
	var p ristretto.Point
	return &PointImpl{
		inner: p.SetBase(),
	}
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	var s ristretto.Scalar
	return &ScalarImpl{
		inner: s.SetReduced(&b),
	}
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	var b [scalarSize]byte
	binary.LittleEndian.PutUint32(b[:4], in)

	s, err := c.ScalarFromBytes(b[:])
	if err != nil {
		panic(err)
	}

	return s
}

func (c *CurveImpl) ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("%w: uniform scalar input must be 64 bytes, got %d", types.ErrDecode, len(b))
	}

	var wide [64]byte
	copy(wide[:], b)

	var s ristretto.Scalar
	return &ScalarImpl{
		inner: s.SetReduced(&wide),
	}, nil
}

// ScalarFromBytes reduces the full 256-bit little-endian value modulo l.
// Scalar.SetBytes is avoided since it drops the top three bits.
func (c *CurveImpl) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", types.ErrDecode, scalarSize, len(b))
	}

	var wide [64]byte
	copy(wide[:scalarSize], b)

	var s ristretto.Scalar
	return &ScalarImpl{
		inner: s.SetReduced(&wide),
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != pointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", types.ErrDecode, pointSize, len(b))
	}

	var buf [pointSize]byte
	copy(buf[:], b)

	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, fmt.Errorf("%w: failed to decompress ristretto255 point", types.ErrInvalidPoint)
	}

	// every element has exactly one encoding
	if !bytes.Equal(p.Bytes(), b) {
		return nil, fmt.Errorf("%w: non-canonical ristretto255 encoding", types.ErrInvalidPoint)
	}

	return &PointImpl{
		inner: &p,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	var p ristretto.Point
	return &PointImpl{
		inner: p.ScalarMultBase(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	var r ristretto.Point
	return &PointImpl{
		inner: r.ScalarMult(pp.inner, ss.inner),
	}
}

type ScalarImpl struct {
	inner *ristretto.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	var r ristretto.Scalar
	return &ScalarImpl{
		inner: r.Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	var r ristretto.Scalar
	return &ScalarImpl{
		inner: r.Sub(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	var r ristretto.Scalar
	return &ScalarImpl{
		inner: r.Neg(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	var r ristretto.Scalar
	return &ScalarImpl{
		inner: r.Mul(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Inverse() Scalar {
	var r ristretto.Scalar
	return &ScalarImpl{
		inner: r.Inverse(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}
	return s.inner.Equals(ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	var zero ristretto.Scalar
	return s.inner.Equals(zero.SetZero())
}

type PointImpl struct {
	inner *ristretto.Point
}

func (p *PointImpl) Copy() Point {
	var r, zero ristretto.Point
	return &PointImpl{
		inner: r.Add(p.inner, zero.SetZero()),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	var r ristretto.Point
	return &PointImpl{
		inner: r.Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	var r ristretto.Point
	return &PointImpl{
		inner: r.Sub(p.inner, pp.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}

	var r ristretto.Point
	return &PointImpl{
		inner: r.ScalarMult(p.inner, ss.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	var zero ristretto.Point
	return p.inner.Equals(zero.SetZero())
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}

	return p.inner.Equals(pp.inner)
}
