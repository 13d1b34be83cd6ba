// Package ristretto255 implements types.Curve for the ristretto255 group on
// top of github.com/gtank/ristretto255.
package ristretto255

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/gtank/ristretto255"

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

// order is l = 2^252 + 27742317777372353535851937790883648493.
var order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

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
	return &PointImpl{
		inner: ristretto255.NewElement().Base(),
	}
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	s, err := c.ScalarFromUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return s
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

	return &ScalarImpl{
		inner: ristretto255.NewScalar().FromUniformBytes(b),
	}, nil
}

// ScalarFromBytes interprets b as a little-endian integer and reduces it
// modulo l. Out-of-range inputs are accepted.
func (c *CurveImpl) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", types.ErrDecode, scalarSize, len(b))
	}

	// a 32-byte value zero-extended to 64 bytes reduces to itself mod l
	var wide [64]byte
	copy(wide[:scalarSize], b)
	return c.ScalarFromUniformBytes(wide[:])
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != pointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", types.ErrDecode, pointSize, len(b))
	}

	e := ristretto255.NewElement()
	if err := e.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidPoint, err)
	}

	return &PointImpl{
		inner: e,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	return &PointImpl{
		inner: ristretto255.NewElement().ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	return &PointImpl{
		inner: ristretto255.NewElement().ScalarMult(ss.inner, pp.inner),
	}
}

type ScalarImpl struct {
	inner *ristretto255.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	return &ScalarImpl{
		inner: ristretto255.NewScalar().Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	return &ScalarImpl{
		inner: ristretto255.NewScalar().Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	return &ScalarImpl{
		inner: ristretto255.NewScalar().Multiply(s.inner, ss.inner),
	}
}

// Inverse is variable time. It is only used outside the proving path.
func (s *ScalarImpl) Inverse() Scalar {
	le := s.Encode()
	inv := new(big.Int).ModInverse(new(big.Int).SetBytes(reverse(le)), order)
	if inv == nil {
		panic("scalar is not invertible")
	}

	var b [scalarSize]byte
	inv.FillBytes(b[:])
	r, err := new(CurveImpl).ScalarFromBytes(reverse(b[:]))
	if err != nil {
		panic(err)
	}

	return r
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Encode(nil)
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(ristretto255.NewScalar()) == 1
}

type PointImpl struct {
	inner *ristretto255.Element
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: ristretto255.NewElement().Add(p.inner, ristretto255.NewElement()),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	return &PointImpl{
		inner: ristretto255.NewElement().Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	return &PointImpl{
		inner: ristretto255.NewElement().Subtract(p.inner, pp.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}

	return &PointImpl{
		inner: ristretto255.NewElement().ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Encode(nil)
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(ristretto255.NewElement()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}

func reverse(in []byte) []byte {
	out := make([]byte, len(in))
	for i := range in {
		out[len(in)-1-i] = in[i]
	}
	return out
}
