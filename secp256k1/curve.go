// Package secp256k1 implements types.Curve for secp256k1 on top of
// github.com/decred/dcrd/dcrec/secp256k1/v4.
//
// Points use the 33-byte SEC1 compressed encoding. The identity has no SEC1
// compressed form and is encoded as 33 zero bytes. Scalars are 32 bytes big
// endian.
package secp256k1

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-dlproof/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	pointSize  = 33
	scalarSize = 32
)

// twoTo256 is 2^256 mod n.
var twoTo256 = func() *secp256k1.ModNScalar {
	var b [scalarSize]byte
	b[15] = 0x01
	copy(b[16:], []byte{
		0x45, 0x51, 0x23, 0x19, 0x50, 0xb7, 0x5f, 0xc4,
		0x40, 0x2d, 0xa1, 0x73, 0x2f, 0xc9, 0xbe, 0xbf,
	})
	s := new(secp256k1.ModNScalar)
	s.SetBytes(&b)
	return s
}()

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "secp256k1"
}

func (c *CurveImpl) CompressedPointSize() int {
	return pointSize
}

func (c *CurveImpl) ScalarSize() int {
	return scalarSize
}

func (c *CurveImpl) BasePoint() Point {
	return c.ScalarBaseMul(c.ScalarFrom(1))
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
	s := new(secp256k1.ModNScalar)
	s.SetInt(in)
	return &ScalarImpl{
		inner: s,
	}
}

// ScalarFromUniformBytes interprets b as a 512-bit big-endian integer and
// reduces it modulo n.
func (c *CurveImpl) ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("%w: uniform scalar input must be 64 bytes, got %d", types.ErrDecode, len(b))
	}

	// hi*2^256 + lo
	hi := new(secp256k1.ModNScalar)
	hi.SetByteSlice(b[:scalarSize])
	lo := new(secp256k1.ModNScalar)
	lo.SetByteSlice(b[scalarSize:])

	s := new(secp256k1.ModNScalar).Mul2(hi, twoTo256)
	s.Add(lo)
	return &ScalarImpl{
		inner: s,
	}, nil
}

// ScalarFromBytes reduces a 32-byte big-endian value modulo n.
func (c *CurveImpl) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != scalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", types.ErrDecode, scalarSize, len(b))
	}

	s := new(secp256k1.ModNScalar)
	s.SetByteSlice(b)
	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != pointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", types.ErrDecode, pointSize, len(b))
	}

	if bytes.Equal(b, make([]byte, pointSize)) {
		return &PointImpl{}, nil
	}

	if b[0] != secp256k1.PubKeyFormatCompressedEven && b[0] != secp256k1.PubKeyFormatCompressedOdd {
		return nil, fmt.Errorf("%w: unknown point format 0x%02x", types.ErrInvalidPoint, b[0])
	}

	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidPoint, err)
	}

	p := new(PointImpl)
	pk.AsJacobian(&p.inner)
	return p, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	p := new(PointImpl)
	secp256k1.ScalarBaseMultNonConst(ss.inner, &p.inner)
	return p
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	return pp.ScalarMul(s)
}

type ScalarImpl struct {
	inner *secp256k1.ModNScalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Add2(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	neg := new(secp256k1.ModNScalar).NegateVal(ss.inner)
	return &ScalarImpl{
		inner: neg.Add(s.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).NegateVal(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Mul2(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).InverseValNonConst(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}
	return s.inner.Equals(ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

// PointImpl holds a Jacobian point. The zero value is the identity.
type PointImpl struct {
	inner secp256k1.JacobianPoint
}

func (p *PointImpl) Copy() Point {
	c := new(PointImpl)
	c.inner.Set(&p.inner)
	return c
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	r := new(PointImpl)
	secp256k1.AddNonConst(&p.inner, &pp.inner, &r.inner)
	return r
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	if pp.IsZero() {
		return p.Copy()
	}

	neg := new(PointImpl)
	neg.inner.Set(&pp.inner)
	neg.inner.ToAffine()
	neg.inner.Y.Negate(1).Normalize()
	return p.Add(neg)
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	r := new(PointImpl)
	secp256k1.ScalarMultNonConst(ss.inner, &p.inner, &r.inner)
	return r
}

func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return make([]byte, pointSize)
	}

	var affine secp256k1.JacobianPoint
	affine.Set(&p.inner)
	affine.ToAffine()
	return secp256k1.NewPublicKey(&affine.X, &affine.Y).SerializeCompressed()
}

// IsZero reports whether p is the point at infinity, which decred represents
// either with Z = 0 or with X = Y = 0.
func (p *PointImpl) IsZero() bool {
	x, y, z := p.inner.X, p.inner.Y, p.inner.Z
	x.Normalize()
	y.Normalize()
	z.Normalize()
	return (x.IsZero() && y.IsZero()) || z.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	return bytes.Equal(p.Encode(), pp.Encode())
}
