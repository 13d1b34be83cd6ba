package types

import "errors"

var (
	// ErrDecode is returned for input of the wrong length or shape.
	ErrDecode = errors.New("malformed encoding")
	// ErrInvalidPoint is returned for bytes that do not encode a group element.
	ErrInvalidPoint = errors.New("invalid group element")
)

// Curve is a prime-order group together with its scalar field.
type Curve interface {
	Name() string
	CompressedPointSize() int
	ScalarSize() int
	BasePoint() Point
	NewRandomScalar() Scalar
	ScalarFrom(uint32) Scalar
	// ScalarFromUniformBytes reduces 64 bytes modulo the group order.
	ScalarFromUniformBytes([]byte) (Scalar, error)
	// ScalarFromBytes reduces ScalarSize() bytes modulo the group order.
	ScalarFromBytes([]byte) (Scalar, error)
	DecodeToPoint([]byte) (Point, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Inverse() Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	ScalarMul(Scalar) Point
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}
