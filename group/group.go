package group

import (
	"math/big"
)

// Point represents an element of a cryptographic group, typically a point
// on an elliptic curve. Points support addition, subtraction, negation,
// and scalar multiplication by arbitrary non-negative integers.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// The identity element (zero point, point at infinity) is the additive
// identity: P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to k*p and returns it. The exponent k
	// may be any non-negative integer; the implementation reduces it
	// modulo the group order internally.
	ScalarMult(k *big.Int, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical fixed-width byte representation of the
	// point. The encoding must be stable: signatures only verify if both
	// sides produce identical bytes for identical points.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data does not encode a valid group element.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a cryptographic group suitable for Schnorr-style
// signatures. It provides a factory for points, access to the group's
// generator, the curve's numeric constants, and the canonical encoding
// of field elements.
//
// Scalars are plain non-negative big integers rather than a dedicated
// field type: the signature protocol works with raw, unreduced exponents
// and applies the two relevant moduli itself ([Group.Order] inside
// scalar multiplication, [Group.ScalarOrder] when canonicalizing a
// signature scalar).
//
// A Group implementation encapsulates all curve-specific details,
// allowing the signature protocol to be generic over different curves.
type Group interface {
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// Modulus returns the prime modulus of the underlying field.
	Modulus() *big.Int
	// Order returns the order of the prime-order subgroup generated by
	// the base point. Scalar multiplication is effectively computed
	// modulo this value.
	Order() *big.Int
	// ScalarOrder returns the cofactor-adjusted group order used to
	// canonicalize signature scalars. For a curve with cofactor c this
	// is c*Order().
	ScalarOrder() *big.Int
	// ScalarBytes returns the canonical fixed-width encoding of the
	// field element represented by k (k reduced into the field).
	// Returns an error if k is nil or negative.
	ScalarBytes(k *big.Int) ([]byte, error)
}
