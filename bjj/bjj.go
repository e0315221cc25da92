package bjj

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/jubsig/group"
)

// encodedLen is the width of canonical point and field-element encodings.
const encodedLen = 32

var (
	// fieldModulus is the BN254 scalar field prime, the field Baby Jubjub
	// is defined over.
	fieldModulus *big.Int
	// curveOrder is the Baby Jubjub prime subgroup order.
	// This is distinct from the BN254 scalar field order (Fr).
	curveOrder *big.Int
	// scalarOrder is cofactor * curveOrder, the modulus under which
	// signature scalars are canonicalized.
	scalarOrder *big.Int
)

func init() {
	curve := twistededwards.GetEdwardsCurve()
	fieldModulus = fr.Modulus()
	curveOrder = new(big.Int).Set(&curve.Order)

	var cofactor big.Int
	curve.Cofactor.BigInt(&cofactor)
	scalarOrder = new(big.Int).Mul(curveOrder, &cofactor)
}

// Point represents a point on the Baby Jubjub curve.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	var negB twistededwards.PointAffine
	negB.Neg(&bPoint.inner)
	p.inner.Add(&aPoint.inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// ScalarMult sets p to k * q and returns p. The exponent may be any
// non-negative integer; multiples of the subgroup order wrap to the
// identity.
func (p *Point) ScalarMult(k *big.Int, q group.Point) group.Point {
	qPoint := q.(*Point)
	p.inner.ScalarMultiplication(&qPoint.inner, k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed point encoding as a 32-byte slice.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if err := p.inner.Unmarshal(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// NewPoint returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewPoint() group.Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// Modulus returns the BN254 scalar field prime.
func (g *BJJ) Modulus() *big.Int {
	return new(big.Int).Set(fieldModulus)
}

// Order returns the order of the Baby Jubjub prime-order subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// ScalarOrder returns 8 * Order(), the full group order used to
// canonicalize signature scalars.
func (g *BJJ) ScalarOrder() *big.Int {
	return new(big.Int).Set(scalarOrder)
}

// ScalarBytes returns the 32-byte big-endian encoding of k reduced into
// the field. Returns an error if k is nil or negative.
func (g *BJJ) ScalarBytes(k *big.Int) ([]byte, error) {
	if k == nil {
		return nil, errors.New("bjj: nil field element")
	}
	if k.Sign() < 0 {
		return nil, errors.New("bjj: negative field element")
	}
	buf := make([]byte, encodedLen)
	new(big.Int).Mod(k, fieldModulus).FillBytes(buf)
	return buf, nil
}
