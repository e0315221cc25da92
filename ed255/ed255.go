package ed255

import (
	"errors"
	"math/big"

	"filippo.io/edwards25519"

	"github.com/f3rmion/jubsig/group"
)

// encodedLen is the width of canonical point and field-element encodings.
const encodedLen = 32

var (
	// fieldModulus is 2^255 - 19.
	fieldModulus *big.Int
	// curveOrder is l = 2^252 + 27742317777372353535851937790883648493,
	// the order of the prime subgroup.
	curveOrder *big.Int
	// scalarOrder is 8 * l, the cofactor-adjusted group order.
	scalarOrder *big.Int
)

func init() {
	one := big.NewInt(1)
	fieldModulus = new(big.Int).Sub(new(big.Int).Lsh(one, 255), big.NewInt(19))

	tail, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("ed255: bad curve order constant")
	}
	curveOrder = new(big.Int).Add(new(big.Int).Lsh(one, 252), tail)
	scalarOrder = new(big.Int).Mul(curveOrder, big.NewInt(8))
}

// scalarFromInt reduces k modulo the subgroup order and converts it to
// an edwards25519 scalar. big.Int is big-endian, edwards25519 expects
// canonical little-endian bytes, so the buffer is reversed in between.
func scalarFromInt(k *big.Int) *edwards25519.Scalar {
	var buf [32]byte
	new(big.Int).Mod(k, curveOrder).FillBytes(buf[:])
	reverse(buf[:])
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		// Unreachable: the value is already reduced below l.
		panic("ed255: non-canonical reduced scalar")
	}
	return s
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Point represents a point on the edwards25519 curve. It implements
// [group.Point] by wrapping filippo.io/edwards25519.
type Point struct {
	inner *edwards25519.Point
}

func newPoint() *Point {
	return &Point{inner: edwards25519.NewIdentityPoint()}
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(aPoint.inner, bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Subtract(aPoint.inner, bPoint.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Negate(aPoint.inner)
	return p
}

// ScalarMult sets p to k * q and returns p. The exponent may be any
// non-negative integer; it is reduced modulo the subgroup order.
func (p *Point) ScalarMult(k *big.Int, q group.Point) group.Point {
	qPoint := q.(*Point)
	p.inner.ScalarMult(scalarFromInt(k), qPoint.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(aPoint.inner)
	return p
}

// Bytes returns the canonical 32-byte compressed encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(bPoint.inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Ed25519 implements [group.Group] for the edwards25519 curve.
//
// Ed25519 is a zero-sized type that provides access to edwards25519
// group operations. Create an instance with &Ed25519{} or new(Ed25519).
type Ed25519 struct{}

// NewPoint returns a new point initialized to the identity element.
func (g *Ed25519) NewPoint() group.Point {
	return newPoint()
}

// Generator returns the standard edwards25519 base point.
func (g *Ed25519) Generator() group.Point {
	return &Point{inner: edwards25519.NewGeneratorPoint()}
}

// Modulus returns the field prime 2^255 - 19.
func (g *Ed25519) Modulus() *big.Int {
	return new(big.Int).Set(fieldModulus)
}

// Order returns the prime subgroup order l.
func (g *Ed25519) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// ScalarOrder returns 8 * l, the full group order used to canonicalize
// signature scalars.
func (g *Ed25519) ScalarOrder() *big.Int {
	return new(big.Int).Set(scalarOrder)
}

// ScalarBytes returns the 32-byte little-endian encoding of k reduced
// into the field, following the curve's native byte order. Returns an
// error if k is nil or negative.
func (g *Ed25519) ScalarBytes(k *big.Int) ([]byte, error) {
	if k == nil {
		return nil, errors.New("ed255: nil field element")
	}
	if k.Sign() < 0 {
		return nil, errors.New("ed255: negative field element")
	}
	buf := make([]byte, encodedLen)
	new(big.Int).Mod(k, fieldModulus).FillBytes(buf)
	reverse(buf)
	return buf, nil
}
