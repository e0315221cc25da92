package eddsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/jubsig/group"
)

// SecretKey holds the signer's secret scalar. The scalar is kept as the
// raw sampled integer; arithmetic reduces it modulo the relevant orders
// where needed. A SecretKey is never transmitted.
type SecretKey struct {
	scalar *big.Int
}

// NewSecretKey wraps an externally supplied secret scalar. The value is
// copied. Returns an error if k is nil or negative.
func NewSecretKey(k *big.Int) (*SecretKey, error) {
	if k == nil {
		return nil, errors.New("eddsa: nil secret scalar")
	}
	if k.Sign() < 0 {
		return nil, errors.New("eddsa: negative secret scalar")
	}
	return &SecretKey{scalar: new(big.Int).Set(k)}, nil
}

// Scalar returns a copy of the raw secret integer.
func (sk *SecretKey) Scalar() *big.Int {
	return new(big.Int).Set(sk.scalar)
}

// PublicKey holds the signer's public curve point, always equal to
// base * secret for some secret scalar. Immutable once derived.
type PublicKey struct {
	point group.Point
}

// Point returns the public curve point.
func (pk *PublicKey) Point() group.Point {
	return pk.point
}

// Bytes returns the canonical encoding of the public point.
func (pk *PublicKey) Bytes() []byte {
	return pk.point.Bytes()
}

// Equal reports whether two public keys hold the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.point.Equal(other.point)
}

// GenerateKey draws a fresh secret key from rng, which must be a
// cryptographically secure source such as crypto/rand.Reader.
//
// It reads ceil(bits(order)/8)+1 bytes, one byte more than the subgroup
// order needs, and interprets them as a little-endian unsigned integer.
// The raw value is retained without range reduction. If the entropy
// source fails the error is returned as-is; there is no retry.
func (s *Scheme) GenerateKey(rng io.Reader) (*SecretKey, error) {
	nbytes := (s.group.Order().BitLen()+7)/8 + 1
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("eddsa: entropy source: %w", err)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return &SecretKey{scalar: new(big.Int).SetBytes(buf)}, nil
}

// DerivePublic returns the public key base * sk. It is a pure function
// of its inputs and never fails for an integer secret.
func (s *Scheme) DerivePublic(sk *SecretKey) *PublicKey {
	p := s.group.NewPoint().ScalarMult(sk.scalar, s.base)
	return &PublicKey{point: p}
}

// ParsePublicKey decodes a public key from its canonical point encoding.
// Returns an error if the data does not encode a valid group element.
func (s *Scheme) ParsePublicKey(data []byte) (*PublicKey, error) {
	p, err := s.group.NewPoint().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("eddsa: parse public key: %w", err)
	}
	return &PublicKey{point: p}, nil
}
