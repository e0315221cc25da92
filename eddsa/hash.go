package eddsa

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/jubsig/group"
)

// Hasher is the 256-bit hash primitive behind the scalar-hash oracle.
// Different implementations can provide different hash functions;
// signer and verifier must use the same one.
type Hasher interface {
	// Sum256 returns the 256-bit digest of data.
	Sum256(data []byte) [32]byte
}

// SHA256Hasher implements Hasher using SHA-256.
// This is the default hasher for general use.
type SHA256Hasher struct{}

// Sum256 implements Hasher.
func (SHA256Hasher) Sum256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Blake2bHasher implements Hasher using BLAKE2b-256.
type Blake2bHasher struct{}

// Sum256 implements Hasher.
func (Blake2bHasher) Sum256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// inputKind discriminates the closed set of value kinds the oracle
// accepts.
type inputKind uint8

const (
	inputField inputKind = iota
	inputPoint
	inputBytes
)

// Input is one value in a scalar-hash invocation: a field element, a
// group element, or raw message bytes. Construct values with
// [FieldInput], [PointInput] and [RawInput].
type Input struct {
	kind  inputKind
	num   *big.Int
	point group.Point
	raw   []byte
}

// FieldInput wraps an integer-valued field element.
func FieldInput(v *big.Int) Input {
	return Input{kind: inputField, num: v}
}

// PointInput wraps a group element.
func PointInput(p group.Point) Input {
	return Input{kind: inputPoint, point: p}
}

// RawInput wraps an opaque byte sequence, typically the message.
func RawInput(b []byte) Input {
	return Input{kind: inputBytes, raw: b}
}

// encode produces the canonical byte form of the input under g's
// encoding conventions.
func (in Input) encode(g group.Group) ([]byte, error) {
	switch in.kind {
	case inputField:
		return g.ScalarBytes(in.num)
	case inputPoint:
		if in.point == nil {
			return nil, errors.New("eddsa: nil group element")
		}
		return in.point.Bytes(), nil
	case inputBytes:
		return in.raw, nil
	default:
		return nil, fmt.Errorf("eddsa: unknown hash input kind %d", in.kind)
	}
}

// HashToInt is the scalar-hash oracle. It maps an ordered sequence of
// inputs to a single unbounded non-negative integer: the canonical
// encodings are concatenated in argument order, with no separators or
// length prefixes, hashed with the scheme's 256-bit hash, and the
// digest is read as a big-endian integer in [0, 2^256).
//
// No modular reduction happens here. Callers use the raw value directly
// as an exponent and rely on scalar multiplication reducing modulo the
// group order internally; only the final signature scalar is reduced,
// and that modulo [group.Group.ScalarOrder].
func (s *Scheme) HashToInt(inputs ...Input) (*big.Int, error) {
	var buf []byte
	for i, in := range inputs {
		enc, err := in.encode(s.group)
		if err != nil {
			return nil, fmt.Errorf("eddsa: encode hash input %d: %w", i, err)
		}
		buf = append(buf, enc...)
	}
	digest := s.hasher.Sum256(buf)
	return new(big.Int).SetBytes(digest[:]), nil
}
