package eddsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/jubsig/group"
)

// Signature is the (R, S) pair produced by Sign: R is the nonce point
// and S a scalar canonicalized modulo the group's scalar order.
// Immutable once produced.
type Signature struct {
	R group.Point
	S *big.Int
}

// Sign produces the signature of message under sk.
//
// Signing is deterministic: the nonce r = H(k, M) is derived from the
// secret and the message, so the same (key, message) pair always yields
// the same signature and a bad RNG can never cause nonce reuse. The
// challenge binds the nonce point, the public key and the message:
// h = H(R, A, M), and S = (r + k*h) mod E where E is the scalar order.
// r, h and k enter the arithmetic unreduced; only the final sum is
// reduced.
func (s *Scheme) Sign(sk *SecretKey, message []byte) (*Signature, error) {
	if sk == nil || sk.scalar == nil {
		return nil, errors.New("eddsa: nil secret key")
	}

	A := s.DerivePublic(sk)

	r, err := s.HashToInt(FieldInput(sk.scalar), RawInput(message))
	if err != nil {
		return nil, fmt.Errorf("eddsa: derive nonce: %w", err)
	}
	R := s.group.NewPoint().ScalarMult(r, s.base)

	h, err := s.HashToInt(PointInput(R), PointInput(A.point), RawInput(message))
	if err != nil {
		return nil, fmt.Errorf("eddsa: challenge: %w", err)
	}

	S := new(big.Int).Mul(sk.scalar, h)
	S.Add(r, S)
	S.Mod(S, s.group.ScalarOrder())

	return &Signature{R: R, S: S}, nil
}

// Verify reports whether sig is a valid signature of message under pk.
//
// It recomputes the challenge h = H(R, A, M) with byte-identical
// encodings and argument order as Sign, and checks the equation
//
//	base*S == R + pk*h
//
// which holds for genuine signatures by linearity of scalar
// multiplication. Verify never fails with an error: malformed inputs
// (nil components, negative S, encoding failures) yield false.
func (s *Scheme) Verify(pk *PublicKey, sig *Signature, message []byte) bool {
	if pk == nil || pk.point == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if sig.S.Sign() < 0 {
		return false
	}

	h, err := s.HashToInt(PointInput(sig.R), PointInput(pk.point), RawInput(message))
	if err != nil {
		return false
	}

	lhs := s.group.NewPoint().ScalarMult(sig.S, s.base)

	rhs := s.group.NewPoint().ScalarMult(h, pk.point)
	rhs = s.group.NewPoint().Add(sig.R, rhs)

	return lhs.Equal(rhs)
}

// EncodeSignature returns the wire form of sig: the canonical point
// encoding of R followed by S as a fixed-width big-endian integer sized
// to the scalar order.
func (s *Scheme) EncodeSignature(sig *Signature) ([]byte, error) {
	if sig == nil || sig.R == nil || sig.S == nil {
		return nil, errors.New("eddsa: nil signature")
	}
	if sig.S.Sign() < 0 || sig.S.Cmp(s.group.ScalarOrder()) >= 0 {
		return nil, errors.New("eddsa: signature scalar out of range")
	}
	sLen := (s.group.ScalarOrder().BitLen() + 7) / 8
	out := append([]byte(nil), sig.R.Bytes()...)
	buf := make([]byte, sLen)
	sig.S.FillBytes(buf)
	return append(out, buf...), nil
}

// ParseSignature decodes a signature produced by EncodeSignature.
// Returns an error if the point is not a valid group element or the
// scalar is not canonical (>= the scalar order).
func (s *Scheme) ParseSignature(data []byte) (*Signature, error) {
	pLen := len(s.base.Bytes())
	sLen := (s.group.ScalarOrder().BitLen() + 7) / 8
	if len(data) != pLen+sLen {
		return nil, fmt.Errorf("eddsa: signature length %d, want %d", len(data), pLen+sLen)
	}
	R, err := s.group.NewPoint().SetBytes(data[:pLen])
	if err != nil {
		return nil, fmt.Errorf("eddsa: parse signature point: %w", err)
	}
	S := new(big.Int).SetBytes(data[pLen:])
	if S.Cmp(s.group.ScalarOrder()) >= 0 {
		return nil, errors.New("eddsa: signature scalar out of range")
	}
	return &Signature{R: R, S: S}, nil
}

// VerifyBytes parses an encoded signature and verifies it. Malformed
// encodings are reported as invalid rather than as an error, so a
// verifier can treat any byte string uniformly.
func (s *Scheme) VerifyBytes(pk *PublicKey, sig []byte, message []byte) bool {
	parsed, err := s.ParseSignature(sig)
	if err != nil {
		return false
	}
	return s.Verify(pk, parsed, message)
}
