// Package eddsa implements a deterministic EdDSA-style Schnorr signature
// scheme over a pluggable twisted Edwards group.
//
// The signer has two secret values:
//
//   - k, the secret key
//   - r, a per-(message,key) nonce
//
// and produces a signature of two values:
//
//   - R, the image of r*B for base point B
//   - S, the image of r + k*t, canonicalized modulo the group's scalar order
//
// where t = H(R, A, M) is the Fiat-Shamir challenge binding the nonce
// point, the public key A = k*B and the message. Verification checks
//
//	S*B == R + t*A
//
// which holds by linearity of scalar multiplication.
//
// # Deterministic Nonces
//
// The nonce is derived as r = H(k, M) rather than drawn from an RNG.
// The same (key, message) pair always yields the same signature, and
// distinct messages yield unpredictable, distinct nonces. Reusing a
// nonce across two messages would reveal the secret key; deterministic
// derivation removes that failure mode entirely. Signing therefore uses
// no randomness at all; only key generation touches the entropy source.
//
// # The Scalar-Hash Oracle
//
// Both the nonce and the challenge come from [Scheme.HashToInt], which
// hashes a sequence of typed inputs (field elements, group elements,
// raw bytes) over their canonical encodings, concatenated in argument
// order. The full 256-bit digest is used as an exponent without
// reduction; scalar multiplication reduces modulo the subgroup order
// internally, while the signature scalar S is explicitly reduced modulo
// the cofactor-adjusted order. This asymmetry is deliberate and must be
// preserved for compatibility with reference vectors.
//
// # Usage
//
//	scheme := eddsa.New(&bjj.BJJ{})
//
//	sk, err := scheme.GenerateKey(rand.Reader)
//	if err != nil {
//		return err
//	}
//	pk := scheme.DerivePublic(sk)
//
//	sig, err := scheme.Sign(sk, message)
//	if err != nil {
//		return err
//	}
//	ok := scheme.Verify(pk, sig, message)
//
// The scheme works over any [group.Group]; see the bjj and ed255
// packages for backends.
//
// # Concurrency
//
// Sign and Verify are pure, synchronous computations over immutable
// values; a Scheme may be shared freely across goroutines.
//
// # Security Considerations
//
// Key generation must be fed a cryptographically secure source such as
// crypto/rand.Reader. Secret keys are held as raw integers and never
// transmitted. Verify never panics or errors on malformed input; an
// off-curve nonce point or out-of-range scalar is simply invalid.
//
// Based on the EdDSA construction described in
// https://eprint.iacr.org/2015/677.pdf.
package eddsa
