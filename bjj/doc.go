// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface for use with EdDSA-style signatures.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems and privacy-preserving applications.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto,
// providing a clean interface that satisfies [group.Group] and
// [group.Point].
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// and cofactor 8; signature scalars are canonicalized modulo 8 times the
// subgroup order, which [BJJ.ScalarOrder] exposes.
//
// # Encodings
//
// Points encode as gnark-crypto's 32-byte compressed form; field
// elements encode as 32-byte big-endian integers. These encodings feed
// the signature scheme's hash oracle and must never change.
//
// # Usage
//
// Create a BJJ group and use it with the signature scheme:
//
//	g := &bjj.BJJ{}
//	scheme := eddsa.New(g)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. Invalid point encodings are rejected in SetBytes.
package bjj
