// Package group defines abstract interfaces for cryptographic groups
// used by the EdDSA-style signature scheme in package eddsa.
//
// This package provides two core interfaces that abstract over the
// mathematical operations needed for Schnorr-style signatures:
//
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory, constants and encodings for a concrete curve
//
// # Design Philosophy
//
// Point operations use a mutable receiver pattern for efficiency.
// Operations like Add and ScalarMult set the receiver to the result and
// return it, allowing method chaining while minimizing allocations:
//
//	// Compute R + h*A
//	rhs := g.NewPoint().ScalarMult(h, A)
//	rhs = g.NewPoint().Add(R, rhs)
//
// There is deliberately no Scalar interface. The signature protocol
// operates on raw big integers that are not kept reduced: the
// per-message nonce and the challenge are full 256-bit hash outputs,
// and the secret key is an unreduced random draw. Implementations
// reduce exponents modulo [Group.Order] inside ScalarMult; the protocol
// reduces the signature scalar modulo [Group.ScalarOrder] itself. Those
// two moduli differ by the curve's cofactor and must both be exposed.
//
// # Implementing a Group
//
// To implement these interfaces for a new twisted Edwards curve:
//
//  1. Create a Point type that wraps your curve point and implements [Point]
//  2. Create a Group type exposing the generator, the field modulus, the
//     subgroup order, the cofactor-adjusted order, and the canonical
//     field-element encoding
//
// See the bjj package (Baby Jubjub via gnark-crypto) and the ed255
// package (edwards25519) for complete implementations.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Canonical encodings are fixed-width and identical across all
//     invocations for the same value
//   - Invalid curve points are rejected in SetBytes
//   - Point operations are constant-time where possible
package group
