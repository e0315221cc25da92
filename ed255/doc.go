// Package ed255 implements [group.Group] for the edwards25519 curve,
// backed by filippo.io/edwards25519.
//
// It exists alongside the bjj package to show the signature scheme is
// generic over its group collaborator; any twisted Edwards group with a
// fixed-width canonical encoding works.
//
// Points encode in the curve's standard 32-byte compressed form and
// field elements in 32-byte little-endian order, matching the curve's
// native conventions. Note that signatures produced over this group are
// NOT RFC 8032 Ed25519 signatures: the nonce derivation and challenge
// hash follow the scheme in package eddsa instead.
package ed255
