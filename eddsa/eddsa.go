package eddsa

import (
	"github.com/f3rmion/jubsig/group"
)

// Scheme binds a group collaborator, a base point, and a hash primitive
// into a signing/verification protocol instance.
//
// A Scheme is immutable after construction and safe for concurrent use:
// signing and verification are pure computations over their inputs.
type Scheme struct {
	group  group.Group
	base   group.Point
	hasher Hasher
}

// New creates a Scheme over g using the group's standard generator and
// SHA-256 as the hash primitive.
func New(g group.Group) *Scheme {
	return &Scheme{
		group:  g,
		base:   g.Generator(),
		hasher: SHA256Hasher{},
	}
}

// WithGenerator returns a copy of the scheme that uses base instead of
// the group's standard generator. Signer and verifier must agree on the
// base point.
func (s *Scheme) WithGenerator(base group.Point) *Scheme {
	return &Scheme{
		group:  s.group,
		base:   s.group.NewPoint().Set(base),
		hasher: s.hasher,
	}
}

// WithHasher returns a copy of the scheme that uses h as the hash
// primitive. Signer and verifier must agree on the hasher; signatures
// made under one hasher do not verify under another.
func (s *Scheme) WithHasher(h Hasher) *Scheme {
	return &Scheme{
		group:  s.group,
		base:   s.base,
		hasher: h,
	}
}

// Group returns the group collaborator the scheme operates over.
func (s *Scheme) Group() group.Group {
	return s.group
}

// Generator returns a copy of the scheme's base point.
func (s *Scheme) Generator() group.Point {
	return s.group.NewPoint().Set(s.base)
}
