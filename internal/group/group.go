// Copyright © 2024 The ZANO Authors
//
// This file is part of ZANO.
//
// ZANO is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// ZANO is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Lesser General Public License for more
// details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ZANO. If not, see <http://www.gnu.org/licenses/>.

// Package group is the prime-order group collaborator that the L2S core
// treats as external (see the top-level spec's discussion of the group
// implementation being out of scope of the membership-proof logic itself).
// It wraps filippo.io/edwards25519 with the Scalar/Point surface the L2S
// generator and verifier need: uniform sampling, the field operations, the
// fixed base point, and the two hash oracles Hp and Hs.
package group

import (
	"crypto/rand"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

// Scalar is an element of Z/lZ, where l is the prime order of the
// edwards25519 group.
type Scalar struct {
	s *edwards25519.Scalar
}

// Point is an element of the prime-order edwards25519 group.
type Point struct {
	p *edwards25519.Point
}

// G is the fixed base point shared by every participant of the scheme.
var G = &Point{p: edwards25519.NewGeneratorPoint()}

// ErrZeroScalar is returned when an operation requiring a nonzero scalar
// (inversion) is attempted on zero. The core treats this as an internal
// invariant failure, never a protocol rejection (see the core design's
// concurrency & resource model).
var ErrZeroScalar = errors.New("group: scalar is zero")

// NewScalar returns the additive identity (zero).
func NewScalar() *Scalar { return &Scalar{s: edwards25519.NewScalar()} }

// One returns the multiplicative identity.
func One() *Scalar {
	one := edwards25519.NewScalar()
	var buf [64]byte
	buf[0] = 1
	// SetUniformBytes never fails for a 64-byte input.
	one.SetUniformBytes(buf[:])
	return &Scalar{s: one}
}

// RandomScalar draws a uniformly random scalar from a cryptographically
// secure source. Reuse of a sample across rounds or signers is forbidden by
// the caller's protocol discipline, not by this function.
func RandomScalar() (*Scalar, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, errors.Wrap(err, "group: reading randomness")
	}
	s := edwards25519.NewScalar()
	if _, err := s.SetUniformBytes(buf[:]); err != nil {
		return nil, errors.Wrap(err, "group: reducing randomness")
	}
	return &Scalar{s: s}, nil
}

// MustRandomScalar is RandomScalar, panicking on entropy-source failure.
// Entropy failures are not protocol errors; they are fatal to the process.
func MustRandomScalar() *Scalar {
	s, err := RandomScalar()
	if err != nil {
		panic(err)
	}
	return s
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.s.Equal(edwards25519.NewScalar()) == 1
}

// Equal reports whether s and t represent the same scalar.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equal(t.s) == 1
}

// Add returns s + t.
func (s *Scalar) Add(t *Scalar) *Scalar {
	r := edwards25519.NewScalar()
	r.Add(s.s, t.s)
	return &Scalar{s: r}
}

// Sub returns s - t.
func (s *Scalar) Sub(t *Scalar) *Scalar {
	r := edwards25519.NewScalar()
	r.Subtract(s.s, t.s)
	return &Scalar{s: r}
}

// Mul returns s * t.
func (s *Scalar) Mul(t *Scalar) *Scalar {
	r := edwards25519.NewScalar()
	r.Multiply(s.s, t.s)
	return &Scalar{s: r}
}

// Neg returns -s.
func (s *Scalar) Neg() *Scalar {
	r := edwards25519.NewScalar()
	r.Negate(s.s)
	return &Scalar{s: r}
}

// Inv returns the multiplicative inverse of s. It fails for a zero scalar:
// per the core design, scalar inversion of zero is an internal bug, not a
// recoverable protocol condition.
func (s *Scalar) Inv() (*Scalar, error) {
	if s.IsZero() {
		return nil, ErrZeroScalar
	}
	r := edwards25519.NewScalar()
	r.Invert(s.s)
	return &Scalar{s: r}, nil
}

// Div returns s / t, i.e. s * t^-1.
func (s *Scalar) Div(t *Scalar) (*Scalar, error) {
	inv, err := t.Inv()
	if err != nil {
		return nil, err
	}
	return s.Mul(inv), nil
}

// Bytes returns the fixed-width (32-byte) little-endian canonical encoding.
func (s *Scalar) Bytes() []byte {
	b := make([]byte, 32)
	copy(b, s.s.Bytes())
	return b
}

// SetCanonicalBytes decodes a 32-byte canonical scalar encoding.
func (s *Scalar) SetCanonicalBytes(b []byte) (*Scalar, error) {
	sc := edwards25519.NewScalar()
	if _, err := sc.SetCanonicalBytes(b); err != nil {
		return nil, errors.Wrap(err, "group: invalid scalar encoding")
	}
	return &Scalar{s: sc}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler so Scalars can be
// embedded directly in gob-encoded signature records.
func (s *Scalar) MarshalBinary() ([]byte, error) { return s.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(b []byte) error {
	sc, err := NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return err
	}
	*s = *sc
	return nil
}

// Clear overwrites the scalar's backing bytes, best-effort zeroization for
// exit paths that must not leave secret material resident in memory.
func (s *Scalar) Clear() {
	if s == nil || s.s == nil {
		return
	}
	zero := edwards25519.NewScalar()
	s.s.Set(zero)
}

// NewIdentityPoint returns the group identity (point at infinity).
func NewIdentityPoint() *Point { return &Point{p: edwards25519.NewIdentityPoint()} }

// IsIdentity reports whether p is the group identity.
func (p *Point) IsIdentity() bool {
	return p.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Equal reports whether p and q represent the same group element.
func (p *Point) Equal(q *Point) bool {
	return p.p.Equal(q.p) == 1
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	r := edwards25519.NewIdentityPoint()
	r.Add(p.p, q.p)
	return &Point{p: r}
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	r := edwards25519.NewIdentityPoint()
	r.Subtract(p.p, q.p)
	return &Point{p: r}
}

// ScalarMul returns s * p.
func (p *Point) ScalarMul(s *Scalar) *Point {
	r := edwards25519.NewIdentityPoint()
	r.ScalarMult(s.s, p.p)
	return &Point{p: r}
}

// ScalarBaseMul returns s * G.
func ScalarBaseMul(s *Scalar) *Point {
	r := edwards25519.NewIdentityPoint()
	r.ScalarBaseMult(s.s)
	return &Point{p: r}
}

// Bytes returns the 32-byte compressed encoding of p.
func (p *Point) Bytes() []byte {
	b := make([]byte, 32)
	copy(b, p.p.Bytes())
	return b
}

// SetCompressedBytes decompresses a 32-byte encoding into a point.
func SetCompressedBytes(b []byte) (*Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "group: invalid point encoding")
	}
	return &Point{p: p}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler so Points can be
// embedded directly in gob-encoded signature records.
func (p *Point) MarshalBinary() ([]byte, error) { return p.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Point) UnmarshalBinary(b []byte) error {
	pt, err := SetCompressedBytes(b)
	if err != nil {
		return err
	}
	*p = *pt
	return nil
}
