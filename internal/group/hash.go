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

package group

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Domain separation tags for the two hash oracles. Hp and Hs must never be
// confusable with one another or with the incremental transcript below.
const (
	tagHp         = "ZANO/L2S/Hp"
	tagHs         = "ZANO/L2S/Hs"
	tagTranscript = "ZANO/L2S/transcript"
)

func newTaggedHash(tag string) hash.Hash {
	h := sha3.New512()
	h.Write([]byte(tag))
	return h
}

// item is anything that can be absorbed into a hash: a Scalar, a Point, a
// slice of either, or raw bytes.
type item interface{}

func absorb(h hash.Hash, items ...item) {
	for _, it := range items {
		switch v := it.(type) {
		case *Scalar:
			h.Write(v.Bytes())
		case *Point:
			h.Write(v.Bytes())
		case []*Scalar:
			for _, s := range v {
				h.Write(s.Bytes())
			}
		case []*Point:
			for _, p := range v {
				h.Write(p.Bytes())
			}
		case []byte:
			h.Write(v)
		default:
			panic("group: unsupported item type absorbed into hash")
		}
	}
}

// sumToScalar reduces a 64-byte digest into a uniformly distributed scalar.
func sumToScalar(h hash.Hash) *Scalar {
	digest := h.Sum(nil)
	tmp := NewScalar()
	if _, err := tmp.s.SetUniformBytes(digest); err != nil {
		// SetUniformBytes only fails on a wrong-length input, and sha3.New512
		// always produces 64 bytes; this can only be a programming error.
		panic(err)
	}
	return tmp
}

// Hs is the one-shot hash-to-scalar oracle. It absorbs a fixed domain tag
// followed by every item passed to it, in order.
func Hs(items ...item) *Scalar {
	h := newTaggedHash(tagHs)
	absorb(h, items...)
	return sumToScalar(h)
}

// Hp is the hash-to-point oracle. It uses try-and-increment: hash the
// domain tag, the input point, and an incrementing counter until the
// resulting bytes decompress to a valid curve point, then clears the
// cofactor so the result lies in the prime-order subgroup with unknown
// discrete log relative to G.
func Hp(p *Point) *Point {
	for counter := uint32(0); ; counter++ {
		h := newTaggedHash(tagHp)
		absorb(h, p)
		h.Write([]byte{byte(counter), byte(counter >> 8), byte(counter >> 16), byte(counter >> 24)})
		digest := h.Sum(nil)

		candidate, err := SetCompressedBytes(digest[:32])
		if err != nil {
			continue
		}
		cleared := edwardsMultByCofactor(candidate)
		if cleared.IsIdentity() {
			// Reject the vanishingly unlikely case that clears to the
			// identity; try the next counter value.
			continue
		}
		return cleared
	}
}

// edwardsMultByCofactor clears the cofactor of a decompressed point,
// guaranteeing membership in the prime-order subgroup.
func edwardsMultByCofactor(p *Point) *Point {
	r := p.p.MultByCofactor(p.p)
	return &Point{p: r}
}

// Transcript is the incremental hash-to-scalar accumulator described by the
// core's transcript discipline: repeated calls to Sum finalize the current
// state into a challenge without resetting it, so further absorptions
// build on everything hashed so far. This mirrors the non-resetting
// semantics of Go's hash.Hash.Sum, which never mutates the underlying
// hash state.
type Transcript struct {
	h hash.Hash
}

// NewTranscript starts a fresh transcript accumulator.
func NewTranscript() *Transcript {
	return &Transcript{h: newTaggedHash(tagTranscript)}
}

// Reserve is a documentation-only capacity hint; the underlying hash.Hash
// has no notion of preallocation, so this is a no-op kept for symmetry with
// the hash oracle interface described by the core design.
func (t *Transcript) Reserve(int) {}

// AddScalar absorbs a single scalar.
func (t *Transcript) AddScalar(s *Scalar) { absorb(t.h, s) }

// AddPoint absorbs a single point.
func (t *Transcript) AddPoint(p *Point) { absorb(t.h, p) }

// AddPoints absorbs a sequence of points in order.
func (t *Transcript) AddPoints(ps []*Point) { absorb(t.h, ps) }

// Sum finalizes the current transcript state into a scalar challenge. The
// transcript is left untouched and may be extended with further
// absorptions afterwards, per the core's transcript discipline.
func (t *Transcript) Sum() *Scalar { return sumToScalar(t.h) }
