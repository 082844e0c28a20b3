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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarInverse(t *testing.T) {
	s := MustRandomScalar()
	inv, err := s.Inv()
	require.NoError(t, err)
	require.True(t, s.Mul(inv).Equal(One()))

	_, err = NewScalar().Inv()
	require.ErrorIs(t, err, ErrZeroScalar)
}

func TestScalarBaseMulMatchesScalarMul(t *testing.T) {
	s := MustRandomScalar()
	require.True(t, ScalarBaseMul(s).Equal(G.ScalarMul(s)))
}

func TestPointRoundTripEncoding(t *testing.T) {
	s := MustRandomScalar()
	p := ScalarBaseMul(s)
	decoded, err := SetCompressedBytes(p.Bytes())
	require.NoError(t, err)
	require.True(t, p.Equal(decoded))
}

func TestHpIsDeterministicAndUnrelatedToG(t *testing.T) {
	p := ScalarBaseMul(MustRandomScalar())
	h1 := Hp(p)
	h2 := Hp(p)
	require.True(t, h1.Equal(h2))
	require.False(t, h1.Equal(G))
	require.False(t, h1.IsIdentity())
}

func TestHpVariesWithInput(t *testing.T) {
	p1 := ScalarBaseMul(MustRandomScalar())
	p2 := ScalarBaseMul(MustRandomScalar())
	require.False(t, Hp(p1).Equal(Hp(p2)))
}

func TestHsIsDeterministicAndSensitiveToOrder(t *testing.T) {
	a, b := MustRandomScalar(), MustRandomScalar()
	require.True(t, Hs(a, b).Equal(Hs(a, b)))
	require.False(t, Hs(a, b).Equal(Hs(b, a)))
}

func TestTranscriptFinalizeDoesNotReset(t *testing.T) {
	tr := NewTranscript()
	tr.AddScalar(MustRandomScalar())
	c1 := tr.Sum()

	// Finalizing twice in a row without further absorption must be
	// idempotent: Sum must not mutate the accumulator.
	c1Again := tr.Sum()
	require.True(t, c1.Equal(c1Again))

	tr.AddScalar(c1)
	c2 := tr.Sum()
	require.False(t, c1.Equal(c2))

	// A transcript that never absorbed c1 diverges from one that did.
	tr2 := NewTranscript()
	other := tr2.Sum()
	require.False(t, other.Equal(c2))
}

func TestScalarClearZeroesState(t *testing.T) {
	s := MustRandomScalar()
	require.False(t, s.IsZero())
	s.Clear()
	require.True(t, s.IsZero())
}
