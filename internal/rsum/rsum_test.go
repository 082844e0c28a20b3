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

package rsum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxcoder-ui/ZANO/internal/group"
)

func randomPoints(n int) []*group.Point {
	ps := make([]*group.Point, n)
	for i := range ps {
		ps[i] = group.ScalarBaseMul(group.MustRandomScalar())
	}
	return ps
}

func randomScalars(n int) []*group.Scalar {
	ss := make([]*group.Scalar, n)
	for i := range ss {
		ss[i] = group.MustRandomScalar()
	}
	return ss
}

func TestEvalRejectsBadShapes(t *testing.T) {
	_, err := Eval(0, nil, nil, nil)
	require.ErrorIs(t, err, ErrDepthZero)

	_, err = Eval(2, randomPoints(3), randomScalars(2), randomScalars(1))
	require.ErrorIs(t, err, ErrRingSize)

	_, err = Eval(2, randomPoints(4), randomScalars(1), randomScalars(1))
	require.ErrorIs(t, err, ErrChallengeLen)

	_, err = Eval(2, randomPoints(4), randomScalars(2), randomScalars(2))
	require.ErrorIs(t, err, ErrChallengeLen)
}

func TestEvalIterativeMatchesRecursive(t *testing.T) {
	for n := 1; n <= 6; n++ {
		X := randomPoints(1 << uint(n))
		c1 := randomScalars(n)
		c3 := randomScalars(n - 1)

		iter, err := Eval(n, X, c1, c3)
		require.NoError(t, err)

		rec, err := EvalRecursive(n, X, c1, c3)
		require.NoError(t, err)

		require.True(t, iter.Equal(rec), "n=%d: iterative and recursive Rsum diverge", n)
	}
}

func TestEvalDepthOneIsDirectSum(t *testing.T) {
	X := randomPoints(2)
	c1 := randomScalars(1)
	got, err := Eval(1, X, c1, nil)
	require.NoError(t, err)
	want := X[0].Add(X[1].ScalarMul(c1[0]))
	require.True(t, got.Equal(want))
}

func TestEvalDoesNotMutateInputs(t *testing.T) {
	X := randomPoints(8)
	orig := make([]*group.Point, len(X))
	copy(orig, X)
	c1 := randomScalars(3)
	c3 := randomScalars(2)

	_, err := Eval(3, X, c1, c3)
	require.NoError(t, err)
	for i := range X {
		require.True(t, X[i].Equal(orig[i]))
	}
}

// TestEvalMatchesExplicitMultilinearExpansion checks property P6 directly:
// for n=2, Rsum(2, X, c1, c3) must equal
// X[0] + c1[0]*X[1] + c1[1]*X[2] + c1[1]*c3[0]*X[3]
// (c1[1] is the top-level multiplier applied to the whole second half;
// within that half, c3[0] plays the role c1[0] plays in the first half).
func TestEvalMatchesExplicitMultilinearExpansion(t *testing.T) {
	X := randomPoints(4)
	c1 := randomScalars(2)
	c3 := randomScalars(1)

	got, err := Eval(2, X, c1, c3)
	require.NoError(t, err)

	want := X[0].
		Add(X[1].ScalarMul(c1[0])).
		Add(X[2].ScalarMul(c1[1])).
		Add(X[3].ScalarMul(c1[1].Mul(c3[0])))

	require.True(t, got.Equal(want))
}

func TestIsPowerOfTwoAndLog2(t *testing.T) {
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(1024))
	require.False(t, IsPowerOfTwo(0))
	require.False(t, IsPowerOfTwo(6))
	require.Equal(t, 0, Log2(1))
	require.Equal(t, 10, Log2(1024))
}

func TestInvertLastBit(t *testing.T) {
	require.Equal(t, 1, InvertLastBit(0))
	require.Equal(t, 0, InvertLastBit(1))
	require.Equal(t, 5, InvertLastBit(4))
}
