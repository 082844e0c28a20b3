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

// Package rsum implements the recursive tree-folded linear combination
// ("Rsum") that both the L2S generator and verifier evaluate over the
// X-array. It is a pure function of its arguments: it never branches on
// secret data and never mutates the slices it is given.
package rsum

import (
	"github.com/pkg/errors"

	"github.com/xxxcoder-ui/ZANO/internal/group"
)

// ErrDepthZero is returned when n == 0; Rsum is undefined for an empty
// transcript depth.
var ErrDepthZero = errors.New("rsum: n must be at least 1")

// ErrRingSize is returned when |X| does not equal 2^n.
var ErrRingSize = errors.New("rsum: |X| != 2^n")

// ErrChallengeLen is returned when the challenge vectors do not have the
// required lengths n and n-1.
var ErrChallengeLen = errors.New("rsum: challenge vector length mismatch")

// Eval computes Rsum(n, X, c1, c3): the tree-folded combination described
// by the core design, with |X| = 2^n, |c1| = n, |c3| = n-1.
//
// It always overwrites its result rather than accumulating into anything
// supplied by the caller; there is no ambiguity about a "starting" value.
func Eval(n int, X []*group.Point, c1, c3 []*group.Scalar) (*group.Point, error) {
	if n == 0 {
		return nil, ErrDepthZero
	}
	N := 1 << uint(n)
	if len(X) != N {
		return nil, ErrRingSize
	}
	if len(c1) != n || len(c3) != n-1 {
		return nil, ErrChallengeLen
	}
	return evalIterative(n, X, c1, c3), nil
}

// evalIterative is the production evaluation path: a bottom-up,
// level-by-level fold that reuses a single working buffer instead of
// recursing. At level k (1-indexed from the leaves), each buffer of length
// 2^(n-k+1) is halved: the pair (arr[2j], arr[2j+1]) folds to
// arr[2j] + mu*arr[2j+1], where mu is c1[k-1] for an even destination
// index j and c3[k-1] for an odd one. The top level always has a single,
// even-indexed destination, which is why only c1[n-1] is consumed there
// and c3 needs only n-1 entries.
func evalIterative(n int, X []*group.Point, c1, c3 []*group.Scalar) *group.Point {
	buf := make([]*group.Point, len(X))
	copy(buf, X)

	for level := 1; level <= n; level++ {
		half := len(buf) / 2
		for j := 0; j < half; j++ {
			mu := c1[level-1]
			if j%2 == 1 {
				mu = c3[level-1]
			}
			buf[j] = buf[2*j].Add(buf[2*j+1].ScalarMul(mu))
		}
		buf = buf[:half]
	}
	return buf[0]
}

// evalRecursive is a literal, contiguous-halves recursive formulation
// matching the reference definition directly: it splits the slice into a
// first half and second half rather than interleaving. It exists to
// cross-check evalIterative in tests (property P6) and is safe to call
// directly since the recursion depth is bounded by n < 32.
func evalRecursive(n int, X []*group.Point, c1, c3 []*group.Scalar, mu *group.Scalar) *group.Point {
	if n == 1 {
		return X[0].Add(X[1].ScalarMul(mu))
	}
	half := len(X) / 2
	left := evalRecursive(n-1, X[:half], c1, c3, c1[n-2])
	right := evalRecursive(n-1, X[half:], c1, c3, c3[n-2])
	return left.Add(right.ScalarMul(mu))
}

// EvalRecursive exposes evalRecursive for cross-checking in tests outside
// this package.
func EvalRecursive(n int, X []*group.Point, c1, c3 []*group.Scalar) (*group.Point, error) {
	if n == 0 {
		return nil, ErrDepthZero
	}
	N := 1 << uint(n)
	if len(X) != N {
		return nil, ErrRingSize
	}
	if len(c1) != n || len(c3) != n-1 {
		return nil, ErrChallengeLen
	}
	return evalRecursive(n, X, c1, c3, c1[n-1]), nil
}

// IsPowerOfTwo reports whether v is a power of two (and nonzero).
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Log2 returns the base-2 logarithm of v, which must be a power of two.
// It panics on a non-power-of-two input; callers are expected to validate
// ring sizes before calling.
func Log2(v int) int {
	if !IsPowerOfTwo(v) {
		panic("rsum: Log2 of non-power-of-two")
	}
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

// InvertLastBit flips the least significant bit of v, the tree-navigation
// primitive used to move between a signer's z-index and h-index at every
// round of the transcript.
func InvertLastBit(v int) int { return v ^ 1 }
