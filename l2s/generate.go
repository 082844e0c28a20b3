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

package l2s

import (
	"github.com/xxxcoder-ui/ZANO/internal/group"
	"github.com/xxxcoder-ui/ZANO/internal/rsum"
	"github.com/xxxcoder-ui/ZANO/internal/tlog"
)

// signerState is the per-signer scratch space described by the core design:
// f, k0, q, a are secret and must be cleared before Generate returns; Y is
// the signer's own shrinking copy of X, halved round by round in Phase C.
type signerState struct {
	f, k0, q, a *group.Scalar
	zIdx, hIdx  int
	mCnt        int
	Y           []*group.Point
	el          *Element
}

func (st *signerState) clear() {
	st.f.Clear()
	st.k0.Clear()
	st.q.Clear()
	st.a.Clear()
}

// Generate produces a signature over message digest m binding ring B,
// proving knowledge of the discrete logs b[i] of B[s[i]] for every i, and
// publishing one key image per signer. See the package design notes (§4.3
// of the core design) for the exact round structure.
func Generate(m *group.Scalar, B []*group.Point, b []*group.Scalar, s []int) (*Signature, error) {
	if len(b) != len(s) {
		return nil, genErr(GenErrSignerCount)
	}
	L := len(b)
	if L == 0 {
		return nil, genErr(GenErrNoSigners)
	}
	Nhalf := len(B)
	if !rsum.IsPowerOfTwo(Nhalf) {
		return nil, genErr(GenErrRingNotPowerOfTwo)
	}
	n := rsum.Log2(Nhalf) + 1
	if L > Nhalf {
		return nil, genErr(GenErrTooManySigners)
	}
	for _, idx := range s {
		if idx < 0 || idx >= Nhalf {
			return nil, genErr(GenErrSignerIndexRange)
		}
	}

	bInv := make([]*group.Scalar, L)
	I := make([]*group.Point, L)
	defer func() {
		for _, inv := range bInv {
			if inv != nil {
				inv.Clear()
			}
		}
	}()
	for i := range b {
		if b[i].IsZero() {
			return nil, genErr(GenErrSignerBinding)
		}
		inv, err := b[i].Inv()
		if err != nil {
			return nil, genErrWrap(GenErrInternalZeroScalar, err)
		}
		bInv[i] = inv
		I[i] = group.Hp(group.ScalarBaseMul(b[i])).ScalarMul(inv)
	}

	z := group.Hs(m, B, I)
	A, _, X := buildXArray(B, I, z)

	for i, idx := range s {
		lhs := X[2*idx].ScalarMul(bInv[i])
		if !lhs.Equal(A[i]) {
			return nil, genErr(GenErrSignerBinding)
		}
	}

	states := make([]*signerState, L)
	defer func() {
		for _, st := range states {
			if st != nil {
				st.clear()
			}
		}
	}()

	for i, idx := range s {
		f := group.MustRandomScalar()
		q := group.MustRandomScalar()
		Y := make([]*group.Point, len(X))
		copy(Y, X)
		st := &signerState{
			f:    f,
			k0:   f.Mul(bInv[i]),
			q:    q,
			a:    group.One(),
			zIdx: 2 * idx,
			hIdx: 2*idx + 1,
			mCnt: len(X),
			Y:    Y,
			el:   &Element{R: make([]*group.Scalar, n), H: make([]*group.Point, n)},
		}
		states[i] = st
	}

	tr := newTranscript(z, X)

	// Phase B: round-0 commitments.
	Z0s := make([]*group.Point, L)
	T0s := make([]*group.Point, L)
	Zs := make([]*group.Point, L)
	for i, st := range states {
		st.el.Z0 = A[i]
		st.el.Z = st.el.Z0.ScalarMul(st.f)
		st.el.T0 = st.el.Z0.ScalarMul(st.q)
		Z0s[i], T0s[i], Zs[i] = st.el.Z0, st.el.T0, st.el.Z
	}
	absorbRoundZero(tr, Z0s, T0s, Zs)
	c0 := tr.Sum()

	t0s := make([]*group.Scalar, L)
	H0s := make([]*group.Point, L)
	for i, st := range states {
		st.el.T0Resp = st.q.Sub(st.f.Mul(c0))
		st.q = group.MustRandomScalar()
		h0, err := scalarDiv(st.k0, st.q)
		if err != nil {
			return nil, genErrWrap(GenErrInternalZeroScalar, err)
		}
		st.el.H[0] = X[st.hIdx].ScalarMul(h0)
		t0s[i] = st.el.T0Resp
		H0s[i] = st.el.H[0]
	}
	absorbStepFive(tr, c0, t0s, H0s)
	c1 := tr.Sum()
	c3 := group.Hs(c1)

	c1Array := make([]*group.Scalar, n)
	c3Array := make([]*group.Scalar, n-1)
	c1Array[0] = c1
	if n > 1 {
		c3Array[0] = c3
	}

	// Phase C: rounds k = 2..n.
	for idxN := 0; idxN <= n-2; idxN++ {
		k := idxN + 2
		lookup := [4]*group.Scalar{group.One(), c1, group.One(), c3}

		rVals := make([]*group.Scalar, L)
		hVals := make([]*group.Point, L)
		for i, st := range states {
			eLocal := lookup[st.zIdx%4]
			gLocal := lookup[st.hIdx%4]

			rij, err := scalarDiv(st.q.Mul(gLocal), eLocal)
			if err != nil {
				return nil, genErrWrap(GenErrInternalZeroScalar, err)
			}
			st.el.R[idxN] = rij
			st.a = st.a.Mul(eLocal)

			st.mCnt /= 2
			newY := make([]*group.Point, st.mCnt)
			for j := 0; j < st.mCnt; j++ {
				mu := lookup[(2*j+1)%4]
				folded := st.Y[2*j].Add(st.Y[2*j+1].ScalarMul(mu))
				divided, err := pointDiv(folded, eLocal)
				if err != nil {
					return nil, genErrWrap(GenErrInternalZeroScalar, err)
				}
				newY[j] = divided
			}
			st.Y = newY

			st.zIdx /= 2
			st.hIdx = rsum.InvertLastBit(st.zIdx)

			st.q = group.MustRandomScalar()
			hNext, err := scalarDiv(st.k0, st.q)
			if err != nil {
				return nil, genErrWrap(GenErrInternalZeroScalar, err)
			}
			st.el.H[idxN+1] = st.Y[st.hIdx].ScalarMul(hNext)

			rVals[i] = st.el.R[idxN]
			hVals[i] = st.el.H[idxN+1]
		}

		absorbRound(tr, c1, rVals, hVals)
		newC1 := tr.Sum()
		c1 = newC1
		c1Array[k-1] = c1
		if k < n {
			c3 = group.Hs(c1)
			c3Array[k-1] = c3
		}
	}

	// Phase D: final round.
	ci1 := c1
	xs := make([]*group.Scalar, L)
	Ws := make([]*group.Point, L)
	for i, st := range states {
		var eLocal, gLocal *group.Scalar
		if st.zIdx == 0 {
			eLocal, gLocal = group.One(), ci1
		} else {
			eLocal, gLocal = ci1, group.One()
		}

		rLast, err := scalarDiv(st.q.Mul(gLocal), eLocal)
		if err != nil {
			return nil, genErrWrap(GenErrInternalZeroScalar, err)
		}
		st.el.R[n-1] = rLast
		st.a = st.a.Mul(eLocal)

		x, err := scalarDiv(st.a, st.k0)
		if err != nil {
			return nil, genErrWrap(GenErrInternalZeroScalar, err)
		}

		st.q = group.MustRandomScalar()
		W := st.el.Z
		for j := 0; j < n; j++ {
			W = W.Add(st.el.H[j].ScalarMul(st.el.R[j]))
		}
		st.el.T = W.ScalarMul(st.q)

		xs[i] = x
		Ws[i] = W
		defer x.Clear()
	}

	rLasts := make([]*group.Scalar, L)
	Ts := make([]*group.Point, L)
	for i, st := range states {
		rLasts[i] = st.el.R[n-1]
		Ts[i] = st.el.T
	}
	absorbFinalRound(tr, ci1, rLasts, Ts)
	c := tr.Sum()

	for i, st := range states {
		st.el.TResp = st.q.Sub(xs[i].Mul(c))
	}

	R, err := rsum.Eval(n, X, c1Array, c3Array)
	if err != nil {
		return nil, genErrWrap(GenErrInternalRsumMismatch, err)
	}
	for i, st := range states {
		idx := s[i]
		if !X[2*idx].ScalarMul(st.k0).Equal(st.el.Z) {
			return nil, genErr(GenErrInternalKeyImage)
		}
		if !R.Equal(Ws[i].ScalarMul(xs[i])) {
			return nil, genErr(GenErrInternalRsumMismatch)
		}
		lhs := Ws[i].ScalarMul(st.el.TResp).Add(R.ScalarMul(c))
		if !lhs.Equal(st.el.T) {
			return nil, genErr(GenErrInternalTCheck)
		}
	}

	tlog.L().Debug("generated signature", tlog.Int("n", n), tlog.Int("L", L))

	elements := make([]*Element, L)
	for i, st := range states {
		elements[i] = st.el
	}
	return &Signature{Z: z, Elements: elements}, nil
}

func scalarDiv(a, b *group.Scalar) (*group.Scalar, error) { return a.Div(b) }

func pointDiv(p *group.Point, s *group.Scalar) (*group.Point, error) {
	inv, err := s.Inv()
	if err != nil {
		return nil, err
	}
	return p.ScalarMul(inv), nil
}
