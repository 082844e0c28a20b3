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

// Verify checks sig against message digest m and ring B. On success it
// returns the key images recovered from the signature, in signer order; on
// failure it returns a *VerifyError whose Code identifies which check
// failed. The checks run in the order given and Verify returns at the first
// one that fails; the verifier holds no secret data, so these early returns
// depend only on public inputs.
func Verify(m *group.Scalar, B []*group.Point, sig *Signature) ([]*group.Point, error) {
	// Phase A: shape checks.
	L := len(sig.Elements)
	if L == 0 {
		return nil, verErr(VerErrNoSigners)
	}
	n := len(sig.Elements[0].H)
	if n < 1 || n >= 32 {
		return nil, verErr(VerErrDepthTooLarge)
	}
	for _, e := range sig.Elements {
		if len(e.H) != n {
			return nil, verErr(VerErrHLengthMismatch)
		}
		if len(e.R) != n {
			return nil, verErr(VerErrRLengthMismatch)
		}
	}
	Nhalf := len(B)
	if Nhalf != 1<<uint(n-1) {
		return nil, verErr(VerErrRingSizeWrong)
	}

	// Phase B: key-image recovery and re-derivation of z.
	I := make([]*group.Point, L)
	for i, e := range sig.Elements {
		numer := e.Z0.Sub(group.G)
		img, err := pointDiv(numer, sig.Z)
		if err != nil {
			return nil, verErrWrap(VerErrLinkChallenge, err)
		}
		I[i] = img
	}
	zPrime := group.Hs(m, B, I)
	if !zPrime.Equal(sig.Z) {
		return nil, verErr(VerErrLinkChallenge)
	}

	A, P, X := buildXArray(B, I, sig.Z)
	if len(P) != Nhalf || len(X) != 2*Nhalf {
		return nil, verErr(VerErrXArraySizeMismatch)
	}
	for i, e := range sig.Elements {
		if !e.Z0.Equal(A[i]) {
			return nil, verErr(VerErrXArraySizeMismatch)
		}
	}

	// Phase C: transcript replay.
	tr := newTranscript(sig.Z, X)

	Z0s := make([]*group.Point, L)
	T0s := make([]*group.Point, L)
	Zs := make([]*group.Point, L)
	for i, e := range sig.Elements {
		Z0s[i], T0s[i], Zs[i] = e.Z0, e.T0, e.Z
	}
	absorbRoundZero(tr, Z0s, T0s, Zs)
	c0 := tr.Sum()

	t0s := make([]*group.Scalar, L)
	H0s := make([]*group.Point, L)
	for i, e := range sig.Elements {
		t0s[i] = e.T0Resp
		H0s[i] = e.H[0]
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

	for idxN := 0; idxN <= n-2; idxN++ {
		k := idxN + 2
		rVals := make([]*group.Scalar, L)
		hVals := make([]*group.Point, L)
		for i, e := range sig.Elements {
			rVals[i] = e.R[idxN]
			hVals[i] = e.H[idxN+1]
		}
		absorbRound(tr, c1, rVals, hVals)
		c1 = tr.Sum()
		c1Array[k-1] = c1
		if k < n {
			c3 = group.Hs(c1)
			c3Array[k-1] = c3
		}
	}

	ci1 := c1
	rLasts := make([]*group.Scalar, L)
	Ts := make([]*group.Point, L)
	for i, e := range sig.Elements {
		rLasts[i] = e.R[n-1]
		Ts[i] = e.T
	}
	absorbFinalRound(tr, ci1, rLasts, Ts)
	c := tr.Sum()

	// Phase D: algebraic checks.
	for _, e := range sig.Elements {
		lhs := e.Z0.ScalarMul(e.T0Resp).Add(e.Z.ScalarMul(c0))
		if !lhs.Equal(e.T0) {
			return nil, verErr(VerErrV0Failed)
		}
	}

	R, err := rsum.Eval(n, X, c1Array, c3Array)
	if err != nil {
		return nil, verErrWrap(VerErrRsumFailed, err)
	}

	for _, e := range sig.Elements {
		S := e.Z
		for j := 0; j < n; j++ {
			if e.R[j].IsZero() {
				return nil, verErr(VerErrZeroResponse)
			}
			if e.H[j].IsIdentity() {
				return nil, verErr(VerErrIdentityCommitment)
			}
			S = S.Add(e.H[j].ScalarMul(e.R[j]))
			if S.IsIdentity() {
				return nil, verErr(VerErrPartialSumIdentity)
			}
		}
		lhs := S.ScalarMul(e.TResp).Add(R.ScalarMul(c))
		if !lhs.Equal(e.T) {
			return nil, verErr(VerErrFinalCheckFailed)
		}
	}

	tlog.L().Debug("verified signature", tlog.Int("n", n), tlog.Int("L", L))
	return I, nil
}
