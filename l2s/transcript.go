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

import "github.com/xxxcoder-ui/ZANO/internal/group"

// These helpers absorb exactly the steps of the shared transcript
// discipline. Generate and Verify each drive them with their own source of
// per-round values (freshly computed on one side, read off the signature
// record on the other) but must absorb in the same order, or the two sides
// silently diverge. Do not reorder anything here.

// newTranscript performs steps 1-2: absorb e = Hs(z), then all of X in
// index order.
func newTranscript(z *group.Scalar, X []*group.Point) *group.Transcript {
	tr := group.NewTranscript()
	tr.AddScalar(group.Hs(z))
	tr.AddPoints(X)
	return tr
}

// absorbRoundZero performs step 3: per signer, absorb Z0, T0, Z.
func absorbRoundZero(tr *group.Transcript, Z0, T0, Z []*group.Point) {
	for i := range Z0 {
		tr.AddPoint(Z0[i])
		tr.AddPoint(T0[i])
		tr.AddPoint(Z[i])
	}
}

// absorbStepFive performs step 5: absorb c0, then per signer t0[i], H[i][0].
func absorbStepFive(tr *group.Transcript, c0 *group.Scalar, t0 []*group.Scalar, H0 []*group.Point) {
	tr.AddScalar(c0)
	for i := range t0 {
		tr.AddScalar(t0[i])
		tr.AddPoint(H0[i])
	}
}

// absorbRound performs step 7 for round k (2 <= k <= n): absorb the
// previous challenge c_{k-1,1}, then per signer r[i][k-2], H[i][k-1].
func absorbRound(tr *group.Transcript, prevC1 *group.Scalar, r []*group.Scalar, H []*group.Point) {
	tr.AddScalar(prevC1)
	for i := range r {
		tr.AddScalar(r[i])
		tr.AddPoint(H[i])
	}
}

// absorbFinalRound performs step 8: absorb c_{n,1}, then per signer
// r[i][n-1], T[i].
func absorbFinalRound(tr *group.Transcript, cn1 *group.Scalar, r []*group.Scalar, T []*group.Point) {
	tr.AddScalar(cn1)
	for i := range r {
		tr.AddScalar(r[i])
		tr.AddPoint(T[i])
	}
}
