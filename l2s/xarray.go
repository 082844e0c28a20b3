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

// buildXArray folds the ring B and the per-signer key images I, under the
// top-level linking challenge z, into the interleaved X-array the proof
// actually runs over. Both Generate and Verify call this with the same
// inputs: the generator with the I it just derived from the secrets, the
// verifier with the I it recovered from the signature record.
//
// It returns A (the per-signer commitment targets, length len(I)), P (the
// folded ring, length len(B)), and X (the interleaved array, length
// 2*len(B)).
func buildXArray(B, I []*group.Point, z *group.Scalar) (A, P, X []*group.Point) {
	A = make([]*group.Point, len(I))
	for i, img := range I {
		A[i] = group.G.Add(img.ScalarMul(z))
	}

	P = make([]*group.Point, len(B))
	for j, Bj := range B {
		P[j] = Bj.Add(group.Hp(Bj).ScalarMul(z))
	}

	qShift := group.ScalarBaseMul(group.Hs(A, P))

	X = make([]*group.Point, 2*len(B))
	for j, Bj := range B {
		shifted := Bj.Add(qShift)
		X[2*j] = P[j]
		X[2*j+1] = shifted.Add(group.Hp(shifted).ScalarMul(z))
	}
	return A, P, X
}
