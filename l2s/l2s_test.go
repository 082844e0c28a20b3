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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxcoder-ui/ZANO/internal/group"
)

// buildRing fills a ring of nHalf public points, giving the caller the
// discrete logs of the positions in signerIdx (in the same order) and
// filler points everywhere else.
func buildRing(t *testing.T, nHalf int, signerIdx []int) (B []*group.Point, b []*group.Scalar) {
	t.Helper()
	B = make([]*group.Point, nHalf)
	known := make(map[int]*group.Scalar, len(signerIdx))
	for _, idx := range signerIdx {
		sk := group.MustRandomScalar()
		known[idx] = sk
		B[idx] = group.ScalarBaseMul(sk)
	}
	for j := range B {
		if B[j] == nil {
			B[j] = group.ScalarBaseMul(group.MustRandomScalar())
		}
	}
	b = make([]*group.Scalar, len(signerIdx))
	for i, idx := range signerIdx {
		b[i] = known[idx]
	}
	return B, b
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		n    int
		s    []int
	}{
		{"n1-single-signer", 1, []int{0}},
		{"n2-single-signer", 2, []int{2}},
		{"n3-two-signers", 3, []int{1, 5}},
		{"n3-max-signers", 3, []int{0, 1, 2, 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			nHalf := 1 << uint(tc.n-1)
			B, b := buildRing(t, nHalf, tc.s)
			m := group.MustRandomScalar()

			sig, err := Generate(m, B, b, tc.s)
			require.NoError(t, err)

			I, err := Verify(m, B, sig)
			require.NoError(t, err)
			require.Len(t, I, len(tc.s))
		})
	}
}

func TestTooManySignersRejectedAtGeneration(t *testing.T) {
	nHalf := 4
	s := []int{0, 1, 2, 3, 0}
	B, b := buildRing(t, nHalf, []int{0, 1, 2, 3})
	b = append(b, b[0])
	m := group.MustRandomScalar()

	_, err := Generate(m, B, b, s)
	require.Error(t, err)
	var genErr *GenerateError
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, GenErrTooManySigners, genErr.Code)
}

func TestMessageBindingRejectsFlippedMessage(t *testing.T) {
	nHalf := 2
	s := []int{1}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)

	raw := m.Bytes()
	raw[0] ^= 1
	otherM, err := group.NewScalar().SetCanonicalBytes(raw)
	require.NoError(t, err)
	_, err = Verify(otherM, B, sig)
	require.Error(t, err)
	var verErr *VerifyError
	require.ErrorAs(t, err, &verErr)
	require.Equal(t, VerErrLinkChallenge, verErr.Code)
}

func TestRingBindingRejectsSwappedRingElement(t *testing.T) {
	nHalf := 4
	s := []int{2}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)

	tampered := make([]*group.Point, len(B))
	copy(tampered, B)
	tampered[0] = group.ScalarBaseMul(group.MustRandomScalar())

	_, err = Verify(m, tampered, sig)
	require.Error(t, err)
	var verErr *VerifyError
	require.ErrorAs(t, err, &verErr)
	require.Equal(t, VerErrLinkChallenge, verErr.Code)
}

func TestLinkabilitySameSecretYieldsSameKeyImage(t *testing.T) {
	nHalf := 4
	sk := group.MustRandomScalar()
	B := make([]*group.Point, nHalf)
	B[0] = group.ScalarBaseMul(sk)
	for j := 1; j < nHalf; j++ {
		B[j] = group.ScalarBaseMul(group.MustRandomScalar())
	}

	m1 := group.MustRandomScalar()
	sig1, err := Generate(m1, B, []*group.Scalar{sk}, []int{0})
	require.NoError(t, err)
	I1, err := Verify(m1, B, sig1)
	require.NoError(t, err)

	m2 := group.MustRandomScalar()
	sig2, err := Generate(m2, B, []*group.Scalar{sk}, []int{0})
	require.NoError(t, err)
	I2, err := Verify(m2, B, sig2)
	require.NoError(t, err)

	require.True(t, I1[0].Equal(I2[0]))
}

func TestLinkabilityReusedSecretWithinOneSignature(t *testing.T) {
	nHalf := 8
	sk := group.MustRandomScalar()
	B := make([]*group.Point, nHalf)
	B[1] = group.ScalarBaseMul(sk)
	B[5] = B[1]
	for j := range B {
		if B[j] == nil {
			B[j] = group.ScalarBaseMul(group.MustRandomScalar())
		}
	}
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, []*group.Scalar{sk, sk}, []int{1, 5})
	require.NoError(t, err)

	I, err := Verify(m, B, sig)
	require.NoError(t, err)
	require.True(t, I[0].Equal(I[1]))
}

func TestLinkabilityDistinctSecretsYieldDistinctKeyImages(t *testing.T) {
	nHalf := 8
	B, b := buildRing(t, nHalf, []int{1, 5})
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, []int{1, 5})
	require.NoError(t, err)

	I, err := Verify(m, B, sig)
	require.NoError(t, err)
	require.False(t, I[0].Equal(I[1]))
}

func TestTamperEvidenceFlippedFinalResponse(t *testing.T) {
	nHalf := 4
	s := []int{2}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)

	raw := sig.Elements[0].TResp.Bytes()
	raw[0] ^= 1
	flipped, err := group.NewScalar().SetCanonicalBytes(raw)
	require.NoError(t, err)
	sig.Elements[0].TResp = flipped

	_, err = Verify(m, B, sig)
	require.Error(t, err)
	var verErr *VerifyError
	require.ErrorAs(t, err, &verErr)
	require.Contains(t, []VerCode{
		VerErrLinkChallenge, VerErrV0Failed, VerErrRsumFailed,
		VerErrPartialSumIdentity, VerErrZeroResponse,
		VerErrIdentityCommitment, VerErrFinalCheckFailed,
	}, verErr.Code)
}

func TestRejectZeroResponse(t *testing.T) {
	nHalf := 4
	s := []int{2}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)

	sig.Elements[0].R[0] = group.NewScalar()

	_, err = Verify(m, B, sig)
	require.Error(t, err)
	var verErr *VerifyError
	require.ErrorAs(t, err, &verErr)
	require.Equal(t, VerErrZeroResponse, verErr.Code)
}

func TestRejectIdentityCommitment(t *testing.T) {
	nHalf := 4
	s := []int{2}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)

	sig.Elements[0].H[0] = group.NewIdentityPoint()

	_, err = Verify(m, B, sig)
	require.Error(t, err)
	var verErr *VerifyError
	require.ErrorAs(t, err, &verErr)
	require.Equal(t, VerErrIdentityCommitment, verErr.Code)
}

func TestMaxSignersBoundaryAccepted(t *testing.T) {
	nHalf := 4
	s := []int{0, 1, 2, 3}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)
	_, err = Verify(m, B, sig)
	require.NoError(t, err)
}

func TestSignatureSerializationRoundTrip(t *testing.T) {
	nHalf := 4
	s := []int{2}
	B, b := buildRing(t, nHalf, s)
	m := group.MustRandomScalar()

	sig, err := Generate(m, B, b, s)
	require.NoError(t, err)

	encoded := sig.Bytes()
	decoded, err := LoadSignature(bytes.NewReader(encoded), sig.L(), sig.N())
	require.NoError(t, err)

	_, err = Verify(m, B, decoded)
	require.NoError(t, err)
}
