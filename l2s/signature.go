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
	"io"

	"github.com/xxxcoder-ui/ZANO/internal/genutil"
	"github.com/xxxcoder-ui/ZANO/internal/group"
)

// Exportable is anything that can be written to a stream or turned directly
// into bytes.
type Exportable interface {
	io.WriterTo
	Bytes() []byte
}

// Element is one signer's slice of a Signature: the round-0 commitments,
// the per-round response/commitment pairs, and the final round's
// commitment and response.
type Element struct {
	Z0, T0 *group.Point
	T0Resp *group.Scalar // t0
	Z      *group.Point
	R      []*group.Scalar // length n
	H      []*group.Point  // length n
	T      *group.Point
	TResp  *group.Scalar // t
}

// Signature is the record emitted by Generate and consumed by Verify: the
// top-level linking challenge z, plus one Element per signer, in the order
// signer indices were supplied to Generate.
type Signature struct {
	Z        *group.Scalar
	Elements []*Element
}

var _ Exportable = (*Signature)(nil)

// N returns the X-array depth n implied by the first element's response
// length. It panics if the signature has no elements; callers should not
// call N on a signature that failed to decode.
func (sig *Signature) N() int {
	return len(sig.Elements[0].R)
}

// L returns the number of signer elements in the signature.
func (sig *Signature) L() int { return len(sig.Elements) }

// WriteTo encodes the signature as a sequence of gob values in the wire
// order described by the package design notes: z, then for each element
// Z0, T0, t0, Z, r[0..n), H[0..n), T, t.
func (sig *Signature) WriteTo(w io.Writer) (int64, error) {
	gw := genutil.NewGobWriter(w)
	gw.Encode(sig.Z)
	for _, e := range sig.Elements {
		gw.Encode(e.Z0)
		gw.Encode(e.T0)
		gw.Encode(e.T0Resp)
		gw.Encode(e.Z)
		for _, r := range e.R {
			gw.Encode(r)
		}
		for _, h := range e.H {
			gw.Encode(h)
		}
		gw.Encode(e.T)
		gw.Encode(e.TResp)
	}
	return gw.Count(), gw.Err()
}

// Bytes encodes the signature and returns the result directly.
func (sig *Signature) Bytes() []byte { return genutil.ConvertToBytes(sig) }

// LoadSignature decodes a signature with L signer elements and transcript
// depth n, the shape parameters a host protocol is expected to carry
// alongside the wire bytes (see the package design notes on serialization).
func LoadSignature(r io.Reader, l, n int) (*Signature, error) {
	gr := genutil.NewGobReader(r)

	sig := &Signature{Elements: make([]*Element, l)}
	sig.Z = group.NewScalar()
	gr.Decode(sig.Z)

	for i := 0; i < l; i++ {
		e := &Element{
			Z0:     group.NewIdentityPoint(),
			T0:     group.NewIdentityPoint(),
			T0Resp: group.NewScalar(),
			Z:      group.NewIdentityPoint(),
			R:      make([]*group.Scalar, n),
			H:      make([]*group.Point, n),
			T:      group.NewIdentityPoint(),
			TResp:  group.NewScalar(),
		}
		gr.Decode(e.Z0)
		gr.Decode(e.T0)
		gr.Decode(e.T0Resp)
		gr.Decode(e.Z)
		for j := range e.R {
			e.R[j] = group.NewScalar()
			gr.Decode(e.R[j])
		}
		for j := range e.H {
			e.H[j] = group.NewIdentityPoint()
			gr.Decode(e.H[j])
		}
		gr.Decode(e.T)
		gr.Decode(e.TResp)
		sig.Elements[i] = e
	}

	if err := gr.Err(); err != nil {
		return nil, err
	}
	return sig, nil
}
