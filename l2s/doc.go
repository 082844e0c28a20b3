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

// Package l2s implements the L2S linkable multi-signature scheme: a
// non-interactive proof that the signer knows discrete logarithms for L
// distinct positions within a public ring of N/2 group elements, alongside
// per-key linkability tags ("key images") that let a verifier detect reuse
// of the same secret across signatures.
//
// # Overview
//
// A signature is produced by Generate from a message digest, a public ring,
// a set of signer secrets, and their positions in the ring. The ring is
// folded into a power-of-two "X-array" (see xarray.go) of size
// N = 2^n, and the proof itself is a logarithmic-round Fiat-Shamir argument
// over that array, evaluated with the recursive Rsum aggregator in
// internal/rsum. Verify reconstructs the same X-array, replays the
// transcript, and checks the resulting algebraic identities.
//
// # Security properties
//
//   - Soundness: a signature accepted by Verify could only have been
//     produced by a party holding a discrete logarithm for every signer
//     position it claims.
//   - Linkability: two signatures produced from the same secret carry
//     identical key images; this module never attempts to hide that fact.
//   - The scheme is not zero-knowledge against an adversary that chooses
//     the ring adaptively after seeing other signatures over it; see the
//     package-level Non-goals recorded in the design notes.
//
// # Implementations
//
// The only implementation here runs over filippo.io/edwards25519, wrapped
// by internal/group behind a minimal Scalar/Point interface. Swapping
// curves means swapping that package; nothing in this package touches
// curve internals directly.
package l2s
