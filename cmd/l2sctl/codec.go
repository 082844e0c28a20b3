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

package main

import (
	"bufio"
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/xxxcoder-ui/ZANO/internal/group"
)

// readHexLines reads one hex-encoded value per non-empty, non-comment line.
func readHexLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var out [][]byte
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b, err := hex.DecodeString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding hex line %q", line)
		}
		out = append(out, b)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readRing(path string) ([]*group.Point, error) {
	lines, err := readHexLines(path)
	if err != nil {
		return nil, err
	}
	B := make([]*group.Point, len(lines))
	for i, l := range lines {
		p, err := group.SetCompressedBytes(l)
		if err != nil {
			return nil, errors.Wrapf(err, "ring entry %d", i)
		}
		B[i] = p
	}
	return B, nil
}

func readSecrets(path string) ([]*group.Scalar, error) {
	lines, err := readHexLines(path)
	if err != nil {
		return nil, err
	}
	b := make([]*group.Scalar, len(lines))
	for i, l := range lines {
		s, err := group.NewScalar().SetCanonicalBytes(l)
		if err != nil {
			return nil, errors.Wrapf(err, "secret entry %d", i)
		}
		b[i] = s
	}
	return b, nil
}

func readMessage(hexDigest string) (*group.Scalar, error) {
	raw, err := hex.DecodeString(hexDigest)
	if err != nil {
		return nil, errors.Wrap(err, "decoding message digest")
	}
	return group.NewScalar().SetCanonicalBytes(raw)
}
