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
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xxxcoder-ui/ZANO/l2s"
)

func generateCmd() *cobra.Command {
	var ringPath, secretsPath, indicesCSV, messageHex, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Produce a signature over a ring and a set of signer secrets",
		RunE: func(cmd *cobra.Command, args []string) error {
			B, err := readRing(ringPath)
			if err != nil {
				return err
			}
			if err := activeConfig.CheckRingDepth(bits.Len(uint(len(B)))); err != nil {
				return err
			}
			b, err := readSecrets(secretsPath)
			if err != nil {
				return err
			}
			m, err := readMessage(messageHex)
			if err != nil {
				return err
			}
			s, err := parseIndices(indicesCSV)
			if err != nil {
				return err
			}

			sig, err := l2s.Generate(m, B, b, s)
			if err != nil {
				return errors.Wrap(err, "generating signature")
			}

			f, err := os.Create(outPath)
			if err != nil {
				return errors.Wrapf(err, "creating %s", outPath)
			}
			defer f.Close()
			_, err = sig.WriteTo(f)
			return err
		},
	}

	cmd.Flags().StringVar(&ringPath, "ring", "", "path to a file of hex-encoded ring points, one per line")
	cmd.Flags().StringVar(&secretsPath, "secrets", "", "path to a file of hex-encoded signer secrets, one per line")
	cmd.Flags().StringVar(&indicesCSV, "indices", "", "comma-separated ring positions, matching --secrets order")
	cmd.Flags().StringVar(&messageHex, "message", "", "hex-encoded message digest")
	cmd.Flags().StringVar(&outPath, "out", "signature.bin", "output path for the encoded signature")
	for _, name := range []string{"ring", "secrets", "indices", "message"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func parseIndices(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing index %q", p)
		}
		out[i] = v
	}
	return out, nil
}
