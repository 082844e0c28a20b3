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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xxxcoder-ui/ZANO/l2s"
)

func verifyCmd() *cobra.Command {
	var ringPath, messageHex, sigPath string
	var signers, depth int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature and print its recovered key images",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := activeConfig.CheckRingDepth(depth); err != nil {
				return err
			}

			B, err := readRing(ringPath)
			if err != nil {
				return err
			}
			m, err := readMessage(messageHex)
			if err != nil {
				return err
			}

			f, err := os.Open(sigPath)
			if err != nil {
				return errors.Wrapf(err, "opening %s", sigPath)
			}
			defer f.Close()

			sig, err := l2s.LoadSignature(f, signers, depth)
			if err != nil {
				return errors.Wrap(err, "decoding signature")
			}

			images, err := l2s.Verify(m, B, sig)
			if err != nil {
				return err
			}
			for i, img := range images {
				fmt.Printf("keyimage[%d] = %s\n", i, hex.EncodeToString(img.Bytes()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ringPath, "ring", "", "path to a file of hex-encoded ring points, one per line")
	cmd.Flags().StringVar(&messageHex, "message", "", "hex-encoded message digest")
	cmd.Flags().StringVar(&sigPath, "sig", "", "path to an encoded signature")
	cmd.Flags().IntVar(&signers, "signers", 0, "number of signer elements L in the signature")
	cmd.Flags().IntVar(&depth, "depth", 0, "transcript depth n used when the signature was generated")
	for _, name := range []string{"ring", "message", "sig", "signers", "depth"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}
