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

// Command l2sctl is a thin, file-based driver for package l2s. It exists
// for manual testing and scripting of the signature scheme; it is not part
// of the core and carries none of the core's algebraic guarantees itself —
// it just marshals hex-encoded scalars and points off disk.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/xxxcoder-ui/ZANO/internal/config"
	"github.com/xxxcoder-ui/ZANO/internal/tlog"
)

var cfgSearchPaths []string

// activeConfig is populated by rootCmd's PersistentPreRunE and read by the
// generate/verify subcommands to reject an oversized ring before either one
// touches package l2s.
var activeConfig *config.Config

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "l2sctl",
		Short:         "Generate and verify L2S linkable multi-signatures",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgSearchPaths...)
			if err != nil {
				return err
			}
			activeConfig = cfg
			level, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zapcore.InfoLevel
			}
			tlog.SetLogger(tlog.NewLogfmt(os.Stderr, level))
			return nil
		},
	}
	cmd.PersistentFlags().StringArrayVar(&cfgSearchPaths, "config-path", []string{"."}, "directories searched for l2sctl.yaml")
	cmd.AddCommand(generateCmd(), verifyCmd())
	return cmd
}
