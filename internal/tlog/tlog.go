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

// Package tlog wraps the logger the generator and verifier each write one
// Debug summary line through on success: a zap.Logger writing logfmt lines, the
// same encoding choice made by hyperledger fabric's flogging package. The
// default logger is a no-op so importing this module never causes output
// unless a caller opts in with SetLogger.
package tlog

import (
	"io"
	"sync/atomic"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the process-wide logger. Safe for concurrent use.
func L() *zap.Logger { return current.Load() }

// SetLogger replaces the process-wide logger.
func SetLogger(l *zap.Logger) { current.Store(l) }

// NewLogfmt builds a logfmt-encoded zap.Logger writing to w at the given
// minimum level, suitable for passing to SetLogger. Secret scalars are
// never passed to Debug/Error calls in this module; only shapes, indices,
// and error codes are.
func NewLogfmt(w io.Writer, level zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zaplogfmt.NewEncoder(cfg)
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}

// Int is a thin re-export of zap.Int, kept here so call sites in this
// module only need to import one logging package.
func Int(key string, val int) zap.Field { return zap.Int(key, val) }

// Err is a thin re-export of zap.Error.
func Err(err error) zap.Field { return zap.Error(err) }
