// seehuhn.de/go/chute - parachute pattern design
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package chute designs parachute canopies and derives their cutting
// patterns.
//
// A [Designer] holds named input values, derived parameters and a list of
// canopy [Section] values.  Every numeric field of a section is a formula
// (see [Scalar]) which may refer to the inputs and parameters.  After a
// change, [Designer.UpdateCalculations] re-evaluates all formulas.  The
// sections can then be sampled as cross sections (radius against height),
// unrolled into flat pattern pieces with seam allowances, or revolved into
// a 3D mesh.
//
// All lengths are in meters and all angles in radians.
package chute

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by this package and its sub-packages.
// By default nothing is logged.  Pass nil to disable logging again.
//
// Skipped identifiers and failed parameter formulas are reported at
// [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
