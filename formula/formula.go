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

// Package formula evaluates the arithmetic expressions which drive the
// parametric shapes of a design.
//
// A [Context] maps identifiers to numeric values.  New contexts are seeded
// with length and angle units (m, mm, yd, ft, inch, rad, deg), the constants
// pi and e, and a small set of math functions.  All stored values are in SI
// base units.
package formula

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	// ErrInvalidID is returned (wrapped) when an identifier is malformed.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrDuplicateID is returned when an identifier is already bound.
	ErrDuplicateID = errors.New("identifier already used")

	// ErrNotFinite is returned when an expression evaluates to NaN or
	// an infinite value, for example after a division by zero.
	ErrNotFinite = errors.New("result is not a finite number")

	// ErrEmpty is returned when an empty expression is evaluated.
	ErrEmpty = errors.New("empty expression")
)

// Constants lists the values every new context starts with.
var Constants = map[string]float64{
	"m":    1.0,
	"mm":   0.001,
	"yd":   0.9144,
	"ft":   0.3048,
	"inch": 0.0254,
	"rad":  1.0,
	"pi":   math.Pi,
	"e":    math.E,
	"deg":  math.Pi / 180,
}

// Context is a mutable mapping from identifiers to numeric values.
//
// A Context is not safe for concurrent use.
type Context struct {
	env map[string]any
}

// New returns a context holding the default constants and functions.
func New() *Context {
	c := &Context{env: make(map[string]any, len(Constants)+8)}
	for name, val := range Constants {
		c.env[name] = val
	}
	return c
}

// Clone returns an independent copy of c.
func (c *Context) Clone() *Context {
	return &Context{env: maps.Clone(c.env)}
}

// Has reports whether name is bound, either as a value or as a builtin
// function.
func (c *Context) Has(name string) bool {
	if _, ok := c.env[name]; ok {
		return true
	}
	_, ok := functions[name]
	return ok || builtins[name]
}

// Lookup returns the value bound to name.
func (c *Context) Lookup(name string) (float64, bool) {
	v, ok := c.env[name]
	if !ok {
		return 0, false
	}
	x, ok := v.(float64)
	return x, ok
}

// Names returns the bound value identifiers in sorted order.
func (c *Context) Names() []string {
	return slices.Sorted(maps.Keys(c.env))
}

// Bind binds name to val.  Names which are malformed or already bound
// are refused, and the context is left unchanged.
func (c *Context) Bind(name string, val float64) error {
	if err := ValidateID(name); err != nil {
		return err
	}
	if c.Has(name) {
		return fmt.Errorf("%q: %w", name, ErrDuplicateID)
	}
	c.env[name] = val
	return nil
}

// Evaluate parses src and evaluates it against the values currently bound
// in c.
func (c *Context) Evaluate(src string) (float64, error) {
	if strings.TrimSpace(src) == "" {
		return 0, ErrEmpty
	}

	opts := make([]expr.Option, 0, len(functions)+2)
	opts = append(opts, expr.Env(c.env), expr.AsFloat64())
	for _, name := range functionNames {
		opts = append(opts, functions[name])
	}

	program, err := expr.Compile(src, opts...)
	if err != nil {
		return 0, err
	}
	out, err := expr.Run(program, c.env)
	if err != nil {
		return 0, err
	}

	var x float64
	switch v := out.(type) {
	case float64:
		x = v
	case int:
		x = float64(v)
	default:
		return 0, fmt.Errorf("%q: unexpected result type %T", src, out)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%q: %w", src, ErrNotFinite)
	}
	return x, nil
}

// EvaluateOrZero evaluates src and returns 0 if evaluation fails.
// This is used for shape fields, where a broken formula must not stop
// the geometry pipeline.
func (c *Context) EvaluateOrZero(src string) float64 {
	x, err := c.Evaluate(src)
	if err != nil {
		return 0
	}
	return x
}
