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

package chute

import (
	"encoding/json"

	"seehuhn.de/go/chute/formula"
)

// Scalar is a numeric field whose value is given by a formula.
//
// Only the formula is stored when a design is saved.  The value is
// recomputed by [Scalar.Update].
type Scalar struct {
	Expr  string
	Value float64
}

// NewScalar returns a scalar with the given formula.  The value is
// evaluated in a fresh context, so formulas using only constants are
// usable before the first update.
func NewScalar(expr string) Scalar {
	return Scalar{Expr: expr, Value: formula.New().EvaluateOrZero(expr)}
}

// Update re-evaluates the formula.  If evaluation fails, the value
// becomes 0.
func (s *Scalar) Update(ctx *formula.Context) {
	s.Value = ctx.EvaluateOrZero(s.Expr)
}

// MarshalJSON implements the [json.Marshaler] interface.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Expr)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var expr string
	if err := json.Unmarshal(data, &expr); err != nil {
		return err
	}
	*s = NewScalar(expr)
	return nil
}
