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
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/chute/formula"
	"seehuhn.de/go/chute/pattern"
	"seehuhn.de/go/chute/shape"
)

// ErrIndex is returned when an element is addressed by an index which is
// out of range.
var ErrIndex = errors.New("index out of range")

// Resolutions used by the different views of a design.
const (
	CrossSectionResolution = 30
	GoreResolution         = 80
	MeshResolution         = 60
	ExportResolution       = 360
)

// InputValue is a named value set directly by the user, for example
// through a slider.
type InputValue struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Value       float64      `json:"value"`
	Unit        StandardUnit `json:"unit"`
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	Default     float64      `json:"default_value"`
}

// Reset sets the input back to its default value.
func (v *InputValue) Reset() {
	v.Value = v.Default
}

// Clamp moves the value into the range [Min, Max].
func (v *InputValue) Clamp() {
	v.Value = min(max(v.Value, v.Min), v.Max)
}

// ParameterValue is a named value computed from a formula.  The formula
// may refer to all inputs and to parameters declared earlier.
type ParameterValue struct {
	ID          string       `json:"id"`
	Expression  string       `json:"expression"`
	DisplayUnit StandardUnit `json:"display_unit"`
}

// ParameterResult is the outcome of evaluating one parameter.
type ParameterResult struct {
	ID    string
	Value float64
	Unit  StandardUnit
	Err   error
}

// Display returns the value converted for presentation in the display
// unit of the parameter.
func (r ParameterResult) Display(imperial bool) (float64, string) {
	return r.Unit.Display(r.Value, imperial)
}

// Designer is a complete parachute design.
type Designer struct {
	Name         string         `json:"name"`
	Gores        int            `json:"gores"`
	Diameter     float64        `json:"diameter"`
	Fabric       FabricSelector `json:"fabric"`
	Instructions []string       `json:"instructions"`

	UseGlobalSeamAllowance bool    `json:"use_global_seam_allowance"`
	GlobalSeamAllowance    float64 `json:"global_seam_allowance"`

	Inputs     []InputValue     `json:"input_values"`
	Parameters []ParameterValue `json:"parameter_values"`
	Sections   []*Section       `json:"chute_sections"`

	ctx     *formula.Context
	results []ParameterResult
}

// Context returns the evaluation context built by the most recent call to
// [Designer.UpdateCalculations].
func (d *Designer) Context() *formula.Context {
	if d.ctx == nil {
		return formula.New()
	}
	return d.ctx
}

// ParameterResults returns the values of all parameters, in declaration
// order, as computed by the most recent call to
// [Designer.UpdateCalculations].  Parameters which could not be evaluated
// have a non-nil Err.
func (d *Designer) ParameterResults() []ParameterResult {
	return d.results
}

// UpdateCalculations rebuilds the evaluation context and re-evaluates all
// formulas.  This must be called after every change to the inputs,
// parameters or sections, before derived geometry is read.
//
// The context starts with the constants of [formula.New].  Then the inputs
// and the parameters are bound in order.  Entries with malformed or
// already used identifiers, and parameters whose formula cannot be
// evaluated, are skipped.
func (d *Designer) UpdateCalculations() {
	logger := Logger()
	ctx := formula.New()

	for _, in := range d.Inputs {
		if err := ctx.Bind(in.ID, in.Value); err != nil {
			logger.Debug("input skipped", slog.String("id", in.ID), slog.Any("error", err))
		}
	}

	d.results = make([]ParameterResult, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		res := ParameterResult{ID: p.ID, Unit: p.DisplayUnit}
		if err := formula.ValidateID(p.ID); err != nil {
			res.Err = err
		} else if ctx.Has(p.ID) {
			res.Err = fmt.Errorf("%q: %w", p.ID, formula.ErrDuplicateID)
		} else if x, err := ctx.Evaluate(p.Expression); err != nil {
			res.Err = err
		} else {
			res.Value = x
			res.Err = ctx.Bind(p.ID, x)
		}
		if res.Err != nil {
			logger.Debug("parameter skipped", slog.String("id", p.ID), slog.Any("error", res.Err))
		}
		d.results = append(d.results, res)
	}

	for _, s := range d.Sections {
		s.UpdateFromContext(ctx)
	}
	d.ctx = ctx
}

// AddInput appends an input value.
func (d *Designer) AddInput(in InputValue) {
	d.Inputs = append(d.Inputs, in)
}

// AddParameter appends a parameter.
func (d *Designer) AddParameter(p ParameterValue) {
	d.Parameters = append(d.Parameters, p)
}

// AddSection appends a section.
func (d *Designer) AddSection(s *Section) {
	d.Sections = append(d.Sections, s)
}

// MoveInput swaps input i with its predecessor (up) or successor.
func (d *Designer) MoveInput(i int, up bool) error {
	return move(d.Inputs, i, up)
}

// MoveParameter swaps parameter i with its predecessor (up) or successor.
func (d *Designer) MoveParameter(i int, up bool) error {
	return move(d.Parameters, i, up)
}

// MoveSection swaps section i with its predecessor (up) or successor.
func (d *Designer) MoveSection(i int, up bool) error {
	return move(d.Sections, i, up)
}

// RemoveInput deletes input i.
func (d *Designer) RemoveInput(i int) error {
	var err error
	d.Inputs, err = removeAt(d.Inputs, i)
	return err
}

// RemoveParameter deletes parameter i.
func (d *Designer) RemoveParameter(i int) error {
	var err error
	d.Parameters, err = removeAt(d.Parameters, i)
	return err
}

// RemoveSection deletes section i.
func (d *Designer) RemoveSection(i int) error {
	var err error
	d.Sections, err = removeAt(d.Sections, i)
	return err
}

func move[T any](s []T, i int, up bool) error {
	j := i + 1
	if up {
		j = i - 1
	}
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return fmt.Errorf("move %d: %w", i, ErrIndex)
	}
	s[i], s[j] = s[j], s[i]
	return nil
}

func removeAt[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return s, fmt.Errorf("remove %d: %w", i, ErrIndex)
	}
	return append(s[:i], s[i+1:]...), nil
}

// CrossSections returns the profiles of all sections, as drawn in a
// cross-section view.
func (d *Designer) CrossSections(resolution int) []shape.Points {
	res := make([]shape.Points, len(d.Sections))
	for i, s := range d.Sections {
		res[i] = s.CrossSection(resolution, false)
	}
	return res
}

// Pieces returns the computed pattern pieces, one per section.  The count
// of each piece is the number of gores of its section.
func (d *Designer) Pieces(resolution int) pattern.Collection {
	res := make(pattern.Collection, len(d.Sections))
	for i, s := range d.Sections {
		p := s.PatternPiece(resolution)
		p.Name = fmt.Sprintf("#%d", i+1)
		p.Count = s.Gores
		p.Compute()
		res[i] = p
	}
	return res
}

// GoreOutlines returns the cutting lines of the pattern pieces, one per section.
func (d *Designer) GoreOutlines(resolution int) []shape.Points {
	pieces := d.Pieces(resolution)
	res := make([]shape.Points, len(pieces))
	for i, p := range pieces {
		res[i], _ = p.ComputedPoints()
	}
	return res
}
