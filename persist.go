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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxGores is the largest number of gores a section may have.
const MaxGores = 360

// ErrGoreCount is returned by [Load] when a section has a negative number
// of gores, or more than [MaxGores].
var ErrGoreCount = errors.New("invalid number of gores")

// Default returns the design shown when the program starts: a conical
// canopy with a vent, driven by a diameter and two ratios.
func Default() *Designer {
	section := NewCircularSection()
	line := section.Type.(*CircularSection).Line
	line.BeginX = NewScalar("vent_ratio*diameter")
	line.BeginY = NewScalar("height_ratio*diameter")
	line.EndX = NewScalar("diameter")
	line.EndY = NewScalar("0")

	d := &Designer{
		Name:         "Untitled Parachute",
		Gores:        8,
		Diameter:     1.0,
		Fabric:       NewFabricSelector(),
		Instructions: []string{"Cut out fabric"},

		UseGlobalSeamAllowance: true,
		GlobalSeamAllowance:    defaultSeamAllowance,

		Inputs: []InputValue{
			{ID: "input1", Unit: MeterFoot, Max: 10},
			{ID: "input2", Unit: MeterFoot, Max: 10},
			{ID: "diameter", Description: "Parachute Diameter", Unit: MeterFoot, Max: 10, Value: 1, Default: 1},
			{ID: "height_ratio", Description: "height / diameter of parachute", Unit: UnitLess, Max: 1, Value: 0.7, Default: 0.7},
			{ID: "vent_ratio", Description: "vent_diameter / diameter of parachute", Unit: UnitLess, Max: 1, Value: 0.2, Default: 0.2},
		},
		Parameters: []ParameterValue{
			{ID: "param1", Expression: "input1*2", DisplayUnit: MeterFoot},
			{ID: "param2", Expression: "input2*2", DisplayUnit: MeterFoot},
			{ID: "param3", Expression: "param1+param2", DisplayUnit: MeterFoot},
		},
		Sections: []*Section{section},
	}
	d.UpdateCalculations()
	return d
}

// Load reads a design in the JSON format written by [Designer.Save].
// Fields missing from the input keep their zero values, except for
// section fields, which keep the defaults of a new section.  The formulas
// are evaluated before Load returns.
func Load(r io.Reader) (*Designer, error) {
	d := &Designer{Fabric: NewFabricSelector()}
	dec := json.NewDecoder(r)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("loading design: %w", err)
	}
	d.Sections = removeNil(d.Sections)
	for i, s := range d.Sections {
		if s.Gores < 0 || s.Gores > MaxGores {
			return nil, fmt.Errorf("loading design: section %d has %d gores: %w", i+1, s.Gores, ErrGoreCount)
		}
	}
	d.UpdateCalculations()
	return d, nil
}

// Save writes the design as indented JSON.  The evaluation context is not
// stored.
func (d *Designer) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Equal reports whether d and other describe the same design.  Derived
// values are not compared.
func (d *Designer) Equal(other *Designer) bool {
	if d == nil || other == nil {
		return d == other
	}
	a, err := json.Marshal(d)
	if err != nil {
		return false
	}
	b, err := json.Marshal(other)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

func removeNil[T any](s []*T) []*T {
	res := s[:0]
	for _, x := range s {
		if x != nil {
			res = append(res, x)
		}
	}
	return res
}
