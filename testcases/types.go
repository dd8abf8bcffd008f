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

// Package testcases provides reference designs whose canopy area is known
// in closed form.  The designs are used by the tests of several packages
// and by the generators in the sub-directories.
package testcases

import "seehuhn.de/go/chute"

// TestCase is a reference design.
type TestCase struct {
	Name   string                 // lowercase a-z and _ only
	Design func() *chute.Designer // builds a fresh, evaluated design
	Area   float64                // canopy area without seam allowances, m²
	Tol    float64                // relative tolerance at chute.ExportResolution
}

// All lists the reference designs by category.
var All = map[string][]TestCase{
	"circular":  circularCases,
	"polygonal": polygonalCases,
}

func newDesign(name string, inputs []chute.InputValue, params []chute.ParameterValue, sections ...*chute.Section) *chute.Designer {
	d := &chute.Designer{
		Name:         name,
		Gores:        8,
		Diameter:     1,
		Fabric:       chute.NewFabricSelector(),
		Instructions: []string{"Cut out fabric"},
		Inputs:       inputs,
		Parameters:   params,
		Sections:     sections,
	}
	d.UpdateCalculations()
	return d
}

func input(id string, value float64) chute.InputValue {
	return chute.InputValue{
		ID:      id,
		Value:   value,
		Default: value,
		Unit:    chute.MeterFoot,
		Max:     10,
	}
}

func param(id, expr string) chute.ParameterValue {
	return chute.ParameterValue{ID: id, Expression: expr, DisplayUnit: chute.MeterFoot}
}

// band returns a circular section with the given profile line.
func band(gores int, x1, y1, x2, y2 string) *chute.Section {
	s := chute.NewCircularSection()
	s.Type.(*chute.CircularSection).Line = line(x1, y1, x2, y2)
	s.Gores = gores
	return s
}

// faceted returns a polygonal section made from the given geometries.
func faceted(gores int, objects ...chute.Geometry) *chute.Section {
	s := chute.NewPolygonalSection()
	s.Type.(*chute.PolygonalSection).Objects = objects
	s.Gores = gores
	return s
}

func line(x1, y1, x2, y2 string) *chute.ConfigurableLine {
	return &chute.ConfigurableLine{
		BeginX: chute.NewScalar(x1),
		BeginY: chute.NewScalar(y1),
		EndX:   chute.NewScalar(x2),
		EndY:   chute.NewScalar(y2),
	}
}
