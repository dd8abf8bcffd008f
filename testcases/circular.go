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

package testcases

import (
	"math"

	"seehuhn.de/go/chute"
)

var circularCases = []TestCase{
	{
		Name: "disk",
		Design: func() *chute.Designer {
			return newDesign("disk",
				[]chute.InputValue{input("r", 0.5)}, nil,
				band(1, "0", "0", "r", "0"))
		},
		Area: math.Pi * 0.5 * 0.5,
		Tol:  2e-4,
	},
	{
		Name: "disk_gores",
		Design: func() *chute.Designer {
			return newDesign("disk_gores",
				[]chute.InputValue{input("r", 0.5)}, nil,
				band(8, "0", "0", "r", "0"))
		},
		Area: math.Pi * 0.5 * 0.5,
		Tol:  2e-4,
	},
	{
		Name: "ring",
		Design: func() *chute.Designer {
			return newDesign("ring",
				[]chute.InputValue{input("r", 0.5), input("vent", 0.1)}, nil,
				band(1, "vent", "0", "r", "0"))
		},
		Area: math.Pi * (0.5*0.5 - 0.1*0.1),
		Tol:  2e-4,
	},
	{
		Name: "cone",
		Design: func() *chute.Designer {
			return newDesign("cone", nil, nil,
				band(6, "0", "400*mm", "300*mm", "0"))
		},
		Area: math.Pi * 0.3 * 0.5,
		Tol:  2e-4,
	},
	{
		Name: "frustum",
		Design: func() *chute.Designer {
			return newDesign("frustum", nil, nil,
				band(8, "0.1", "0.35", "0.5", "0"))
		},
		Area: math.Pi * (0.1 + 0.5) * math.Hypot(0.4, 0.35),
		Tol:  2e-4,
	},
	{
		Name: "frustum_reversed",
		Design: func() *chute.Designer {
			return newDesign("frustum_reversed", nil, nil,
				band(8, "0.5", "0", "0.1", "0.35"))
		},
		Area: math.Pi * (0.1 + 0.5) * math.Hypot(0.4, 0.35),
		Tol:  2e-4,
	},
	{
		Name: "cylinder",
		Design: func() *chute.Designer {
			return newDesign("cylinder", nil, nil,
				band(12, "0.5", "0", "0.5", "0.3"))
		},
		Area: 2 * math.Pi * 0.5 * 0.3,
		Tol:  1e-9,
	},
	{
		Name: "skirt_and_cap",
		Design: func() *chute.Designer {
			return newDesign("skirt_and_cap",
				[]chute.InputValue{input("r", 0.5), input("skirt", 0.2)}, nil,
				band(12, "r", "0", "r", "skirt"),
				band(12, "0", "skirt+0.3", "r", "skirt"))
		},
		Area: 2*math.Pi*0.5*0.2 + math.Pi*0.5*math.Hypot(0.5, 0.3),
		Tol:  2e-4,
	},
	{
		Name: "parametric",
		Design: func() *chute.Designer {
			return newDesign("parametric",
				[]chute.InputValue{input("diameter", 1.2), input("height_ratio", 0.5)},
				[]chute.ParameterValue{
					param("radius", "diameter / 2"),
					param("vent", "radius * 0.2"),
					param("height", "height_ratio * radius"),
				},
				band(10, "vent", "height", "radius", "0"))
		},
		Area: math.Pi * (0.12 + 0.6) * math.Hypot(0.48, 0.3),
		Tol:  2e-4,
	},
	{
		Name:   "default",
		Design: chute.Default,
		Area:   math.Pi * (0.2 + 1.0) * math.Hypot(0.8, 0.7),
		Tol:    2e-4,
	},
}
