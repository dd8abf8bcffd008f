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

// facetRatio is the ratio between the slant height of a faceted cone and
// the slant height of the round cone it approximates, for a flat profile.
func facetRatio(gores int) float64 {
	n := float64(gores)
	return math.Pi / (n * math.Tan(math.Pi/n))
}

var polygonalCases = []TestCase{
	{
		Name: "cylinder",
		Design: func() *chute.Designer {
			return newDesign("polygonal cylinder", nil, nil,
				faceted(8, line("0.5", "0", "0.5", "0.3")))
		},
		Area: 2 * math.Pi * 0.5 * 0.3,
		Tol:  1e-9,
	},
	{
		Name: "disk",
		Design: func() *chute.Designer {
			return newDesign("polygonal disk",
				[]chute.InputValue{input("r", 0.5)}, nil,
				faceted(8, line("r", "0", "0", "0")))
		},
		Area: math.Pi * 0.5 * 0.5 * facetRatio(8),
		Tol:  1e-9,
	},
	{
		Name: "point_list_cone",
		Design: func() *chute.Designer {
			pl := chute.NewConfigurablePointList()
			pl.Text = "1, 0\n0, 1\n"
			pl.ScaleX = chute.NewScalar("r")
			pl.ScaleY = chute.NewScalar("h")
			return newDesign("point list cone",
				[]chute.InputValue{input("r", 0.3), input("h", 0.4)}, nil,
				faceted(6, pl))
		},
		Area: math.Pi * 0.3 * math.Hypot(0.3*facetRatio(6), 0.4),
		Tol:  1e-9,
	},
	{
		Name: "two_bands",
		Design: func() *chute.Designer {
			return newDesign("two bands",
				[]chute.InputValue{input("r", 0.5)}, nil,
				faceted(12, line("r", "0", "r", "0.1"), line("r", "0.1", "r", "0.25")))
		},
		Area: 2 * math.Pi * 0.5 * 0.25,
		Tol:  1e-9,
	},
	{
		// The faceted gores are slightly shorter than the meridian of
		// the sphere.
		Name: "hemisphere",
		Design: func() *chute.Designer {
			e := chute.NewConfigurableEllipse()
			e.Stop = chute.NewScalar("pi / 2")
			e.RadiusX = chute.NewScalar("r")
			e.RadiusY = chute.NewScalar("r")
			return newDesign("hemisphere",
				[]chute.InputValue{input("r", 0.5)}, nil,
				faceted(16, e))
		},
		Area: 2 * math.Pi * 0.5 * 0.5,
		Tol:  0.01,
	},
}
