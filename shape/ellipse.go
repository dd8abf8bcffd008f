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

package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// minArcSteps is the smallest number of steps used to sample an arc.
const minArcSteps = 3

// EllipseArc is a section of an axis-aligned ellipse, which is then
// rotated counter-clockwise by Rotation (radians) and moved to Center.
//
// The arc runs from angle Start to angle Stop.  If Stop is smaller than
// Start the arc is traversed clockwise.  Spans of more than one full turn
// are kept as given.
type EllipseArc struct {
	Start, Stop      float64
	Rotation         float64
	RadiusX, RadiusY float64
	Center           vec.Vec2
}

// Circle returns a full circle with the given radius and center.
func Circle(radius float64, center vec.Vec2) *EllipseArc {
	return &EllipseArc{
		Start:   0,
		Stop:    2 * math.Pi,
		RadiusX: radius,
		RadiusY: radius,
		Center:  center,
	}
}

// Sample returns steps+1 points at equal angular increments, where
// steps is the share of resolution covered by the arc (but at least 3).
func (a *EllipseArc) Sample(resolution int) Points {
	start := math.Mod(a.Start, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}
	diff := a.Stop - a.Start

	steps := int(math.Round(math.Abs(diff) / (2 * math.Pi) * float64(resolution)))
	steps = max(steps, minArcSteps)

	res := make(Points, steps+1)
	for i := range res {
		phi := start + float64(i)/float64(steps)*diff
		res[i] = vec.Vec2{
			X: a.RadiusX * math.Cos(phi),
			Y: a.RadiusY * math.Sin(phi),
		}
	}

	if a.Rotation != 0 || a.Center != (vec.Vec2{}) {
		M := matrix.Rotate(a.Rotation).Translate(a.Center.X, a.Center.Y)
		for i, pt := range res {
			res[i].X, res[i].Y = M.Apply(pt.X, pt.Y)
		}
	}
	return res
}

func (*EllipseArc) isGeometry() {}
