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

import "seehuhn.de/go/geom/vec"

// Control is a control point of a [BezierSpline]: a point on the curve
// together with its incoming and outgoing handles.
type Control struct {
	In, Center, Out vec.Vec2
}

// BezierSpline is a piecewise cubic Bézier curve through a sequence of
// control points.
type BezierSpline struct {
	Controls []Control
}

// AddControl appends a control point to the spline.
func (b *BezierSpline) AddControl(in, center, out vec.Vec2) {
	b.Controls = append(b.Controls, Control{In: in, Center: center, Out: out})
}

// Sample emits resolution points for each piece of the spline, followed by
// the final control point.
func (b *BezierSpline) Sample(resolution int) Points {
	switch len(b.Controls) {
	case 0:
		return nil
	case 1:
		return Points{b.Controls[0].Center}
	}

	resolution = max(resolution, 1)
	res := make(Points, 0, (len(b.Controls)-1)*resolution+1)
	for i := range len(b.Controls) - 1 {
		p0 := b.Controls[i].Center
		p1 := b.Controls[i].Out
		p2 := b.Controls[i+1].In
		p3 := b.Controls[i+1].Center
		for j := range resolution {
			t := float64(j) / float64(resolution)
			s := 1 - t
			pt := p0.Mul(s * s * s).
				Add(p1.Mul(3 * s * s * t)).
				Add(p2.Mul(3 * s * t * t)).
				Add(p3.Mul(t * t * t))
			res = append(res, pt)
		}
	}
	res = append(res, b.Controls[len(b.Controls)-1].Center)
	return res
}

func (*BezierSpline) isGeometry() {}
