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

// Package shape provides the geometric primitives from which chute cross
// sections are built.
//
// Every primitive implements [Geometry] and turns itself into an ordered
// [Points] sequence for a given sampling resolution.  The resolution is
// the number of points a full turn of an arc would receive; straight
// lines ignore it.
//
// Coordinates follow the cross-section convention used throughout this
// module: x is the radius measured from the canopy axis and y is the
// height, both in meters.
package shape

import (
	"errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrEmpty is returned by operations which need at least one point.
var ErrEmpty = errors.New("empty point sequence")

// Geometry is one of the primitive shapes [Line], [EllipseArc],
// [PointList] and [BezierSpline].
type Geometry interface {
	// Sample returns the shape as a sequence of points.
	Sample(resolution int) Points

	isGeometry()
}

// Points is an ordered sequence of 2D points.
type Points []vec.Vec2

// Bounds returns the smallest axis-aligned rectangle containing all points.
func (p Points) Bounds() (rect.Rect, error) {
	if len(p) == 0 {
		return rect.Rect{}, ErrEmpty
	}
	r := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, pt := range p[1:] {
		r.LLx = min(r.LLx, pt.X)
		r.LLy = min(r.LLy, pt.Y)
		r.URx = max(r.URx, pt.X)
		r.URy = max(r.URy, pt.Y)
	}
	return r, nil
}

// First returns the first point of the sequence.
func (p Points) First() (vec.Vec2, error) {
	if len(p) == 0 {
		return vec.Vec2{}, ErrEmpty
	}
	return p[0], nil
}

// Last returns the last point of the sequence.
func (p Points) Last() (vec.Vec2, error) {
	if len(p) == 0 {
		return vec.Vec2{}, ErrEmpty
	}
	return p[len(p)-1], nil
}

// MirrorX returns a copy of p, mirrored at the y-axis (x ↦ -x).
func (p Points) MirrorX() Points {
	res := make(Points, len(p))
	for i, pt := range p {
		res[i] = vec.Vec2{X: -pt.X, Y: pt.Y}
	}
	return res
}

// Reverse returns a copy of p with the order of the points reversed.
func (p Points) Reverse() Points {
	res := make(Points, len(p))
	for i, pt := range p {
		res[len(p)-1-i] = pt
	}
	return res
}

// Scale scales all points in place, relative to the origin.
func (p Points) Scale(sx, sy float64) {
	for i := range p {
		p[i].X *= sx
		p[i].Y *= sy
	}
}

// Path returns the points as a polyline.  If closed is true, the path
// ends with a ClosePath command.
func (p Points) Path(closed bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{p[0]}) {
			return
		}
		for _, pt := range p[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pt}) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}
