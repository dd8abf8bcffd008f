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

import "math"

// The functions below describe a regular polygon with n sides and unit
// circumradius.  A canopy made from n flat gores has such a polygon as
// its horizontal cross section.

// PolygonEdgeLen returns the side length of the polygon.
func PolygonEdgeLen(n int) float64 {
	return 2 * math.Sin(math.Pi/float64(n))
}

// PolygonCenterToSide returns the distance from the center of the polygon
// to the middle of a side.
func PolygonCenterToSide(n int) float64 {
	return math.Cos(math.Pi / float64(n))
}

// PolygonToCircleExpansion returns the factor by which the circumradius of
// the polygon must grow so that its perimeter equals the circumference of
// the unit circle.
func PolygonToCircleExpansion(n int) float64 {
	return 2 * math.Pi / (PolygonEdgeLen(n) * float64(n))
}
