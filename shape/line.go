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

// Line is a straight line segment.
type Line struct {
	Begin, End vec.Vec2
}

// Sample returns the two end points.  The resolution is ignored.
func (l *Line) Sample(int) Points {
	return Points{l.Begin, l.End}
}

func (*Line) isGeometry() {}
