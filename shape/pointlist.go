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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// PointList is a shape given by literal coordinates, for example pasted
// from a spreadsheet.
//
// Text holds one "x, y" pair per line.  Each point is first scaled by
// (ScaleX, ScaleY) and then moved by (OffsetX, OffsetY).
type PointList struct {
	Text             string
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// NewPointList returns a point list with unit scale and no offset.
func NewPointList(text string) *PointList {
	return &PointList{Text: text, ScaleX: 1, ScaleY: 1}
}

// Sample returns the transformed points.  Lines which do not contain
// exactly two numbers are skipped.  The resolution is ignored.
func (l *PointList) Sample(int) Points {
	raw := ParsePairs(l.Text)
	M := matrix.Scale(l.ScaleX, l.ScaleY).Translate(l.OffsetX, l.OffsetY)
	for i, pt := range raw {
		raw[i].X, raw[i].Y = M.Apply(pt.X, pt.Y)
	}
	return raw
}

func (*PointList) isGeometry() {}

// ParsePairs reads newline-separated "x, y" pairs.  Malformed lines are
// ignored.
func ParsePairs(text string) Points {
	var res Points
	for line := range strings.Lines(text) {
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			continue
		}
		res = append(res, vec.Vec2{X: x, Y: y})
	}
	return res
}
