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

// Package export writes the pattern pieces of a design to files for
// printing and cutting.
//
// The pieces are first arranged side by side by [NewLayout].  A layout can
// then be written as DXF for cutting plotters, as PDF for printing at full
// scale, or rendered as a PNG preview.  All layout coordinates are in
// meters.
package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chute/pattern"
	"seehuhn.de/go/chute/shape"
)

// Layout parameters, in meters.
const (
	// Spacing is the horizontal gap between neighbouring pieces.
	Spacing = 0.1

	// LabelY is the vertical position of the piece labels.  The pieces
	// start at y = 0.
	LabelY = -0.2

	// LabelHeight is the text height of the piece labels.
	LabelHeight = 0.04
)

// Item is a pattern piece placed on the sheet.
type Item struct {
	Label    string
	LabelPos vec.Vec2
	Cut      []shape.Points // cutting lines, outer loop first
	Sew      []shape.Points // sewing lines, outer loop first
}

// Layout is a set of pattern pieces arranged in a row.
type Layout struct {
	Items  []Item
	Bounds rect.Rect // covers all pieces and labels
}

// NewLayout places the pieces from left to right, with the lower left
// corner of each cutting line on the x-axis.  Every piece is labelled with
// its name and the number of copies needed, for example "#2(x12)".
// Empty pieces are skipped.  All pieces must have been computed.
func NewLayout(pieces pattern.Collection) (*Layout, error) {
	l := &Layout{}
	xOffset := 0.0
	for _, p := range pieces {
		outer, err := p.ComputedPoints()
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", p.Name, err)
		}
		if len(outer) == 0 {
			continue
		}
		holes, _ := p.ComputedHoles()
		base, _ := p.Points()
		bbox, err := outer.Bounds()
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", p.Name, err)
		}

		M := matrix.Identity.Translate(xOffset-bbox.LLx, -bbox.LLy)
		item := Item{
			Label:    fmt.Sprintf("%s(x%d)", p.Name, p.Count),
			LabelPos: vec.Vec2{X: xOffset, Y: LabelY},
			Cut:      []shape.Points{transform(M, outer)},
			Sew:      []shape.Points{transform(M, base)},
		}
		for _, h := range holes {
			item.Cut = append(item.Cut, transform(M, h))
		}
		sewHoles, _ := p.HolePoints()
		for _, h := range sewHoles {
			item.Sew = append(item.Sew, transform(M, h))
		}

		width := bbox.URx - bbox.LLx
		height := bbox.URy - bbox.LLy
		l.extend(rect.Rect{LLx: xOffset, LLy: LabelY, URx: xOffset + width, URy: height})
		l.Items = append(l.Items, item)
		xOffset += width + Spacing
	}
	return l, nil
}

func (l *Layout) extend(r rect.Rect) {
	if len(l.Items) == 0 {
		l.Bounds = r
		return
	}
	l.Bounds.LLx = min(l.Bounds.LLx, r.LLx)
	l.Bounds.LLy = min(l.Bounds.LLy, r.LLy)
	l.Bounds.URx = max(l.Bounds.URx, r.URx)
	l.Bounds.URy = max(l.Bounds.URy, r.URy)
}

// IsEmpty reports whether the layout contains no pieces.
func (l *Layout) IsEmpty() bool {
	return len(l.Items) == 0
}

func transform(M matrix.Matrix, pts shape.Points) shape.Points {
	res := make(shape.Points, len(pts))
	for i, pt := range pts {
		res[i].X, res[i].Y = M.Apply(pt.X, pt.Y)
	}
	return res
}
