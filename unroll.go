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

package chute

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chute/pattern"
	"seehuhn.de/go/chute/shape"
)

const (
	pieceName = "gore"

	// degenerateThreshold is the smallest band width, and the smallest
	// difference in radius, which is not treated as zero.
	degenerateThreshold = 1e-6

	// fullCircleAngle is the sector angle above which an unrolled band is
	// treated as a complete disk.
	fullCircleAngle = 1.999 * math.Pi

	// minSectorSteps is the smallest number of steps used for an arc of
	// an unrolled band.
	minSectorSteps = 2
)

// circularPiece unrolls one gore of a circular band.  The band is part of
// a cone (or a flat ring, or a cylinder), so the gore is an annular sector
// of a circle.  The piece is placed with the bisector of the sector
// pointing down and the outer (skirt) edge touching the x-axis.
func (s *Section) circularPiece(c *CircularSection, resolution int) *pattern.Piece {
	piece := pattern.NewPiece(pieceName)
	piece.CornerCutout = s.CornerCutout

	l := c.Line.Line()
	pt1, pt2, seams := l.Begin, l.End, s.Seams
	if pt2.X < pt1.X {
		pt1, pt2, seams = pt2, pt1, seams.Rotate180()
	}
	// pt1 is the inner, pt2 the outer point

	distance := pt2.Sub(pt1).Length()
	if distance < degenerateThreshold || s.Gores <= 0 {
		return piece
	}
	gores := float64(s.Gores)

	if pt2.X-pt1.X < degenerateThreshold {
		// A cylinder: the gore is a rectangle.
		halfWidth := pt1.X * 2 * math.Pi / gores / 2
		height := math.Abs(pt1.Y - pt2.Y)
		bottomLeft := vec.Vec2{X: -halfWidth, Y: 0}
		bottomRight := vec.Vec2{X: halfWidth, Y: 0}
		topLeft := vec.Vec2{X: -halfWidth, Y: height}
		topRight := vec.Vec2{X: halfWidth, Y: height}

		piece.AddSegment(shape.Points{bottomRight, topRight}, seams.Right)
		piece.AddSegment(shape.Points{topRight, topLeft}, seams.Top)
		piece.AddSegment(shape.Points{topLeft, bottomLeft}, seams.Left)
		piece.AddSegment(shape.Points{bottomLeft, bottomRight}, seams.Bottom)
		return piece
	}

	// Distances from the apex of the cone, measured along the surface.
	yIntersect := -pt1.X * ((pt2.Y - pt1.Y) / (pt2.X - pt1.X))
	innerRadius := math.Hypot(pt1.X, yIntersect)
	outerRadius := innerRadius + distance

	angle := pt2.X / outerRadius * 2 * math.Pi / gores
	hasCutout := innerRadius > seams.Top

	if angle >= fullCircleAngle {
		// The gore is a complete disk, centered at the origin.
		piece.AddSegment(arc(outerRadius, vec.Vec2{}, 0, 2*math.Pi, resolution), seams.Bottom)
		if hasCutout {
			// Clockwise, so that the seam allowance shrinks the hole.
			hole := arc(innerRadius, vec.Vec2{}, 2*math.Pi, 0, resolution)
			piece.AddHole(pattern.Segment{Points: hole, SeamAllowance: seams.Top})
		}
		return piece
	}

	start := -angle/2 - math.Pi/2
	stop := start + angle
	center := vec.Vec2{X: 0, Y: outerRadius}

	outer := arc(outerRadius, center, start, stop, resolution)
	startOuter := outer[0]
	endOuter := outer[len(outer)-1]
	piece.AddSegment(outer, seams.Bottom)

	if !hasCutout {
		// The sector is pointed: both sides meet at the apex.
		piece.AddSegment(shape.Points{endOuter, center}, seams.Right)
		piece.AddSegment(shape.Points{center, startOuter}, seams.Left)
		return piece
	}

	inner := arc(innerRadius, center, stop, start, resolution)
	piece.AddSegment(shape.Points{endOuter, inner[0]}, seams.Right)
	piece.AddSegment(inner, seams.Top)
	piece.AddSegment(shape.Points{inner[len(inner)-1], startOuter}, seams.Left)
	return piece
}

// arc samples a circular arc from angle start to angle stop.  The number
// of steps is the share of resolution covered by the arc, rounded up to an
// even number and at least minSectorSteps.  The middle of the arc is
// always a sample point.
func arc(radius float64, center vec.Vec2, start, stop float64, resolution int) shape.Points {
	diff := stop - start
	steps := int(math.Round(math.Abs(diff) / (2 * math.Pi) * float64(resolution)))
	steps = max(steps+steps%2, minSectorSteps)

	pts := make(shape.Points, steps+1)
	for i := range pts {
		phi := start + float64(i)/float64(steps)*diff
		pts[i] = vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		}
	}
	return pts
}

// polygonalPiece unrolls one gore of a polygonal band.  Every point of the
// profile becomes a point on the right edge of the gore, at half the width
// of the corresponding polygon side.  The height along the gore is the
// length of the profile, measured in the middle of the flat gore panel.
func (s *Section) polygonalPiece(resolution int) *pattern.Piece {
	if s.Gores < 2 {
		piece := pattern.NewPiece(pieceName)
		piece.CornerCutout = s.CornerCutout
		return piece
	}

	profile := s.CrossSection(resolution, true)
	if len(profile) < 2 {
		piece := pattern.NewPiece(pieceName)
		piece.CornerCutout = s.CornerCutout
		return piece
	}

	centerToSide := shape.PolygonCenterToSide(s.Gores)
	edgeLen := shape.PolygonEdgeLen(s.Gores)

	right := make(shape.Points, len(profile))
	y := 0.0
	for i, pt := range profile {
		right[i] = vec.Vec2{X: edgeLen * pt.X * 0.5, Y: y}
		if i+1 < len(profile) {
			next := profile[i+1]
			y += math.Hypot((pt.X-next.X)*centerToSide, pt.Y-next.Y)
		}
	}

	gore := pattern.NewSymmetricGore(right, s.Seams)
	return gore.Piece(pieceName, s.CornerCutout)
}
