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

package pattern

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chute/shape"
)

// Numerical tolerances for the seam offset.
const (
	// jointThreshold is the squared distance below which the end of a
	// segment and the start of the following segment are treated as the
	// same point.
	jointThreshold = 1e-6

	// zeroLengthThreshold is the minimum length of an edge.  Shorter
	// edges have no usable direction.
	zeroLengthThreshold = 1e-6

	// collinearityThreshold is used to detect nearly collinear edges,
	// where the offset lines have no useful intersection.
	collinearityThreshold = 1e-6
)

// offsetLoop joins the segments into a closed loop and moves every edge
// to the right of the direction of travel by the seam allowance of its
// segment.  It returns the joined loop and the offset loop.  The offset
// loop repeats its first point at the end.
func offsetLoop(loop []Segment, cutout bool) (base, out shape.Points) {
	segs := make([]Segment, 0, len(loop))
	for _, seg := range loop {
		if len(seg.Points) > 0 {
			segs = append(segs, Segment{
				Points:        slices.Clone(seg.Points),
				SeamAllowance: seg.SeamAllowance,
			})
		}
	}
	if len(segs) == 0 {
		return nil, nil
	}

	// Drop points at the end of a segment which duplicate the start of
	// the next one.  Segments which become empty are removed, and the
	// pass is repeated since this brings new segments together.
	for changed := true; changed; {
		changed = false
		n := len(segs)
		for i := 1; i <= n; i++ {
			this := &segs[i%n]
			next := segs[(i+1)%n].Points
			if len(next) == 0 {
				continue
			}
			for k := len(this.Points); k > 0 && sqDist(this.Points[k-1], next[0]) < jointThreshold; k-- {
				this.Points = this.Points[:k-1]
				changed = true
			}
		}
		segs = slices.DeleteFunc(segs, func(seg Segment) bool {
			return len(seg.Points) == 0
		})
		if len(segs) == 0 {
			return nil, nil
		}
	}

	last := segs[len(segs)-1]
	dPrev := last.SeamAllowance
	dNext := segs[0].SeamAllowance
	p0 := last.Points[len(last.Points)-1]

	for si, seg := range segs {
		base = append(base, seg.Points...)
		following := segs[(si+1)%len(segs)]

		for i, p1 := range seg.Points {
			isCorner := i == 0
			if isCorner && si != 0 {
				dPrev = dNext
				dNext = seg.SeamAllowance
			}

			var p2 vec.Vec2
			if i < len(seg.Points)-1 {
				p2 = seg.Points[i+1]
			} else {
				p2 = following.Points[0]
			}

			out = offsetVertex(out, p0, p1, p2, dPrev, dNext, cutout && isCorner)
			p0 = p1
			dPrev = dNext
		}
	}

	out = append(out, out[0])
	return base, out
}

// offsetVertex appends the offset of vertex p1 to dst.  The incoming edge
// p0→p1 is moved by dPrev, the outgoing edge p1→p2 by dNext.  If cut is
// set, a corner cutout is produced instead of a mitre.
func offsetVertex(dst shape.Points, p0, p1, p2 vec.Vec2, dPrev, dNext float64, cut bool) shape.Points {
	v01 := p1.Sub(p0)
	v12 := p2.Sub(p1)
	l01 := v01.Length()
	l12 := v12.Length()

	if l01 < zeroLengthThreshold && l12 < zeroLengthThreshold {
		// all three points coincide
		return append(dst, p0)
	}

	// unit normals, 90° clockwise from the edge direction
	var n01, n12 vec.Vec2
	if l01 >= zeroLengthThreshold {
		n01 = vec.Vec2{X: v01.Y, Y: -v01.X}.Mul(1 / l01)
	}
	if l12 >= zeroLengthThreshold {
		n12 = vec.Vec2{X: v12.Y, Y: -v12.X}.Mul(1 / l12)
	}

	// sine of the turning angle at p1
	sinTheta := n01.X*n12.Y - n01.Y*n12.X

	if l01 < zeroLengthThreshold || l12 < zeroLengthThreshold ||
		math.Abs(sinTheta) < collinearityThreshold {
		// Only one direction is usable: offset along it.
		n := n01
		if l01 < zeroLengthThreshold {
			n = n12
		}
		a := p1.Add(n.Mul(dPrev))
		b := p1.Add(n.Mul(dNext))
		if cut {
			return append(dst, a, b)
		}
		return append(dst, a.Add(b).Mul(0.5))
	}

	if cut {
		return append(dst, p1.Add(n01.Mul(dPrev)), p1, p1.Add(n12.Mul(dNext)))
	}

	// Mitre: the point u+p1 with u·n01 = dPrev and u·n12 = dNext.
	u := vec.Vec2{
		X: (dPrev*n12.Y - dNext*n01.Y) / sinTheta,
		Y: (dNext*n01.X - dPrev*n12.X) / sinTheta,
	}
	return append(dst, p1.Add(u))
}

func sqDist(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
