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

// Package pattern turns outlines of fabric pieces into cutting patterns.
//
// A [Piece] is described by a closed loop of [Segment] values, traversed
// counter-clockwise.  Each segment carries its own seam allowance.
// [Piece.Compute] moves every edge outwards by the seam allowance of its
// segment and joins neighbouring edges with mitred or cut-out corners.
// Pieces may have holes, which are loops traversed clockwise; offsetting
// a hole makes it smaller.
package pattern

import (
	"errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chute/shape"
)

// ErrNotComputed is returned when results of [Piece.Compute] are read
// before the method was called.
var ErrNotComputed = errors.New("pattern piece has not been computed")

// Segment is a part of the outline of a pattern piece which shares a
// common seam allowance.
type Segment struct {
	Points        shape.Points
	SeamAllowance float64
}

// MirrorX returns a copy of s, mirrored at the y-axis.
func (s Segment) MirrorX() Segment {
	return Segment{Points: s.Points.MirrorX(), SeamAllowance: s.SeamAllowance}
}

// Reverse returns a copy of s with the point order reversed.
func (s Segment) Reverse() Segment {
	return Segment{Points: s.Points.Reverse(), SeamAllowance: s.SeamAllowance}
}

// Scale scales the points of s in place, relative to the origin.
func (s *Segment) Scale(sx, sy float64) {
	s.Points.Scale(sx, sy)
}

// Seams holds the seam allowances of the four sides of a gore, in meters.
type Seams struct {
	Right, Top, Left, Bottom float64
}

// Uniform returns seam allowances which are the same on all sides.
func Uniform(d float64) Seams {
	return Seams{Right: d, Top: d, Left: d, Bottom: d}
}

// Rotate180 returns the allowances seen after turning the piece upside
// down.
func (s Seams) Rotate180() Seams {
	return Seams{Right: s.Left, Top: s.Bottom, Left: s.Right, Bottom: s.Top}
}

// Piece is a flat piece of fabric.
type Piece struct {
	Name  string
	Count int // number of identical copies needed

	// CornerCutout selects how corners between segments are finished.
	// If set, the corner is cut out down to the original vertex, which
	// marks the stitching point.  Otherwise the offset edges are extended
	// until they meet.
	CornerCutout bool

	Segments []Segment   // outer loop, counter-clockwise
	Holes    [][]Segment // inner loops, clockwise

	computed      bool
	points        shape.Points
	computedPts   shape.Points
	holes         []shape.Points
	computedHoles []shape.Points
}

// NewPiece returns an empty piece with a count of one.
func NewPiece(name string) *Piece {
	return &Piece{Name: name, Count: 1}
}

// AddSegment appends a segment to the outer loop.
func (p *Piece) AddSegment(pts shape.Points, seamAllowance float64) {
	p.Segments = append(p.Segments, Segment{Points: pts, SeamAllowance: seamAllowance})
	p.computed = false
}

// AddHole adds an inner loop.
func (p *Piece) AddHole(segs ...Segment) {
	p.Holes = append(p.Holes, segs)
	p.computed = false
}

// IsEmpty reports whether the piece has no outline at all.
func (p *Piece) IsEmpty() bool {
	for _, seg := range p.Segments {
		if len(seg.Points) > 0 {
			return false
		}
	}
	return true
}

// Compute calculates the outline of the piece including seam allowances.
func (p *Piece) Compute() {
	p.points, p.computedPts = offsetLoop(p.Segments, p.CornerCutout)

	p.holes = p.holes[:0]
	p.computedHoles = p.computedHoles[:0]
	for _, hole := range p.Holes {
		base, out := offsetLoop(hole, p.CornerCutout)
		if len(out) == 0 {
			continue
		}
		p.holes = append(p.holes, base)
		p.computedHoles = append(p.computedHoles, out)
	}
	p.computed = true
}

// Points returns the outer outline without seam allowances.  The loop is
// not explicitly closed.
func (p *Piece) Points() (shape.Points, error) {
	if !p.computed {
		return nil, ErrNotComputed
	}
	return p.points, nil
}

// ComputedPoints returns the outer cutting line.  The first point is
// repeated at the end.
func (p *Piece) ComputedPoints() (shape.Points, error) {
	if !p.computed {
		return nil, ErrNotComputed
	}
	return p.computedPts, nil
}

// HolePoints returns the loops of the holes without seam allowances.
func (p *Piece) HolePoints() ([]shape.Points, error) {
	if !p.computed {
		return nil, ErrNotComputed
	}
	return p.holes, nil
}

// ComputedHoles returns the cutting lines of the holes, each closed like
// the result of [Piece.ComputedPoints].
func (p *Piece) ComputedHoles() ([]shape.Points, error) {
	if !p.computed {
		return nil, ErrNotComputed
	}
	return p.computedHoles, nil
}

// Area returns the signed area of the piece, with or without seam
// allowances.  Holes are subtracted.  A piece without outline has area 0.
func (p *Piece) Area(withSeams bool) (float64, error) {
	if !p.computed {
		return 0, ErrNotComputed
	}
	outer, holes := p.points, p.holes
	if withSeams {
		outer, holes = p.computedPts, p.computedHoles
	}
	a := area(outer)
	for _, h := range holes {
		a += area(h)
	}
	return a, nil
}

// Bounds returns the bounding box of the cutting line.
func (p *Piece) Bounds() (rect.Rect, error) {
	if !p.computed {
		return rect.Rect{}, ErrNotComputed
	}
	return p.computedPts.Bounds()
}

// Outline returns the cutting lines of the piece as a path, the outer
// loop followed by the holes.  The holes run in the opposite direction,
// so the path can be filled with the nonzero winding rule.
func (p *Piece) Outline() (path.Path, error) {
	if !p.computed {
		return nil, ErrNotComputed
	}
	loops := append([]shape.Points{p.computedPts}, p.computedHoles...)
	return loopsPath(loops), nil
}

// SewingLine returns the outline without seam allowances as a path.
func (p *Piece) SewingLine() (path.Path, error) {
	if !p.computed {
		return nil, ErrNotComputed
	}
	loops := append([]shape.Points{p.points}, p.holes...)
	return loopsPath(loops), nil
}

func loopsPath(loops []shape.Points) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, loop := range loops {
			for cmd, pts := range loop.Path(true) {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// area computes the signed area enclosed by a loop (shoelace formula).
// The result is positive for counter-clockwise loops.
func area(loop shape.Points) float64 {
	n := len(loop)
	if n == 0 {
		return 0
	}
	var sum float64
	for i, a := range loop {
		b := loop[(i+1)%n]
		sum += a.X*b.Y - a.Y*b.X
	}
	return sum / 2
}
