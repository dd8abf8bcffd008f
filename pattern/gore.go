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

import "seehuhn.de/go/chute/shape"

// Gore is a four-sided pattern piece with straight top and bottom edges.
// Both side profiles run from the bottom to the top.
type Gore struct {
	Right, Left shape.Points
	Seams       Seams
}

// NewSymmetricGore returns a gore whose left side is the mirror image of
// the right side.
func NewSymmetricGore(right shape.Points, seams Seams) *Gore {
	return &Gore{Right: right, Left: right.MirrorX(), Seams: seams}
}

// Piece returns the gore as a counter-clockwise pattern piece: the right
// profile, the top edge, the left profile (reversed) and the bottom edge.
// A gore with an empty profile gives an empty piece.
func (g *Gore) Piece(name string, cornerCutout bool) *Piece {
	piece := NewPiece(name)
	piece.CornerCutout = cornerCutout
	if len(g.Right) == 0 || len(g.Left) == 0 {
		return piece
	}

	right := g.Right
	left := g.Left.Reverse()

	piece.AddSegment(right, g.Seams.Right)
	piece.AddSegment(shape.Points{right[len(right)-1], left[0]}, g.Seams.Top)
	piece.AddSegment(left, g.Seams.Left)
	piece.AddSegment(shape.Points{left[len(left)-1], right[0]}, g.Seams.Bottom)
	return piece
}

// Collection is a set of pattern pieces, each needed [Piece.Count] times.
type Collection []*Piece

// Compute computes all pieces in the collection.
func (c Collection) Compute() {
	for _, p := range c {
		p.Compute()
	}
}

// Area returns the total fabric area of all copies of all pieces.
func (c Collection) Area(withSeams bool) (float64, error) {
	var total float64
	for _, p := range c {
		a, err := p.Area(withSeams)
		if err != nil {
			return 0, err
		}
		total += a * float64(p.Count)
	}
	return total, nil
}
