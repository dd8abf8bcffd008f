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

import "math"

// Vec3 is a point in space.  The y-axis is the axis of the canopy.
type Vec3 struct {
	X, Y, Z float64
}

// Mesh is a triangulated surface with one color per vertex.
type Mesh struct {
	Positions []Vec3
	Colors    []RGB
	Indices   []uint32 // three per triangle, counter-clockwise
}

// Mesh revolves the expanded cross section of every section around the
// canopy axis, once per gore.  Each gore boundary is stored twice, so
// that neighbouring gores can have different colors.
//
// A design without any usable section gives a single degenerate triangle.
func (d *Designer) Mesh(resolution int) *Mesh {
	m := &Mesh{}

	for _, s := range d.Sections {
		cross := s.CrossSection(resolution, true)
		n := len(cross)
		gores := s.Gores
		if n < 2 || gores <= 0 {
			continue
		}
		offset := uint32(len(m.Positions))

		for g := range gores {
			phi := float64(g) / float64(gores) * 2 * math.Pi
			sin, cos := math.Sincos(phi)
			for range 2 {
				for _, pt := range cross {
					m.Positions = append(m.Positions, Vec3{X: pt.X * cos, Y: pt.Y, Z: pt.X * sin})
				}
			}
		}

		for g := range gores {
			for i := range n - 1 {
				left0 := uint32((g*2+1)*n+i) + offset
				left1 := left0 + 1
				right0 := uint32(((g*2+2)%(2*gores))*n+i) + offset
				right1 := right0 + 1
				m.Indices = append(m.Indices,
					left0, right0, left1,
					right0, right1, left1)
			}
		}

		// The second copy of gore boundary g and the first copy of
		// boundary g+1 enclose gore g.
		m.appendColor(s.Color(0), n)
		for g := range gores - 1 {
			m.appendColor(s.Color(g+1), 2*n)
		}
		m.appendColor(s.Color(0), n)
	}

	if len(m.Positions) == 0 {
		m.Positions = make([]Vec3, 3)
		m.Colors = make([]RGB, 3)
		m.Indices = []uint32{0, 1, 2}
	}
	return m
}

func (m *Mesh) appendColor(c RGB, count int) {
	for range count {
		m.Colors = append(m.Colors, c)
	}
}
