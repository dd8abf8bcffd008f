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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chute/shape"
)

func computed(t *testing.T, p *Piece) shape.Points {
	t.Helper()
	p.Compute()
	pts, err := p.ComputedPoints()
	if err != nil {
		t.Fatal(err)
	}
	return pts
}

func TestTriangleArea(t *testing.T) {
	p := NewPiece("triangle")
	p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -0.5, Y: 4}}, 0)
	p.Compute()

	a, err := p.Area(false)
	if err != nil {
		t.Fatal(err)
	}
	if a != 1.0*4.0*0.5 {
		t.Errorf("area = %g, want 2", a)
	}
}

func TestNotComputed(t *testing.T) {
	p := NewPiece("x")
	p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 0)
	if _, err := p.Area(true); !errors.Is(err, ErrNotComputed) {
		t.Errorf("Area: got %v, want ErrNotComputed", err)
	}
	if _, err := p.ComputedPoints(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("ComputedPoints: got %v, want ErrNotComputed", err)
	}
	p.Compute()
	p.AddSegment(nil, 0)
	if _, err := p.Points(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("Points after edit: got %v, want ErrNotComputed", err)
	}
}

// distToLine returns the distance of q from the line through a and b.
func distToLine(q, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	w := q.Sub(a)
	return math.Abs(d.X*w.Y-d.Y*w.X) / d.Length()
}

func TestOffsetDistance(t *testing.T) {
	triangles := []shape.Points{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -0.5, Y: 4}},
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
		{{X: -1, Y: -1}, {X: 3, Y: 0.5}, {X: 0, Y: 2}},
	}
	const seam = 0.05

	for _, tri := range triangles {
		plain := NewPiece("plain")
		plain.AddSegment(tri, 0)
		plain.Compute()
		a0, _ := plain.Area(true)

		p := NewPiece("seam")
		p.AddSegment(tri, seam)
		out := computed(t, p)
		a1, _ := p.Area(true)
		if a1 <= a0 {
			t.Errorf("area with seams %g is not larger than %g", a1, a0)
		}

		if len(out) != len(tri)+1 {
			t.Fatalf("got %d points, want %d", len(out), len(tri)+1)
		}
		if out[0] != out[len(out)-1] {
			t.Error("loop is not closed")
		}
		for _, q := range out[:len(out)-1] {
			best := math.Inf(1)
			for i := range tri {
				best = min(best, distToLine(q, tri[i], tri[(i+1)%len(tri)]))
			}
			if math.Abs(best-seam) > 1e-9 {
				t.Errorf("point %v has distance %g, want %g", q, best, seam)
			}
		}
	}
}

func square(seams Seams) *Piece {
	p := NewPiece("square")
	p.AddSegment(shape.Points{{X: 1, Y: 0}, {X: 1, Y: 1}}, seams.Right)
	p.AddSegment(shape.Points{{X: 1, Y: 1}, {X: 0, Y: 1}}, seams.Top)
	p.AddSegment(shape.Points{{X: 0, Y: 1}, {X: 0, Y: 0}}, seams.Left)
	p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 1, Y: 0}}, seams.Bottom)
	return p
}

func TestMixedAllowances(t *testing.T) {
	seams := Seams{Right: 0.1, Top: 0.2, Left: 0.3, Bottom: 0.4}

	t.Run("mitre", func(t *testing.T) {
		out := computed(t, square(seams))
		want := shape.Points{
			{X: 1.1, Y: -0.4},
			{X: 1.1, Y: 1.2},
			{X: -0.3, Y: 1.2},
			{X: -0.3, Y: -0.4},
			{X: 1.1, Y: -0.4},
		}
		diff(t, want, out, approx)
	})

	t.Run("cutout", func(t *testing.T) {
		p := square(seams)
		p.CornerCutout = true
		out := computed(t, p)
		if len(out) != 13 {
			t.Fatalf("got %d points, want 13", len(out))
		}
		want := shape.Points{{X: 1, Y: -0.4}, {X: 1, Y: 0}, {X: 1.1, Y: 0}}
		diff(t, want, out[:3], approx)
	})
}

func TestCleanup(t *testing.T) {
	p := NewPiece("messy")
	p.AddSegment(nil, 7)
	p.AddSegment(shape.Points{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 1}}, 0.1)
	p.AddSegment(shape.Points{{X: 1, Y: 1}, {X: 0, Y: 1}}, 0.1)
	p.AddSegment(shape.Points{}, 7)
	p.AddSegment(shape.Points{{X: 0, Y: 1}, {X: 0, Y: 0}}, 0.1)
	p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1e-5}}, 0.1)

	out := computed(t, p)
	want := computed(t, square(Uniform(0.1)))
	diff(t, want, out, approx)

	base, _ := p.Points()
	if len(base) != 4 {
		t.Errorf("got %d base points, want 4", len(base))
	}
}

func TestCollinearJoint(t *testing.T) {
	build := func(cutout bool) shape.Points {
		p := NewPiece("split")
		p.CornerCutout = cutout
		p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 0.5, Y: 0}}, 0.2)
		p.AddSegment(shape.Points{{X: 0.5, Y: 0}, {X: 1, Y: 0}}, 0.4)
		p.AddSegment(shape.Points{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, 0)
		return computed(t, p)
	}

	out := build(false)
	diff(t, vec.Vec2{X: 0.5, Y: -0.3}, out[1], approx)

	out = build(true)
	diff(t, shape.Points{{X: 0.5, Y: -0.2}, {X: 0.5, Y: -0.4}}, out[3:5], approx)
}

func TestHole(t *testing.T) {
	p := NewPiece("ring")
	p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}}, 0)
	p.AddHole(Segment{
		Points:        shape.Points{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}},
		SeamAllowance: 0.1,
	})
	p.Compute()

	a, err := p.Area(false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-8) > 1e-9 {
		t.Errorf("area without seams = %g, want 8", a)
	}
	a, _ = p.Area(true)
	if math.Abs(a-(9-0.64)) > 1e-9 {
		t.Errorf("area with seams = %g, want 8.36", a)
	}

	holes, _ := p.ComputedHoles()
	if len(holes) != 1 {
		t.Fatalf("got %d holes", len(holes))
	}
	bbox, _ := holes[0].Bounds()
	if math.Abs(bbox.LLx-1.1) > 1e-9 || math.Abs(bbox.URx-1.9) > 1e-9 {
		t.Errorf("hole bounds %v", bbox)
	}
}

func TestOutline(t *testing.T) {
	p := NewPiece("ring")
	p.AddSegment(shape.Points{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}}, 0.1)
	p.AddHole(Segment{
		Points:        shape.Points{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}},
		SeamAllowance: 0.1,
	})
	if _, err := p.Outline(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("Outline before Compute: got %v", err)
	}
	p.Compute()

	for name, get := range map[string]func() (path.Path, error){
		"outline": p.Outline,
		"sewing":  p.SewingLine,
	} {
		pth, err := get()
		if err != nil {
			t.Fatal(err)
		}
		moves, closes := 0, 0
		for cmd := range pth {
			switch cmd {
			case path.CmdMoveTo:
				moves++
			case path.CmdClose:
				closes++
			}
		}
		if moves != 2 || closes != 2 {
			t.Errorf("%s: %d subpaths, %d closed, want 2", name, moves, closes)
		}
	}
}

func TestSegmentMirror(t *testing.T) {
	s := Segment{Points: shape.Points{{X: 0, Y: 0}, {X: 1, Y: 2}}, SeamAllowance: 0.01}
	diff(t, s, s.MirrorX().MirrorX())

	m := s.MirrorX()
	m.Scale(2, 3)
	diff(t, vec.Vec2{X: -2, Y: 6}, m.Points[1])
	diff(t, vec.Vec2{X: 1, Y: 2}, s.Points[1])
}

func TestGore(t *testing.T) {
	g := NewSymmetricGore(shape.Points{{X: 0.5, Y: 0}, {X: 0.3, Y: 1}}, Seams{})
	p := g.Piece("gore", false)
	p.Count = 3
	c := Collection{p}
	c.Compute()

	total, err := c.Area(false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(total-3*0.8) > 1e-9 {
		t.Errorf("total area = %g, want 2.4", total)
	}

	empty := (&Gore{}).Piece("empty", false)
	if !empty.IsEmpty() {
		t.Error("gore without profile should give an empty piece")
	}
	empty.Compute()
	if a, err := empty.Area(true); err != nil || a != 0 {
		t.Errorf("empty area = %g, %v", a, err)
	}
}

func TestRotate180(t *testing.T) {
	s := Seams{Right: 1, Top: 2, Left: 3, Bottom: 4}
	diff(t, Seams{Right: 3, Top: 4, Left: 1, Bottom: 2}, s.Rotate180())
	diff(t, s, s.Rotate180().Rotate180())
}
