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

package export

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chute/shape"
)

// horizontalEdgeThreshold is the minimum vertical extent for an edge to
// contribute to coverage.
const horizontalEdgeThreshold = 1e-10

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts closed polygons to anti-aliased pixel coverage,
// using the nonzero winding rule.  Loops running in opposite directions
// cancel, so holes must run clockwise inside a counter-clockwise outline.
//
// A Rasteriser can be reused for many fills.  Internal buffers grow as
// needed but never shrink.
type Rasteriser struct {
	// CTM maps layout coordinates (meters) to device pixels.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with integer
	// corners.
	Clip rect.Rect

	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // coverage within the pixel
	edges     []edge
	active    []int
	crossings []float64
}

// NewRasteriser returns a rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{CTM: matrix.Identity, Clip: clip}
}

// Fill computes the coverage of the area enclosed by the loops.  For every
// scanline with non-zero coverage, emit is called with the y coordinate,
// the x coordinate of the first pixel and the coverage values in [0, 1].
// The coverage slice is only valid during the call.
func (r *Rasteriser) Fill(loops []shape.Points, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	for _, loop := range loops {
		n := len(loop)
		for i := range n {
			r.addEdge(loop[i].X, loop[i].Y, loop[(i+1)%n].X, loop[(i+1)%n].Y)
		}
	}
	if len(r.edges) == 0 {
		return
	}

	xMin, xMax := int(r.Clip.LLx), int(r.Clip.URx)
	yMin, yMax := int(r.Clip.LLy), int(r.Clip.URy)
	devYMin, devYMax := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		devYMin = min(devYMin, r.edges[i].yMin())
		devYMax = max(devYMax, r.edges[i].yMax())
	}
	yMin = max(yMin, int(math.Floor(devYMin)))
	yMax = min(yMax, int(math.Floor(devYMax))+1)
	width := xMax - xMin
	if width <= 0 || yMin >= yMax {
		return
	}

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].yMin() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.accumulate(e, y, xMin, xMax)
			i++
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// addEdge transforms an edge to device space and stores it.
func (r *Rasteriser) addEdge(ux0, uy0, ux1, uy1 float64) {
	x0, y0 := r.CTM.Apply(ux0, uy0)
	x1, y1 := r.CTM.Apply(ux1, uy1)

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// Coverage accumulation:
//
// An edge crossing a pixel contributes its signed vertical extent to cover
// and the part of it to the right of the edge to area.  Integrating a
// scanline from left to right gives the signed area of the polygon within
// each pixel.

// accumulate adds the part of e inside scanline y to the buffers.  The
// edge is split where it crosses pixel boundaries.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	r.crossings = append(r.crossings[:0], yTop, yBot)
	if pixLeft != pixRight {
		dydx := 1 / e.dxdy
		for x := pixLeft + 1; x <= pixRight; x++ {
			yAtX := e.y0 + dydx*(float64(x)-e.x0)
			if yAtX > yTop && yAtX < yBot {
				r.crossings = append(r.crossings, yAtX)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)

		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			idx := pix - xMin
			r.cover[idx] += c
			r.area[idx] += c * float32(1-(xMid-float64(pix)))
		}
	}
}

// integrateNonZero converts accumulated cover and area values to coverage.
// The cover slice is overwritten with the result.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(max(raw, -raw), 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
