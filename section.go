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
	"encoding/json"
	"errors"
	"fmt"

	"seehuhn.de/go/chute/formula"
	"seehuhn.de/go/chute/pattern"
	"seehuhn.de/go/chute/shape"
)

// ErrNotPolygonal is returned when a geometry operation is applied to a
// circular section.
var ErrNotPolygonal = errors.New("section is not polygonal")

// RGB is a color with components in the range [0, 1].
type RGB [3]float64

// Default section colors.
var (
	InternationalOrange = RGB{1.0, 0.31, 0.0}
	Black               = RGB{0, 0, 0}
)

// SectionType is the shape of a canopy section, either
// [*CircularSection] or [*PolygonalSection].
type SectionType interface {
	isSectionType()
}

// CircularSection is a band that can be sewn into a disk, cone or
// cylinder.  Its profile is a single straight line from the inner (vent)
// edge to the outer (skirt) edge.
type CircularSection struct {
	Line *ConfigurableLine
}

func (*CircularSection) isSectionType() {}

// PolygonalSection is a band made from flat gores.  Its half profile is
// the concatenation of the contained geometries, in order.
type PolygonalSection struct {
	Objects []Geometry
}

func (*PolygonalSection) isSectionType() {}

// Section is one band of a canopy, made from identical gores.
type Section struct {
	Type         SectionType
	Gores        int
	Fabric       FabricSelector
	Seams        pattern.Seams // seam allowances in meters
	CornerCutout bool
	Colors       []RGB // cycled across the gores
}

const defaultSeamAllowance = 0.01

func newSection(t SectionType) *Section {
	return &Section{
		Type:   t,
		Gores:  8,
		Fabric: NewFabricSelector(),
		Seams:  pattern.Uniform(defaultSeamAllowance),
		Colors: []RGB{InternationalOrange, Black},
	}
}

// NewCircularSection returns a flat disk section of radius 1 with eight
// gores.
func NewCircularSection() *Section {
	return newSection(&CircularSection{Line: NewConfigurableLine()})
}

// NewPolygonalSection returns an empty polygonal section with eight gores.
func NewPolygonalSection() *Section {
	return newSection(&PolygonalSection{})
}

// UpdateFromContext re-evaluates all formulas of the section.
func (s *Section) UpdateFromContext(ctx *formula.Context) {
	switch t := s.Type.(type) {
	case *CircularSection:
		t.Line.UpdateFromContext(ctx)
	case *PolygonalSection:
		for _, obj := range t.Objects {
			obj.UpdateFromContext(ctx)
		}
	}
}

// CrossSection returns the half profile of the section, from the inner
// point to the outer point.
//
// If expand is set, the radii of a polygonal section are scaled by
// [shape.PolygonToCircleExpansion], so that the circumference of the
// faceted canopy matches a circle of the nominal radius.
func (s *Section) CrossSection(resolution int, expand bool) shape.Points {
	switch t := s.Type.(type) {
	case *CircularSection:
		return t.Line.Sample(resolution)
	case *PolygonalSection:
		var pts shape.Points
		for _, obj := range t.Objects {
			pts = append(pts, obj.Sample(resolution)...)
		}
		if expand && len(pts) > 0 {
			pts.Scale(shape.PolygonToCircleExpansion(s.Gores), 1)
		}
		return pts
	}
	return nil
}

// PatternPiece returns the flat pattern of one gore.  The result has not
// been computed yet.
func (s *Section) PatternPiece(resolution int) *pattern.Piece {
	switch t := s.Type.(type) {
	case *CircularSection:
		return s.circularPiece(t, resolution)
	case *PolygonalSection:
		return s.polygonalPiece(resolution)
	}
	return pattern.NewPiece(pieceName)
}

// Color returns the color of gore i.
func (s *Section) Color(i int) RGB {
	if len(s.Colors) == 0 {
		return InternationalOrange
	}
	return s.Colors[i%len(s.Colors)]
}

// AddColor appends a color, alternating between international orange and
// black.
func (s *Section) AddColor() {
	c := InternationalOrange
	if len(s.Colors)%2 == 1 {
		c = Black
	}
	s.Colors = append(s.Colors, c)
}

// AddLine appends a default line to a polygonal section.
func (s *Section) AddLine() error {
	return s.addGeometry(NewConfigurableLine())
}

// AddEllipse appends a default ellipse to a polygonal section.
func (s *Section) AddEllipse() error {
	return s.addGeometry(NewConfigurableEllipse())
}

// AddPointList appends an empty point list to a polygonal section.
func (s *Section) AddPointList() error {
	return s.addGeometry(NewConfigurablePointList())
}

func (s *Section) addGeometry(g Geometry) error {
	t, ok := s.Type.(*PolygonalSection)
	if !ok {
		return ErrNotPolygonal
	}
	t.Objects = append(t.Objects, g)
	return nil
}

// RemoveGeometry removes geometry i from a polygonal section.
func (s *Section) RemoveGeometry(i int) error {
	t, ok := s.Type.(*PolygonalSection)
	if !ok {
		return ErrNotPolygonal
	}
	var err error
	t.Objects, err = removeAt(t.Objects, i)
	return err
}

// sectionJSON is the stored form of a [Section].
type sectionJSON struct {
	Type         string            `json:"type"`
	Line         *ConfigurableLine `json:"line,omitempty"`
	Objects      []json.RawMessage `json:"objects,omitempty"`
	Gores        int               `json:"gores"`
	Fabric       FabricSelector    `json:"fabric"`
	Seams        seamsJSON         `json:"seam_allowance"`
	CornerCutout bool              `json:"corner_cutout"`
	Colors       []RGB             `json:"colors"`
}

type seamsJSON struct {
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (s *Section) MarshalJSON() ([]byte, error) {
	out := sectionJSON{
		Gores:        s.Gores,
		Fabric:       s.Fabric,
		Seams:        seamsJSON(s.Seams),
		CornerCutout: s.CornerCutout,
		Colors:       s.Colors,
	}
	switch t := s.Type.(type) {
	case *CircularSection:
		out.Type = "circular"
		out.Line = t.Line
	case *PolygonalSection:
		out.Type = "polygonal"
		out.Objects = make([]json.RawMessage, 0, len(t.Objects))
		for _, obj := range t.Objects {
			data, err := json.Marshal(encodeGeometry(obj))
			if err != nil {
				return nil, err
			}
			out.Objects = append(out.Objects, data)
		}
	default:
		return nil, fmt.Errorf("unexpected section type %T", s.Type)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Missing fields keep the defaults of a new section.
func (s *Section) UnmarshalJSON(data []byte) error {
	def := NewCircularSection()
	in := sectionJSON{
		Gores:  def.Gores,
		Fabric: def.Fabric,
		Seams:  seamsJSON(def.Seams),
		Colors: def.Colors,
		Line:   NewConfigurableLine(),
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Type {
	case "circular", "":
		if in.Line == nil {
			in.Line = NewConfigurableLine()
		}
		s.Type = &CircularSection{Line: in.Line}
	case "polygonal":
		poly := &PolygonalSection{}
		for _, raw := range in.Objects {
			g, err := decodeGeometry(raw)
			if err != nil {
				return err
			}
			poly.Objects = append(poly.Objects, g)
		}
		s.Type = poly
	default:
		return fmt.Errorf("unknown section type %q", in.Type)
	}

	s.Gores = in.Gores
	s.Fabric = in.Fabric
	s.Seams = pattern.Seams(in.Seams)
	s.CornerCutout = in.CornerCutout
	s.Colors = in.Colors
	return nil
}
