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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chute/formula"
	"seehuhn.de/go/chute/shape"
)

// Geometry is a shape whose parameters are given by formulas.
// The implementations are [ConfigurableLine], [ConfigurableEllipse] and
// [ConfigurablePointList].
type Geometry interface {
	// Sample returns the shape, using the most recently evaluated values.
	Sample(resolution int) shape.Points

	// UpdateFromContext re-evaluates all formulas of the shape.
	UpdateFromContext(ctx *formula.Context)

	isGeometry()
}

// ConfigurableLine is a straight line with formula-driven end points.
type ConfigurableLine struct {
	BeginX Scalar `json:"begin_x"`
	BeginY Scalar `json:"begin_y"`
	EndX   Scalar `json:"end_x"`
	EndY   Scalar `json:"end_y"`
}

// NewConfigurableLine returns the line from (0, 0) to (1, 0).
func NewConfigurableLine() *ConfigurableLine {
	return &ConfigurableLine{
		BeginX: NewScalar("0"),
		BeginY: NewScalar("0"),
		EndX:   NewScalar("1.0"),
		EndY:   NewScalar("0.0"),
	}
}

// Line returns the line described by the current values.
func (l *ConfigurableLine) Line() *shape.Line {
	return &shape.Line{
		Begin: vec.Vec2{X: l.BeginX.Value, Y: l.BeginY.Value},
		End:   vec.Vec2{X: l.EndX.Value, Y: l.EndY.Value},
	}
}

// Sample implements the [Geometry] interface.
func (l *ConfigurableLine) Sample(resolution int) shape.Points {
	return l.Line().Sample(resolution)
}

// UpdateFromContext implements the [Geometry] interface.
func (l *ConfigurableLine) UpdateFromContext(ctx *formula.Context) {
	l.BeginX.Update(ctx)
	l.BeginY.Update(ctx)
	l.EndX.Update(ctx)
	l.EndY.Update(ctx)
}

func (*ConfigurableLine) isGeometry() {}

// ConfigurableEllipse is an elliptical arc with formula-driven parameters.
// Angles are in radians, the rotation is counter-clockwise.
type ConfigurableEllipse struct {
	Start    Scalar `json:"start_angle"`
	Stop     Scalar `json:"stop_angle"`
	Rotation Scalar `json:"rotation"`
	RadiusX  Scalar `json:"radius_x"`
	RadiusY  Scalar `json:"radius_y"`
	CenterX  Scalar `json:"center_x"`
	CenterY  Scalar `json:"center_y"`
}

// NewConfigurableEllipse returns the unit circle.
func NewConfigurableEllipse() *ConfigurableEllipse {
	return &ConfigurableEllipse{
		Start:    NewScalar("0.0"),
		Stop:     NewScalar("2.0 * pi"),
		Rotation: NewScalar("0.0"),
		RadiusX:  NewScalar("1.0"),
		RadiusY:  NewScalar("1.0"),
		CenterX:  NewScalar("0.0"),
		CenterY:  NewScalar("0.0"),
	}
}

// Arc returns the arc described by the current values.
func (e *ConfigurableEllipse) Arc() *shape.EllipseArc {
	return &shape.EllipseArc{
		Start:    e.Start.Value,
		Stop:     e.Stop.Value,
		Rotation: e.Rotation.Value,
		RadiusX:  e.RadiusX.Value,
		RadiusY:  e.RadiusY.Value,
		Center:   vec.Vec2{X: e.CenterX.Value, Y: e.CenterY.Value},
	}
}

// Sample implements the [Geometry] interface.
func (e *ConfigurableEllipse) Sample(resolution int) shape.Points {
	return e.Arc().Sample(resolution)
}

// UpdateFromContext implements the [Geometry] interface.
func (e *ConfigurableEllipse) UpdateFromContext(ctx *formula.Context) {
	for _, s := range []*Scalar{&e.Start, &e.Stop, &e.Rotation, &e.RadiusX, &e.RadiusY, &e.CenterX, &e.CenterY} {
		s.Update(ctx)
	}
}

func (*ConfigurableEllipse) isGeometry() {}

// ConfigurablePointList is a list of literal points with formula-driven
// scale and offset.
type ConfigurablePointList struct {
	Text    string `json:"text"`
	ScaleX  Scalar `json:"scale_x"`
	ScaleY  Scalar `json:"scale_y"`
	OffsetX Scalar `json:"offset_x"`
	OffsetY Scalar `json:"offset_y"`
}

// NewConfigurablePointList returns an empty point list with unit scale.
func NewConfigurablePointList() *ConfigurablePointList {
	return &ConfigurablePointList{
		ScaleX:  NewScalar("1"),
		ScaleY:  NewScalar("1"),
		OffsetX: NewScalar("0"),
		OffsetY: NewScalar("0"),
	}
}

// PointList returns the point list described by the current values.
func (p *ConfigurablePointList) PointList() *shape.PointList {
	return &shape.PointList{
		Text:    p.Text,
		ScaleX:  p.ScaleX.Value,
		ScaleY:  p.ScaleY.Value,
		OffsetX: p.OffsetX.Value,
		OffsetY: p.OffsetY.Value,
	}
}

// Sample implements the [Geometry] interface.
func (p *ConfigurablePointList) Sample(resolution int) shape.Points {
	return p.PointList().Sample(resolution)
}

// UpdateFromContext implements the [Geometry] interface.
func (p *ConfigurablePointList) UpdateFromContext(ctx *formula.Context) {
	p.ScaleX.Update(ctx)
	p.ScaleY.Update(ctx)
	p.OffsetX.Update(ctx)
	p.OffsetY.Update(ctx)
}

func (*ConfigurablePointList) isGeometry() {}

// geometryJSON is the stored form of a [Geometry].  Exactly one of the
// pointer fields is set, matching Type.
type geometryJSON struct {
	Type      string                 `json:"type"`
	Line      *ConfigurableLine      `json:"line,omitempty"`
	Ellipse   *ConfigurableEllipse   `json:"ellipse,omitempty"`
	PointList *ConfigurablePointList `json:"point_list,omitempty"`
}

func encodeGeometry(g Geometry) geometryJSON {
	switch g := g.(type) {
	case *ConfigurableLine:
		return geometryJSON{Type: "line", Line: g}
	case *ConfigurableEllipse:
		return geometryJSON{Type: "ellipse", Ellipse: g}
	case *ConfigurablePointList:
		return geometryJSON{Type: "point_list", PointList: g}
	default:
		panic(fmt.Sprintf("unexpected geometry type %T", g))
	}
}

func decodeGeometry(data json.RawMessage) (Geometry, error) {
	var raw struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var g Geometry
	var dst any
	switch raw.Type {
	case "line":
		l := NewConfigurableLine()
		g, dst = l, &struct {
			Line *ConfigurableLine `json:"line"`
		}{l}
	case "ellipse":
		e := NewConfigurableEllipse()
		g, dst = e, &struct {
			Ellipse *ConfigurableEllipse `json:"ellipse"`
		}{e}
	case "point_list":
		p := NewConfigurablePointList()
		g, dst = p, &struct {
			PointList *ConfigurablePointList `json:"point_list"`
		}{p}
	default:
		return nil, fmt.Errorf("unknown geometry type %q", raw.Type)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	return g, nil
}
