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
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/insunit"

	"seehuhn.de/go/chute/shape"
)

// DXF layer names.
const (
	LayerCut   = "CUT"
	LayerSew   = "SEW"
	LayerLabel = "LABEL"
)

// WriteDXF writes the layout as a DXF drawing, in meters.  Cutting lines,
// sewing lines and labels are placed on separate layers.
func WriteDXF(fileName string, l *Layout) error {
	if l.IsEmpty() {
		return ErrEmpty
	}

	d := dxf.NewDrawing()
	d.Header().InsUnit = insunit.Meters
	for _, name := range []string{LayerCut, LayerSew, LayerLabel} {
		if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return err
		}
	}

	for _, item := range l.Items {
		if err := d.ChangeLayer(LayerCut); err != nil {
			return err
		}
		if err := polylines(d, item.Cut); err != nil {
			return err
		}

		if err := d.ChangeLayer(LayerSew); err != nil {
			return err
		}
		if err := polylines(d, item.Sew); err != nil {
			return err
		}

		if err := d.ChangeLayer(LayerLabel); err != nil {
			return err
		}
		_, err := d.Text(item.Label, item.LabelPos.X, item.LabelPos.Y, 0, LabelHeight)
		if err != nil {
			return err
		}
	}

	d.SetExt()
	return d.SaveAs(fileName)
}

func polylines(d *drawing.Drawing, loops []shape.Points) error {
	for _, loop := range loops {
		if len(loop) < 2 {
			continue
		}
		vertices := make([][]float64, len(loop))
		for i, pt := range loop {
			vertices[i] = []float64{pt.X, pt.Y}
		}
		if _, err := d.LwPolyline(true, vertices...); err != nil {
			return err
		}
	}
	return nil
}
