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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chute/shape"
)

// PDF page parameters.
const (
	// pointsPerMeter is the scale of a PDF at full size.
	pointsPerMeter = 72 / 0.0254

	// pageMargin is the white border around the pieces, in PDF points.
	pageMargin = 36

	// cutLineWidth and sewLineWidth are in PDF points.
	cutLineWidth = 1.0
	sewLineWidth = 0.5
)

// sewDash is the dash pattern of the sewing lines, in meters.
var sewDash = []float64{0.005, 0.003}

// WritePDF writes the layout at full scale as a single page PDF file.
// Cutting lines are solid black, sewing lines dashed gray.
func WritePDF(fileName string, l *Layout) error {
	if l.IsEmpty() {
		return ErrEmpty
	}
	b := l.Bounds
	paper := &pdf.Rectangle{
		URx: (b.URx-b.LLx)*pointsPerMeter + 2*pageMargin,
		URy: (b.URy-b.LLy)*pointsPerMeter + 2*pageMargin,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// From here on, user space is in meters.
	page.Transform(matrix.Matrix{
		pointsPerMeter, 0,
		0, pointsPerMeter,
		pageMargin - pointsPerMeter*b.LLx, pageMargin - pointsPerMeter*b.LLy,
	})
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinRound)

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(cutLineWidth / pointsPerMeter)
	for _, item := range l.Items {
		drawLoops(page, item.Cut)
	}
	page.Stroke()

	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineWidth(sewLineWidth / pointsPerMeter)
	page.SetLineDash(sewDash, 0)
	for _, item := range l.Items {
		drawLoops(page, item.Sew)
	}
	page.Stroke()

	return page.Close()
}

func drawLoops(page *document.Page, loops []shape.Points) {
	for _, loop := range loops {
		for cmd, pts := range loop.Path(true) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
}
