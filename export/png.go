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
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

var (
	// ErrEmpty is returned when an empty layout is exported.
	ErrEmpty = errors.New("layout contains no pieces")

	// ErrTooLarge is returned when a preview would exceed MaxPreviewPixels.
	ErrTooLarge = errors.New("preview image too large")
)

const (
	// MaxPreviewPixels limits the size of preview images.
	MaxPreviewPixels = 1 << 24

	// previewMargin is the border around a preview image, in pixels.
	previewMargin = 4
)

// Preview colors.
var (
	previewBackground = color.RGBA{255, 255, 255, 255}
	previewSeam       = color.RGBA{200, 200, 200, 255}
	previewFabric     = color.RGBA{255, 79, 0, 255}
)

// Render draws the layout into an image of the given width.  The seam
// allowances are drawn in gray, the area inside the sewing lines in
// international orange.  Labels are not drawn.
func Render(l *Layout, width int) (*image.RGBA, error) {
	if l.IsEmpty() {
		return nil, ErrEmpty
	}
	b := l.Bounds
	inner := width - 2*previewMargin
	if inner <= 0 || b.URx <= b.LLx {
		return nil, errors.New("preview too small")
	}
	scale := float64(inner) / (b.URx - b.LLx)
	h := math.Ceil((b.URy-b.LLy)*scale) + 2*previewMargin
	if h*float64(width) > MaxPreviewPixels {
		return nil, ErrTooLarge
	}
	height := int(h)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = previewBackground.R
		img.Pix[i+1] = previewBackground.G
		img.Pix[i+2] = previewBackground.B
		img.Pix[i+3] = previewBackground.A
	}

	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = matrix.Scale(scale, -scale).Translate(previewMargin-scale*b.LLx, previewMargin+scale*b.URy)

	for _, item := range l.Items {
		r.Fill(item.Cut, blend(img, previewSeam))
		r.Fill(item.Sew, blend(img, previewFabric))
	}
	return img, nil
}

// RenderPNG writes a PNG preview of the layout.
func RenderPNG(w io.Writer, l *Layout, width int) error {
	img, err := Render(l, width)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// blend returns an emit function which paints col onto img, weighted by
// the coverage.
func blend(img *image.RGBA, col color.RGBA) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin*4:]
		for i, c := range coverage {
			px := row[i*4 : i*4+3]
			px[0] = mix(px[0], col.R, c)
			px[1] = mix(px[1], col.G, c)
			px[2] = mix(px[2], col.B, c)
		}
	}
}

func mix(a, b uint8, t float32) uint8 {
	return uint8(float32(a)*(1-t) + float32(b)*t + 0.5)
}
