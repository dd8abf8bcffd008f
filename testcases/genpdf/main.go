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

// Command genpdf writes the cutting patterns of all reference designs,
// for visual inspection.  For every design it creates a full-scale PDF,
// a DXF file and a PNG preview in testdata/reference.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/export"
	"seehuhn.de/go/chute/testcases"
)

const (
	refDir       = "testdata/reference"
	previewWidth = 600
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	l, err := export.NewLayout(tc.Design().Pieces(chute.ExportResolution))
	if err != nil {
		return err
	}
	if l.IsEmpty() {
		return export.ErrEmpty
	}

	if err := export.WritePDF(base+".pdf", l); err != nil {
		return err
	}
	if err := export.WriteDXF(base+".dxf", l); err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = export.RenderPNG(f, l, previewWidth)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
