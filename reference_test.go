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

package chute_test

import (
	"bytes"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/chute"
	"seehuhn.de/go/chute/testcases"
)

func TestReferenceDesigns(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				d := tc.Design()
				for _, r := range d.ParameterResults() {
					if r.Err != nil {
						t.Fatalf("parameter %s: %v", r.ID, r.Err)
					}
				}

				pieces := d.Pieces(chute.ExportResolution)
				area, err := pieces.Area(false)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(area-tc.Area) > tc.Tol*tc.Area {
					t.Errorf("area = %.6f, want %.6f", area, tc.Area)
				}

				withSeams, err := pieces.Area(true)
				if err != nil {
					t.Fatal(err)
				}
				if withSeams <= area {
					t.Errorf("seam allowances do not add fabric: %g <= %g", withSeams, area)
				}

				buf := &bytes.Buffer{}
				if err := d.Save(buf); err != nil {
					t.Fatal(err)
				}
				d2, err := chute.Load(buf)
				if err != nil {
					t.Fatal(err)
				}
				if !d.Equal(d2) {
					t.Error("design changed after save and load")
				}
				area2, _ := d2.Pieces(chute.ExportResolution).Area(false)
				if area2 != area {
					t.Errorf("area after save and load = %g, want %g", area2, area)
				}
			})
		}
	}
}
