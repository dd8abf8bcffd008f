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

// Command export writes all reference designs as JSON files, in the format
// read by [chute.Load], to testdata/designs.  An index file lists the
// expected canopy area of each design.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chute/testcases"
)

const outDir = "testdata/designs"

type indexEntry struct {
	File string  `json:"file"`
	Area float64 `json:"area"`
	Tol  float64 `json:"tolerance"`
}

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var index []indexEntry
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			file := category + "_" + tc.Name + ".json"
			writeDesign(tc, filepath.Join(outDir, file))
			index = append(index, indexEntry{File: file, Area: tc.Area, Tol: tc.Tol})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		panic(err)
	}
}

func writeDesign(tc testcases.TestCase, fileName string) {
	f, err := os.Create(fileName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := tc.Design().Save(f); err != nil {
		panic(err)
	}
}
