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

// SectionSummary gives the fabric requirements of one section.
type SectionSummary struct {
	Index      int     `json:"index"`
	Gores      int     `json:"gores"`
	Fabric     Fabric  `json:"fabric"`
	PieceArea  float64 `json:"piece_area"`  // one gore, with seam allowances
	CanopyArea float64 `json:"canopy_area"` // all gores, without seam allowances
	FabricArea float64 `json:"fabric_area"` // all gores, with seam allowances
	FabricMass float64 `json:"fabric_mass"` // kg
}

// Summary lists the fabric requirements of a design.
type Summary struct {
	Name       string           `json:"name"`
	Sections   []SectionSummary `json:"sections"`
	CanopyArea float64          `json:"canopy_area"`
	FabricArea float64          `json:"fabric_area"`
	FabricMass float64          `json:"fabric_mass"`
}

// Summary computes the pattern pieces at the given resolution and adds up
// their areas.
func (d *Designer) Summary(resolution int) (*Summary, error) {
	res := &Summary{Name: d.Name}
	for i, p := range d.Pieces(resolution) {
		s := d.Sections[i]
		withSeams, err := p.Area(true)
		if err != nil {
			return nil, err
		}
		withoutSeams, err := p.Area(false)
		if err != nil {
			return nil, err
		}

		count := float64(p.Count)
		sec := SectionSummary{
			Index:      i,
			Gores:      s.Gores,
			Fabric:     s.Fabric.Selected,
			PieceArea:  withSeams,
			CanopyArea: withoutSeams * count,
			FabricArea: withSeams * count,
		}
		sec.FabricMass = sec.Fabric.Mass(sec.FabricArea)

		res.Sections = append(res.Sections, sec)
		res.CanopyArea += sec.CanopyArea
		res.FabricArea += sec.FabricArea
		res.FabricMass += sec.FabricMass
	}
	return res, nil
}
