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

import "fmt"

// gsmPerOz converts area densities from g/m² to oz/yd².
const gsmPerOz = 33.906

// Fabric is a canopy material.
type Fabric struct {
	Name           string  `json:"name"`
	AreaDensityGSM float64 `json:"area_density_gsm"` // g/m²
}

// Label returns the name of the fabric together with its weight.
func (f Fabric) Label(imperial bool) string {
	if imperial {
		return fmt.Sprintf("%s (%.1f oz)", f.Name, f.AreaDensityGSM/gsmPerOz)
	}
	return fmt.Sprintf("%s (%.0f gsm)", f.Name, f.AreaDensityGSM)
}

// Mass returns the mass in kilograms of the given area of fabric.
func (f Fabric) Mass(area float64) float64 {
	return area * f.AreaDensityGSM / 1000
}

// FabricSelector is the choice of fabric for a section.
type FabricSelector struct {
	Modified bool     `json:"modified"`
	Selected Fabric   `json:"selected_fabric"`
	Options  []Fabric `json:"fabric_options"`
}

// NewFabricSelector offers the standard ripstop nylon weights and selects
// the lightest one.
func NewFabricSelector() FabricSelector {
	options := []Fabric{
		{Name: "Ripstop nylon", AreaDensityGSM: 38},
		{Name: "Ripstop nylon", AreaDensityGSM: 48},
		{Name: "Ripstop nylon", AreaDensityGSM: 67},
	}
	return FabricSelector{Selected: options[0], Options: options}
}

// Select chooses option i.
func (f *FabricSelector) Select(i int) error {
	if i < 0 || i >= len(f.Options) {
		return fmt.Errorf("fabric option %d: %w", i, ErrIndex)
	}
	f.Selected = f.Options[i]
	f.Modified = true
	return nil
}

// lbToNewton converts pound-force to newton.
const lbToNewton = 4.4482216153

// Cord is a suspension line material.
type Cord struct {
	Name          string  `json:"name"`
	LinearDensity float64 `json:"linear_density_g_per_m"`
	Strength      float64 `json:"strength_newton"`
	DiameterMM    float64 `json:"diameter_mm"`
}

// NewCordImperial returns a cord described in the units common in
// catalogues: breaking strength in lb and weight in oz per 100 ft.
func NewCordImperial(name string, strengthLB, ozPer100ft, diameterMM float64) Cord {
	return Cord{
		Name:          name,
		LinearDensity: ozPer100ft * 28.3495 / 30.48,
		Strength:      strengthLB * lbToNewton,
		DiameterMM:    diameterMM,
	}
}

// Cords lists commonly available suspension line materials.
var Cords = []Cord{
	NewCordImperial("Kevlar", 100, 0.32, 0.8),
	NewCordImperial("Kevlar", 150, 0.55, 1.0),
	NewCordImperial("Kevlar", 200, 0.85, 1.1),
	NewCordImperial("Kevlar", 300, 1.06, 1.3),
	NewCordImperial("Kevlar", 400, 1.69, 1.6),
	NewCordImperial("Kevlar", 500, 2.36, 2.0),
	NewCordImperial("Kevlar", 750, 3.63, 2.3),
	NewCordImperial("Kevlar", 1000, 5.15, 3.0),
	NewCordImperial("Kevlar", 1500, 8.82, 3.5),
	NewCordImperial("Kevlar", 2000, 10.69, 4.0),
	NewCordImperial("Kevlar", 3000, 16.47, 4.8),
	NewCordImperial("Kevlar", 5000, 25.75, 6.8),

	NewCordImperial("UHMWPE", 100, 0.42, 0.5),
	NewCordImperial("UHMWPE", 220, 0.63, 0.8),
	NewCordImperial("UHMWPE", 350, 0.81, 1.0),
	NewCordImperial("UHMWPE", 580, 1.48, 1.3),
	NewCordImperial("UHMWPE", 750, 1.8, 1.6),
}
