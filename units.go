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
	"fmt"
	"math"
)

// StandardUnit selects how a value is presented.  Values are always
// stored in SI base units.
type StandardUnit int

// These are the supported units.
const (
	UnitLess StandardUnit = iota
	MeterFoot
	MillimeterInch
	Radian
	Degree
)

var unitKeys = []string{"unitless", "meter_foot", "millimeter_inch", "radian", "degree"}

// Units lists all units, in display order.
var Units = []StandardUnit{UnitLess, MeterFoot, MillimeterInch, Radian, Degree}

// Name returns a short description of the unit.
func (u StandardUnit) Name() string {
	switch u {
	case UnitLess:
		return "unitless"
	case MeterFoot:
		return "m | ft"
	case MillimeterInch:
		return "mm | in"
	case Radian:
		return "rad"
	case Degree:
		return "deg"
	default:
		return fmt.Sprintf("StandardUnit(%d)", int(u))
	}
}

// Display converts a value in SI units for presentation, and returns the
// converted value together with its unit symbol.
func (u StandardUnit) Display(v float64, imperial bool) (float64, string) {
	switch u {
	case MeterFoot:
		if imperial {
			return v / 0.3048, "ft"
		}
		return v, "m"
	case MillimeterInch:
		if imperial {
			return v / 0.0254, "in"
		}
		return v * 1000, "mm"
	case Radian:
		return v, "rad"
	case Degree:
		return v * 180 / math.Pi, "°"
	default:
		return v, ""
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (u StandardUnit) MarshalText() ([]byte, error) {
	if u < 0 || int(u) >= len(unitKeys) {
		return nil, fmt.Errorf("invalid unit %d", int(u))
	}
	return []byte(unitKeys[u]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (u *StandardUnit) UnmarshalText(text []byte) error {
	for i, key := range unitKeys {
		if key == string(text) {
			*u = StandardUnit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown unit %q", text)
}
