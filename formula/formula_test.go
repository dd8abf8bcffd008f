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

package formula

import (
	"errors"
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	c := New()
	cases := []struct {
		src  string
		want float64
	}{
		{"m", 1},
		{"mm", 0.001},
		{"yd", 0.9144},
		{"ft", 0.3048},
		{"inch", 0.0254},
		{"rad", 1},
		{"pi", math.Pi},
		{"e", math.E},
		{"deg", math.Pi / 180},
		{"180*deg", math.Pi},
		{"12*inch", 0.3048},
		{"2", 2},
		{"7/2", 3.5},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := c.Evaluate(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("%s = %g, want %g", tc.src, got, tc.want)
			}
		})
	}
}

func TestFunctions(t *testing.T) {
	c := New()
	cases := []struct {
		src  string
		want float64
	}{
		{"ln(e)", 1},
		{"ln(1)", 0},
		{"log10(1000)", 3},
		{"exp(0)", 1},
		{"sqrt(2)*sqrt(2)", 2},
		{"pow(2, 10)", 1024},
		{"sin(pi/2)", 1},
		{"cos(0)", 1},
		{"atan2(1, 1)", math.Pi / 4},
		{"abs(-3)", 3},
		{"max(1, 4)", 4},
	}
	for _, tc := range cases {
		got, err := c.Evaluate(tc.src)
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s = %g, want %g", tc.src, got, tc.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	c := New()
	for _, src := range []string{"", "   ", "unknown", "1 +", "2 * (3", "1/0", "ln(0)", "sqrt(-1)"} {
		x, err := c.Evaluate(src)
		if err == nil {
			t.Errorf("%q: expected error, got %g", src, x)
		}
		if got := c.EvaluateOrZero(src); got != 0 {
			t.Errorf("EvaluateOrZero(%q) = %g, want 0", src, got)
		}
	}

	_, err := c.Evaluate("1/0")
	if !errors.Is(err, ErrNotFinite) {
		t.Errorf("1/0: got %v, want ErrNotFinite", err)
	}
	_, err = c.Evaluate("")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("empty: got %v, want ErrEmpty", err)
	}
}

func TestBind(t *testing.T) {
	c := New()
	if err := c.Bind("diameter", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := c.Bind("radius", c.EvaluateOrZero("diameter/2")); err != nil {
		t.Fatal(err)
	}
	got, err := c.Evaluate("radius * 2 + diameter")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("got %g, want 3", got)
	}

	// existing names are never rebound
	for _, name := range []string{"diameter", "pi", "ln", "abs"} {
		err := c.Bind(name, 7)
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("Bind(%q): got %v, want ErrDuplicateID", name, err)
		}
	}
	if x, _ := c.Lookup("diameter"); x != 1.5 {
		t.Errorf("diameter changed to %g", x)
	}
}

func TestValidateID(t *testing.T) {
	good := []string{"a", "diameter", "param_1", "x2", "Höhe"}
	for _, id := range good {
		if err := ValidateID(id); err != nil {
			t.Errorf("ValidateID(%q) = %v", id, err)
		}
	}

	bad := []string{"", "a b", " a", "a\t", "a-b", "a.b", "1a", "_a", "in", "and", "true"}
	for _, id := range bad {
		err := ValidateID(id)
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("ValidateID(%q) = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestClone(t *testing.T) {
	c := New()
	c.Bind("a", 1)
	d := c.Clone()
	d.Bind("b", 2)

	if c.Has("b") {
		t.Error("binding in clone leaked into original")
	}
	if !d.Has("a") {
		t.Error("clone lost binding")
	}
	names := d.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
