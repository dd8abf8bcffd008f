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
	"fmt"
	"unicode"
	"unicode/utf8"
)

// keywords cannot be referenced from an expression, so they are never
// accepted as identifiers.
var keywords = map[string]bool{
	"in":         true,
	"and":        true,
	"or":         true,
	"not":        true,
	"if":         true,
	"else":       true,
	"let":        true,
	"nil":        true,
	"true":       true,
	"false":      true,
	"matches":    true,
	"contains":   true,
	"startsWith": true,
	"endsWith":   true,
}

// builtins are functions provided by the expression language itself.
// Binding a value to one of these names would shadow the function.
var builtins = map[string]bool{
	"abs": true, "ceil": true, "floor": true, "round": true,
	"int": true, "float": true, "string": true, "len": true,
	"min": true, "max": true, "mean": true, "median": true, "sum": true,
	"all": true, "none": true, "any": true, "one": true, "filter": true,
	"map": true, "find": true, "count": true, "reduce": true,
	"first": true, "last": true, "get": true, "keys": true, "values": true,
	"sort": true, "reverse": true, "uniq": true, "concat": true, "flatten": true,
	"now": true, "duration": true, "date": true, "type": true, "bitnot": true,
}

// ValidateID checks that id can be used as an identifier.  The returned
// error wraps [ErrInvalidID] and describes the problem in a form suitable
// for display next to the offending input.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidID)
	}
	for _, r := range id {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: ID cannot contain whitespace characters", ErrInvalidID)
		}
	}
	for _, r := range id {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: ID must be alphanumeric", ErrInvalidID)
		}
	}
	first, _ := utf8.DecodeRuneInString(id)
	if !unicode.IsLetter(first) {
		return fmt.Errorf("%w: first letter must be alphabetic", ErrInvalidID)
	}
	if keywords[id] {
		return fmt.Errorf("%w: %q is a reserved word", ErrInvalidID, id)
	}
	return nil
}
