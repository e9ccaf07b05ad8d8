// This file is part of Tessellate.
//
// Tessellate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tessellate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tessellate.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated errors keep the pattern and the values separately so that the
// pattern can be compared after the error has been created.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is formatted with the
// values in the same way as fmt.Errorf() but not until Error() is called.
//
// The pattern is what identifies the error in calls to Is() and Has().
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the go language error interface.
//
// When an error is wrapped by an error with the same leading text the
// resulting message repeats itself. Adjacent parts of the message (separated
// by a colon and a space) that are identical are reduced to one.
func (er curated) Error() string {
	parts := strings.Split(fmt.Errorf(er.pattern, er.values...).Error(), ": ")

	msg := parts[:1]
	for _, p := range parts[1:] {
		if p != msg[len(msg)-1] {
			msg = append(msg, p)
		}
	}

	return strings.Join(msg, ": ")
}

// Unwrap returns the first value that is an error. Used by errors.Is() and
// errors.As() in the standard library.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny returns true if err is a curated error or wraps a curated error.
func IsAny(err error) bool {
	var er curated
	return err != nil && errors.As(err, &er)
}

// Is returns true if err is a curated error created with the pattern. Wrapped
// errors are not considered.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if err, or any curated error in its values, was created
// with the pattern.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}

	return false
}
