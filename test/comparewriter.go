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

package test

import "strings"

// CompareWriter is an implementation of the io.Writer interface. It records
// everything written to it so that it can be compared with an expected string.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.b.Write(p)
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.b.Reset()
}

// Compare returns true if everything written so far is equal to the string.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.b.String() == s
}

// Lines returns the output split into lines. A trailing newline does not
// produce an empty line at the end of the list.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.b.String(), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.b.String()
}
