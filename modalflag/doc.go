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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SHADERS", "EVAL")
//	p, err := md.Parse()
//
// After a successful Parse() the Mode() function says which sub-mode was
// selected. If the first argument is not one of the listed sub-modes then the
// first sub-mode in the list is used.
//
// Each mode then calls NewMode(), adds the flags it understands and calls
// Parse() again:
//
//	md.NewMode()
//	variant := md.AddString("variant", "A", "pipeline variant: A, B, C")
//	p, err = md.Parse()
//
// The Path() function returns the list of modes that have been selected so
// far, separated by a forward slash. For example:
//
//	RUN
//
// Help is printed automatically when the -help flag is given. The Parse()
// function returns ParseHelp in that case and the program should usually
// stop without printing anything further.
package modalflag
