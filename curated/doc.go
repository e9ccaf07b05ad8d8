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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as the Errorf()
// function in the fmt package. The pattern is remembered and is used to
// identify the error later on. For example, a shader compilation failure
// might be created like this:
//
//	const ShaderCompileError = "glsl: %s program: %s stage: %s"
//
//	err := curated.Errorf(ShaderCompileError, "sphere", "fragment", log)
//
//	if curated.Is(err, ShaderCompileError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("startup: %v", err)
//
//	if curated.Has(f, ShaderCompileError) {
//		fmt.Println("true")
//	}
//
// Adjacent duplicate parts of an error message are removed by the Error()
// function. Parts are separated by the sub-string ': ' and so a chain of
// errors that each begin with "glsl: " will only print the prefix once:
//
//	glsl: sphere program: fragment stage: 0(12) : error C0000: syntax error
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated
