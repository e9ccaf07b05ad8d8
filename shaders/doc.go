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

// Package shaders holds the GLSL source of the programs drawn by Tessellate.
// The sources are embedded in the binary and are prepared for a
// scene.Variant with the ForVariant() function.
//
// Preparing a source means inserting preprocessor definitions directly after
// the #version directive. The tessellated sphere program uses two:
//
//	TESS_LEVEL       the base tessellation level, always defined
//	CORRECTED_SPHERE defined if the sphere should be drawn without
//	                 normalising the evaluated point
//
// The flat program needs no definitions.
package shaders
