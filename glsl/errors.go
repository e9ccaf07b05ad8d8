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

package glsl

// Sentinal error patterns.
const (
	// program name, stage name, diagnostic
	ShaderCompileError = "glsl: %s program: %s stage: %s"

	// program name, diagnostic
	ProgramLinkError = "glsl: %s program: link: %s"

	// error code, error name, operation
	BackendError = "glsl: backend error %#04x (%s) at %s"

	MissingUniform   = "glsl: %s program: missing uniform: %s"
	MissingAttribute = "glsl: %s program: missing attribute: %s"
)

// the diagnostic reported with a compile or link error is never empty.
const noDiagnostic = "no diagnostic available"

// error codes returned by Backend.GetError().
const (
	errNone                        = 0x0000
	errInvalidEnum                 = 0x0500
	errInvalidValue                = 0x0501
	errInvalidOperation            = 0x0502
	errStackOverflow               = 0x0503
	errStackUnderflow              = 0x0504
	errOutOfMemory                 = 0x0505
	errInvalidFramebufferOperation = 0x0506
)

func errorName(code uint32) string {
	switch code {
	case errNone:
		return "NO_ERROR"
	case errInvalidEnum:
		return "INVALID_ENUM"
	case errInvalidValue:
		return "INVALID_VALUE"
	case errInvalidOperation:
		return "INVALID_OPERATION"
	case errStackOverflow:
		return "STACK_OVERFLOW"
	case errStackUnderflow:
		return "STACK_UNDERFLOW"
	case errOutOfMemory:
		return "OUT_OF_MEMORY"
	case errInvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return "UNKNOWN_ERROR"
}
