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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage text produced by the flag package. The text
// is amended with the mode path and sub-mode list by the Help() function.
type helpWriter struct {
	usage strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.usage.Write(p)
}

// Help writes the complete help message to output. The banner is the path of
// modes that led to the current set of flags.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	usage := hw.usage.String()

	// the flag package always writes a header line. if there is nothing else
	// then there are no flags
	header, flags, _ := strings.Cut(usage, "\n")

	var s strings.Builder

	if flags == "" && len(subModes) == 0 {
		s.WriteString("No help available")
		if banner != "" {
			fmt.Fprintf(&s, " for %s", banner)
		}
		s.WriteString("\n")
		_, _ = io.WriteString(output, s.String())
		return
	}

	if banner != "" {
		fmt.Fprintf(&s, "%s for %s mode\n", header, banner)
	} else {
		fmt.Fprintf(&s, "%s\n", header)
	}

	s.WriteString(flags)

	if len(subModes) > 0 {
		// separate flags from sub-modes with a blank line
		if flags != "" {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&s, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(&s, "\n%s\n", additionalHelp)
	}

	_, _ = io.WriteString(output, s.String())
}
