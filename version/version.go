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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Tessellate"

// number is set at link time for numbered releases:
//
//	go build -ldflags "-X github.com/glsandbox/tessellate/version.number=v0.1.0"
//
// if number is empty then the binary is not a numbered release.
var number string

// the version and revision strings decided by the init() function.
var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly.
//
// If the version string is "unreleased" then the binary was built from a
// version control checkout without a version number. If the version string is
// "local" then there is no version number and no vcs information. This can
// happen when running with "go run ."
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line summary of the version, suitable for printing by
// the VERSION mode or for logging at startup.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	// info is nil if there is no build information
	info, _ := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(number, info)
}

// fromBuildInfo decides the version and revision strings from the release
// number and the vcs settings recorded in the build information. The build
// information can be nil.
func fromBuildInfo(number string, info *debug.BuildInfo) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = s.Value
			case "vcs.modified":
				vcsModified = s.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	default:
		return "local", rev
	}
}
