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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/glsandbox/tessellate/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the HTTP server.
const Address = "localhost:12600"

// the path of the charts served at Address.
const chartPath = "/debug/statsview"

// the server is started no more than once per process.
var launch sync.Once

// Launch the HTTP server in a new goroutine. The location of the charts is
// written to output. Calling Launch() more than once has no further effect.
func Launch(output io.Writer) {
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()

		logger.Logf(logger.Allow, "statsview", "charts at %s%s", Address, chartPath)
		fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, chartPath)
	})
}

// Available returns true if the package has been built with the statsview
// build tag.
func Available() bool {
	return true
}
