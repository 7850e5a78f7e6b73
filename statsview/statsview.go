// This file is part of Gamepads.
//
// Gamepads is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepads is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepads.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gamepads/logger"
)

const graphs = "/debug/statsview"

// Launch starts the statistics server on address. The server runs for the
// lifetime of the program. The location of the graphs is written to output.
func Launch(output io.Writer, address string) {
	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "serving on %s", address)
	fmt.Fprintf(output, "statistics at http://%s%s\n", address, graphs)
}

// Available is true when built with the statsview tag.
func Available() bool {
	return true
}
