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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := string(hw.buffer)
	helpLines := strings.Split(s, "\n")

	// output "no help available" message if there is no flag information and no
	// sub-modes
	if s == "Usage:\n" && len(subModes) == 0 && additionalHelp == "" {
		io.WriteString(output, "No help available")
		if banner != "" {
			io.WriteString(output, fmt.Sprintf(" for %s", banner))
		}
		io.WriteString(output, "\n")
		return
	}

	if banner != "" {
		io.WriteString(output, fmt.Sprintf("%s for %s mode\n", helpLines[0], banner))
	} else {
		io.WriteString(output, helpLines[0])
		io.WriteString(output, "\n")
	}

	// help message produced by flag package
	if len(helpLines) > 1 {
		io.WriteString(output, strings.Join(helpLines[1:], "\n"))
	}

	if len(subModes) > 0 {
		if len(helpLines) > 2 {
			io.WriteString(output, "\n")
		}
		io.WriteString(output, fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		io.WriteString(output, fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		io.WriteString(output, "\n")
		io.WriteString(output, additionalHelp)
		io.WriteString(output, "\n")
	}
}
