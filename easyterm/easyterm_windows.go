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

package easyterm

import (
	"fmt"
	"os"
)

// Terminal on windows only supports the most basic input and output.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise the Terminal with the input and output files.
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil || output == nil {
		return fmt.Errorf("easyterm: Terminal requires an input and output file")
	}
	pt.input = input
	pt.output = output
	return nil
}

// CBreakMode is not supported on windows.
func (pt *Terminal) CBreakMode() error {
	return nil
}

// CanonicalMode is not supported on windows.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// Width always returns zero on windows.
func (pt *Terminal) Width() int {
	return 0
}

// ReadKey blocks until a single byte is available on the input.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	_, err := pt.input.Read(b)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Print writes the formatted string to the output file
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
}
