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

//go:build unix

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names
package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// Initialise the Terminal with the input and output files. The terminal is
// left in canonical mode.
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil {
		return fmt.Errorf("easyterm: Terminal requires an input file")
	}
	if output == nil {
		return fmt.Errorf("easyterm: Terminal requires an output file")
	}

	pt.input = input
	pt.output = output

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available to
// read immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// CanonicalMode puts the terminal back into the mode it was in when
// Initialise() was called.
func (pt *Terminal) CanonicalMode() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// Width returns the number of columns in the output terminal. Returns zero if
// the width cannot be determined (output is not a terminal for example).
func (pt *Terminal) Width() int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
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
