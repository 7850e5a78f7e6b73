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

package gamepad

import (
	"fmt"
	"strings"
)

// Button is the state of a single button. Value is in the range 0.0 to 1.0
// and is only ever in between those values for analog buttons (triggers for
// example).
type Button struct {
	Pressed bool
	Value   float64
}

// Snapshot is a reading of one controller at one instant. Snapshots are
// produced by the host and are never modified by this package. The Buttons
// and Axes slices may be shared with the host and with other Snapshots.
type Snapshot struct {
	// the slot index assigned by the host. unique among attached controllers
	Index int

	// human readable identifier for the controller
	ID string

	Buttons []Button

	// axis values are normalised to the range -1.0 to 1.0
	Axes []float64
}

// Equal returns true if both snapshots have the same content.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Index != o.Index || s.ID != o.ID {
		return false
	}
	if len(s.Buttons) != len(o.Buttons) || len(s.Axes) != len(o.Axes) {
		return false
	}
	for i := range s.Buttons {
		if s.Buttons[i] != o.Buttons[i] {
			return false
		}
	}
	for i := range s.Axes {
		if s.Axes[i] != o.Axes[i] {
			return false
		}
	}
	return true
}

// Pressed returns the number of buttons currently pressed.
func (s Snapshot) Pressed() int {
	var n int
	for _, b := range s.Buttons {
		if b.Pressed {
			n++
		}
	}
	return n
}

func (s Snapshot) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%d: %s [", s.Index, s.ID))
	for i, v := range s.Buttons {
		if i > 0 {
			b.WriteRune(' ')
		}
		if v.Pressed {
			b.WriteRune('*')
		} else {
			b.WriteRune('.')
		}
	}
	b.WriteString("] (")
	for i, v := range s.Axes {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(fmt.Sprintf("%+.2f", v))
	}
	b.WriteRune(')')
	return b.String()
}
