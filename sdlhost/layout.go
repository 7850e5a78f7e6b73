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

package sdlhost

import (
	"math"

	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/veandco/go-sdl2/sdl"
)

// analog buttons with a value over this threshold are considered pressed
const pressedThreshold = 0.1

// reader is implemented by sdl.GameController
type reader interface {
	Button(btn sdl.GameControllerButton) byte
	Axis(axis sdl.GameControllerAxis) int16
}

// a standard layout button is read either from an SDL button or from an SDL
// axis (triggers)
type standardButton struct {
	button  sdl.GameControllerButton
	trigger sdl.GameControllerAxis
	analog  bool
}

var standardButtons = [...]standardButton{
	{button: sdl.CONTROLLER_BUTTON_A},
	{button: sdl.CONTROLLER_BUTTON_B},
	{button: sdl.CONTROLLER_BUTTON_X},
	{button: sdl.CONTROLLER_BUTTON_Y},
	{button: sdl.CONTROLLER_BUTTON_LEFTSHOULDER},
	{button: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER},
	{trigger: sdl.CONTROLLER_AXIS_TRIGGERLEFT, analog: true},
	{trigger: sdl.CONTROLLER_AXIS_TRIGGERRIGHT, analog: true},
	{button: sdl.CONTROLLER_BUTTON_BACK},
	{button: sdl.CONTROLLER_BUTTON_START},
	{button: sdl.CONTROLLER_BUTTON_LEFTSTICK},
	{button: sdl.CONTROLLER_BUTTON_RIGHTSTICK},
	{button: sdl.CONTROLLER_BUTTON_DPAD_UP},
	{button: sdl.CONTROLLER_BUTTON_DPAD_DOWN},
	{button: sdl.CONTROLLER_BUTTON_DPAD_LEFT},
	{button: sdl.CONTROLLER_BUTTON_DPAD_RIGHT},
	{button: sdl.CONTROLLER_BUTTON_GUIDE},
}

var standardAxes = [...]sdl.GameControllerAxis{
	sdl.CONTROLLER_AXIS_LEFTX,
	sdl.CONTROLLER_AXIS_LEFTY,
	sdl.CONTROLLER_AXIS_RIGHTX,
	sdl.CONTROLLER_AXIS_RIGHTY,
}

// normalise an SDL axis value to the range -1.0 to 1.0. values with a
// magnitude less than the dead zone are reported as zero
func normalise(v int16, deadZone float64) float64 {
	f := float64(v) / math.MaxInt16
	if f < -1.0 {
		f = -1.0
	}
	if math.Abs(f) < deadZone {
		return 0.0
	}
	return f
}

// snapshot reads the controller into the standard layout
func snapshot(rd reader, index int, id string, deadZone float64) gamepad.Snapshot {
	s := gamepad.Snapshot{
		Index:   index,
		ID:      id,
		Buttons: make([]gamepad.Button, len(standardButtons)),
		Axes:    make([]float64, len(standardAxes)),
	}

	for i, b := range standardButtons {
		if b.analog {
			// triggers are never negative
			v := normalise(rd.Axis(b.trigger), 0.0)
			if v < 0.0 {
				v = 0.0
			}
			s.Buttons[i] = gamepad.Button{Pressed: v > pressedThreshold, Value: v}
		} else if rd.Button(b.button) != 0 {
			s.Buttons[i] = gamepad.Button{Pressed: true, Value: 1.0}
		}
	}

	for i, a := range standardAxes {
		s.Axes[i] = normalise(rd.Axis(a), deadZone)
	}

	return s
}
