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

// Package frame implements the gamepad.Scheduler interface.
//
// Pump is driven explicitly, by calling Pump.Frame() once per iteration of an
// existing render or service loop. Ticker is driven by a time.Ticker running
// at the display's refresh rate and is useful when there is no other loop to
// hook into.
package frame
