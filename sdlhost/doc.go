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

// Package sdlhost is a gamepad host backed by the SDL game controller API.
//
// SDL requires that most of its functions are called from the thread that
// initialised it. For this reason the Host doesn't read controllers when it is
// polled. Instead, the Service() function must be called regularly from the
// main thread. Service() handles SDL events, opens and closes controllers as
// they are attached and detached, and takes a new Snapshot of every open
// controller. Poll() returns the snapshots taken by the most recent call to
// Service().
//
// Slot indexes are assigned to controllers in the order they are attached,
// using the lowest free slot. A slot is freed when its controller is detached.
//
// Controller state is presented in the "standard" layout of seventeen buttons
// and four axes:
//
//	buttons  0 A          1 B           2 X            3 Y
//	         4 left bumper             5 right bumper
//	         6 left trigger            7 right trigger (analog)
//	         8 back       9 start      10 left stick  11 right stick
//	        12 up        13 down       14 left        15 right
//	        16 guide
//
//	axes     0 left stick X   1 left stick Y
//	         2 right stick X  3 right stick Y
package sdlhost
