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

// Package provider shares the gamepad Registry with any number of
// subscribers.
//
// A Provider runs a single gamepad.Loop and broadcasts every new Registry to
// every Subscription. A Subscription channel only ever holds the most recent
// Registry that hasn't been read, so a slow subscriber never delays the loop
// or other subscribers. It simply misses intermediate values.
//
// The Provider can be carried in a context.Context with NewContext() so that
// code further down the call chain can find it with FromContext().
//
// SetGamepads() overwrites the shared Registry directly and broadcasts it in
// the same way as an update from the loop. The next update from the loop is
// built on top of whatever value was set.
package provider
