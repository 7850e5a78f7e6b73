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

// Package gamepad keeps track of the game controllers reported by a host
// environment.
//
// The Registry type maps a controller's slot index to the most recent Snapshot
// of that controller. A Registry is never changed in place. Adding, updating or
// removing a controller produces a new Registry and the old value remains
// valid for anyone still holding it.
//
// The Loop type reconciles the Registry with the host once per frame. The host
// is described by three interfaces, collected in the Host type:
//
//	Poller     returns the list of controllers the host currently knows about
//	Notifier   pushes attach and detach events
//	Scheduler  calls a function on the next display refresh
//
// Both the Poller and the Notifier are optional. A missing Poller is treated as
// an empty list of controllers. A missing Notifier means the Loop relies
// entirely on polling.
//
// The Loop doesn't keep the Registry itself. Every new Registry is handed to a
// Store, which decides what to do with it. The hook and provider packages
// are the two Store implementations used in practice.
package gamepad
