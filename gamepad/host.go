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

// Poller returns every controller the host currently knows about. The list
// is ordered by slot index and may contain nil entries for unoccupied slots.
//
// An error means the list is unavailable for this frame. It is never treated
// as fatal.
type Poller interface {
	Poll() ([]*Snapshot, error)
}

// Events are the functions called by a Notifier.
type Events struct {
	// called once for each newly attached controller
	Attached func(Snapshot)

	// called when the controller in the slot has been detached
	Detached func(index int)
}

// Notifier pushes attach and detach events to the subscriber. The returned
// cancel function must stop any further calls to the Events functions and must
// be safe to call more than once.
//
// Implementations must not hold any lock of their own while calling the Events
// functions.
type Notifier interface {
	Subscribe(ev Events) (cancel func())
}

// FrameHandle identifies a frame request so that it can be cancelled.
type FrameHandle uint64

// Scheduler calls functions on the next display refresh. RequestFrame must not
// call f before returning.
type Scheduler interface {
	RequestFrame(f func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// Host collects the capabilities of the environment that reports controllers.
// Poller and Notifier can be nil if the host does not support them. Scheduler
// is required.
type Host struct {
	Poller    Poller
	Notifier  Notifier
	Scheduler Scheduler
}

// Store receives every new Registry produced by a Loop. SetRegistry is called
// with the Loop's critical section held and so must not call back into the
// Loop.
type Store interface {
	Registry() Registry
	SetRegistry(Registry)
}
