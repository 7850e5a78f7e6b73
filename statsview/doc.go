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

// Package statsview serves runtime statistics for the gamepads command over
// HTTP. The server is only compiled in when the program is built with the
// statsview tag:
//
//	go build -tags statsview
//
// Without the tag Launch() does nothing and Available() returns false, so the
// command can always call it without checking how it was built.
//
// The graphs are at /debug/statsview on the configured address, next to the
// usual pprof handlers at /debug/pprof/. The main thing to watch is the heap
// allocation rate while a controller is attached: the reconciliation loop
// builds a new Registry every frame.
package statsview
