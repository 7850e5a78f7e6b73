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

// Package logger is the central log for the application. Entries are made
// with a tag, which identifies the part of the program making the entry, and
// a detail.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. This is important for code that runs every frame
// and which might otherwise flood the log with the same message, for example
// a controller host that fails on every poll.
//
// The central log is limited in size. Older entries are dropped as new ones
// are added.
package logger
