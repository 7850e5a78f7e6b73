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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which
// takes no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("WATCH", "LOG", "DUMP")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default and is selected if the first argument is
// not one of the listed sub-modes. Sub-mode comparisons are case insensitive.
//
// After selecting a mode, NewMode() prepares the Modes value for flags that are
// specific to that mode. Parse() is then called again:
//
//	switch md.Mode() {
//	case "WATCH":
//		md.NewMode()
//		rate := md.AddInt("rate", 60, "frames per second")
//		...
//	}
//
// Help messages are printed automatically when the -help flag is given and
// list the flags and sub-modes of the current mode.
package modalflag
