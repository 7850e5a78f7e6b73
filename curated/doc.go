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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with
// a specific pattern. Packages export the patterns they use so that callers
// can test for them. For example:
//
//	err := gamepad.NewLoop(host, store).Start()
//	if curated.Is(err, gamepad.NoScheduler) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means that a package can wrap an error with
// its own prefix without worrying whether the error already carries it.
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can see any uncurated error that has been wrapped. For
// example, a missing configuration file can be detected with:
//
//	errors.Is(err, fs.ErrNotExist)
package curated
