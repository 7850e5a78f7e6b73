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

// Package paths contains functions to prepare paths for resources used by the
// program, such as the configuration file.
package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the basePath() function. that function should be used instead.
const baseResourcePath = ".gamepads"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// ConfigFile returns the default location of the configuration file.
func ConfigFile() string {
	return ResourcePath("gamepads.yaml")
}

// basePath returns baseResourcePath unadorned if it exists in the current
// directory. Otherwise it is placed in the user's configuration directory
// (without the leading dot).
//
// note that we're not checking for the existance of the resource requested by
// the caller, or even the existance of 'baseResourcePath' in the config
// directory.
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, baseResourcePath[1:])
}
