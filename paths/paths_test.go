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

package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gamepads/paths"
	"github.com/jetsetilly/gamepads/test"
)

func TestResourcePath(t *testing.T) {
	pth := paths.ResourcePath("foo", "bar")
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("gamepads", "foo", "bar")))
}

func TestConfigFile(t *testing.T) {
	test.ExpectEquality(t, filepath.Base(paths.ConfigFile()), "gamepads.yaml")
}
