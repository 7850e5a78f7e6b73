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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gamepads/config"
	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/test"
)

func TestMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.RefreshRate, config.DefaultRefreshRate)
	test.ExpectEquality(t, cfg.DeadZone, config.DefaultDeadZone)
}

func TestEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.RefreshRate, config.DefaultRefreshRate)
}

func TestPartialFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gamepads.yaml")
	err := os.WriteFile(fn, []byte("refresh_rate: 120\nview:\n  axis_bars: false\n"), 0o644)
	test.DemandSuccess(t, err)

	cfg, err := config.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.RefreshRate, 120)
	test.ExpectEquality(t, cfg.DeadZone, config.DefaultDeadZone)
	test.ExpectFailure(t, cfg.View.AxisBars)
	test.ExpectEquality(t, cfg.View.LogLines, 4)
}

func TestInvalidValue(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gamepads.yaml")
	err := os.WriteFile(fn, []byte("dead_zone: 1.5\n"), 0o644)
	test.DemandSuccess(t, err)

	_, err = config.Load(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidValue))
}

func TestMalformedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gamepads.yaml")
	err := os.WriteFile(fn, []byte("refresh_rate: [\n"), 0o644)
	test.DemandSuccess(t, err)

	_, err = config.Load(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, config.LoadError))
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gamepads.yaml")

	cfg := config.DefaultConfig()
	cfg.RefreshRate = 30
	cfg.EchoLog = true
	test.DemandSuccess(t, cfg.Save(fn))

	loaded, err := config.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *loaded, *cfg)
}

func TestStatsviewAddress(t *testing.T) {
	cfg := config.DefaultConfig()
	test.ExpectEquality(t, cfg.StatsviewAddress, config.DefaultStatsviewAddress)

	cfg.Statsview = true
	test.ExpectSuccess(t, cfg.Validate())

	cfg.StatsviewAddress = ""
	err := cfg.Validate()
	test.ExpectSuccess(t, curated.Is(err, config.InvalidValue))

	// an empty address doesn't matter if the server isn't launched
	cfg.Statsview = false
	test.ExpectSuccess(t, cfg.Validate())
}
