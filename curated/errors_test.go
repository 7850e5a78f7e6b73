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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packages wrapping an error with the same prefix don't produce
	// duplicate parts
	f := curated.Errorf("config: %v", curated.Errorf("config: %v", "bad value"))
	test.ExpectEquality(t, f.Error(), "config: bad value")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))

	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Is(errors.New("plain"), testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
	test.ExpectFailure(t, curated.Has(e, testErrorB))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testError))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("foo")))
	test.ExpectFailure(t, curated.IsAny(errors.New("foo")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("config: %v", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf("config: %s", "no error value")
	test.ExpectFailure(t, errors.Is(f, fs.ErrNotExist))
}
