// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/prefs"
	"github.com/jetsetilly/gopherds/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool

	test.Equate(t, b.Get().(bool), false)

	test.ExpectedSuccess(t, b.Set(true))
	test.Equate(t, b.Get().(bool), true)

	test.ExpectedSuccess(t, b.Set("FALSE"))
	test.Equate(t, b.Get().(bool), false)

	test.ExpectedFailure(t, b.Set(100))
}

func TestInt(t *testing.T) {
	var i prefs.Int

	test.Equate(t, i.Get().(int), 0)

	test.ExpectedSuccess(t, i.Set(3))
	test.Equate(t, i.Get().(int), 3)

	test.ExpectedSuccess(t, i.Set("12"))
	test.Equate(t, i.Get().(int), 12)

	test.ExpectedFailure(t, i.Set("not a number"))
}

func TestHookPost(t *testing.T) {
	var i prefs.Int

	hooked := 0
	i.SetHookPost(func(v prefs.Value) error {
		hooked = v.(int)
		return nil
	})

	test.ExpectedSuccess(t, i.Set(5))
	test.Equate(t, hooked, 5)
}
