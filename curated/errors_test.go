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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/test"
)

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("sdl: %v", curated.Errorf("sdl: %v", errors.New("window creation failed")))
	test.Equate(t, e.Error(), "sdl: window creation failed")
}

func TestIsAndHas(t *testing.T) {
	const scalerError = "scaler: output size: %v"

	e := curated.Errorf(scalerError, errors.New("zero dimension"))
	f := curated.Errorf("render: %v", e)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, scalerError))
	test.ExpectedFailure(t, curated.Is(f, scalerError))
	test.ExpectedSuccess(t, curated.Has(f, scalerError))
	test.ExpectedFailure(t, curated.Has(f, "not in the chain"))

	// plain errors are never curated
	test.ExpectedFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectedFailure(t, curated.Is(nil, scalerError))
}
