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

package sdlgl

import (
	"testing"
	"unsafe"

	"github.com/jetsetilly/gopherds/test"
)

// the std140 layout of the Config block leaves no room for the Go compiler
// to make its own padding decisions. if this test fails the shader and the
// uniformBlock type have gone out of step.
func TestUniformBlockLayout(t *testing.T) {
	var b uniformBlock

	test.Equate(t, unsafe.Offsetof(b.OutputSize), 0)
	test.Equate(t, unsafe.Offsetof(b.Scale3D), 8)
	test.Equate(t, unsafe.Offsetof(b.FilterMode), 12)
	test.Equate(t, unsafe.Offsetof(b.CursorRect), 16)
	test.Equate(t, unsafe.Offsetof(b.CursorVisible), 32)
	test.Equate(t, unsafe.Sizeof(b), uniformBlockSize)
}
