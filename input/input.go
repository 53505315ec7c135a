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

// Package input describes the pointer state consumed by the screen package.
// Tracking of the raw pointer is the responsibility of the host; the types
// here are only a snapshot of that state for the duration of one frame.
package input

import "image"

// State is the pointer state for a single frame.
type State struct {
	// position of the pointer in bottom-screen coordinates. may be outside
	// the screen's extents; users of the state are expected to clamp
	Touch image.Point

	// whether the pointer marker should be drawn at all
	CursorVisible bool
}
