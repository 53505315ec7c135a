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

// uniformBlock mirrors the Config uniform block in the screen fragment
// shader. The block uses the std140 layout so every field sits at an
// explicit offset; the trailing padding rounds the struct to the std140
// structure alignment. No field may be added, removed or reordered without
// changing the shader to match.
//
//	OutputSize    vec2   offset  0
//	Scale3D       uint   offset  8
//	FilterMode    uint   offset 12
//	CursorRect    vec4   offset 16
//	CursorVisible uint   offset 32
//	(padding)            offset 36
//	total size 48
type uniformBlock struct {
	OutputSize    [2]float32
	Scale3D       uint32
	FilterMode    uint32
	CursorRect    [4]float32
	CursorVisible uint32
	_             [3]uint32
}

// uniformBlockSize is the std140 size of the block. used when allocating
// and updating the uniform buffer.
const uniformBlockSize = 48
