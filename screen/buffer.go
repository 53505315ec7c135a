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

package screen

import (
	"image"
	"image/color"
)

// Buffer is the pixel surface the screens are composited into. The zero
// value is usable; SetSize() must be called before any copy function.
type Buffer struct {
	pixels *image.RGBA
	size   image.Point
}

// SetSize resizes the buffer. A no-op if the buffer is already the correct
// size, so it is safe (and expected) to call this every frame.
func (b *Buffer) SetSize(size image.Point) {
	if b.pixels != nil && b.size == size {
		return
	}
	b.pixels = image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	b.size = size
}

// Size returns the logical size of the buffer.
func (b *Buffer) Size() image.Point {
	return b.size
}

// Stride returns the number of bytes between vertically adjacent pixels.
func (b *Buffer) Stride() int {
	return b.pixels.Stride
}

// Pixels returns the underlying image.
func (b *Buffer) Pixels() *image.RGBA {
	return b.pixels
}

// Clear sets every pixel in the buffer to opaque black. Called at the start
// of every frame so that no content from a previous, differently laid out,
// frame can show through.
func (b *Buffer) Clear() {
	pix := b.pixels.Pix
	for i := range pix {
		pix[i] = 0
	}
	for i := Depth - 1; i < len(pix); i += Depth {
		pix[i] = 0xff
	}
}

// SetRGBA sets a single pixel. Writes outside the buffer's extents are
// undefined; callers are expected to have clipped already.
func (b *Buffer) SetRGBA(x int, y int, c color.RGBA) {
	b.pixels.SetRGBA(x, y, c)
}

// CopyDirect copies the whole of src into the buffer at the given
// translation with a single copy. Only usable when every row of the
// destination region is contiguous in the buffer, which is to say when src
// is as wide as the buffer itself. See Layout.SupportsDirectCopy().
func (b *Buffer) CopyDirect(src *image.RGBA, translation image.Point) {
	if src.Stride != b.pixels.Stride {
		panic("copy direct: destination rows are not contiguous")
	}
	offset := b.pixels.PixOffset(translation.X, translation.Y)
	copy(b.pixels.Pix[offset:], src.Pix)
}

// CopyRows copies the whole of src into the buffer at the given translation,
// one row at a time. Usable with any translation that keeps src inside the
// buffer's extents.
func (b *Buffer) CopyRows(src *image.RGBA, translation image.Point) {
	w := src.Rect.Dx() * Depth
	for y := 0; y < src.Rect.Dy(); y++ {
		offset := b.pixels.PixOffset(translation.X, translation.Y+y)
		copy(b.pixels.Pix[offset:offset+w], src.Pix[y*src.Stride:y*src.Stride+w])
	}
}
