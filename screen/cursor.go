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
	"math"
)

// The pointer marker is defined on a logical 5x5 grid, cells indexed -2 to
// +2 on both axes. The inner 3x3 is filled white, the edge-centre cells form
// a black ring and the four corner cells are left untouched. Everything
// outside the grid is untouched too.
//
// The same shape is drawn by two very different paths: pixel writes on the
// CPU (DrawCursor) and a fragment shader on the GPU (gui/sdlgl). The two
// paths share the classification below and differ only in how a position is
// mapped to a grid cell. The CPU maps destination pixels with integer floor
// division; the shader buckets normalized coordinates, with an epsilon bias
// so that boundary fragments resolve deterministically. CursorCellAtUV() is
// the Go mirror of the shader's bucketing and exists so the two mappings can
// be tested against each other.

// CursorCell is the classification of a single cell of the marker's base
// grid.
type CursorCell int

// List of valid CursorCell values.
const (
	CursorNone CursorCell = iota
	CursorFill
	CursorRing
	CursorCorner
)

// ClassifyCursorCell classifies a base grid cell. The classification is the
// single source of truth for the marker's shape.
func ClassifyCursorCell(bx int, by int) CursorCell {
	abx := bx
	if abx < 0 {
		abx = -abx
	}
	aby := by
	if aby < 0 {
		aby = -aby
	}

	if abx <= 1 && aby <= 1 {
		return CursorFill
	}
	if abx == 2 && aby == 2 {
		return CursorCorner
	}
	if (aby == 2 && abx <= 1) || (abx == 2 && aby <= 1) {
		return CursorRing
	}
	return CursorNone
}

// FloorDiv divides a by b, rounding towards negative infinity. Plain integer
// division truncates towards zero, which would fold the cells either side of
// the marker's centre together. b must be positive.
func FloorDiv(a int, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// epsilon subtracted before flooring in the shader's grid bucketing. exact
// grid-boundary fragments resolve to the lower bucket rather than
// flickering on floating-point jitter.
const cursorEpsilon = 0.001

// CursorCellAtUV classifies a position normalized to the marker's bounding
// rectangle. This is the Go mirror of the bucketing performed by the cursor
// fragment shader and must stay in step with it.
func CursorCellAtUV(u float64, v float64) CursorCell {
	bx := int(math.Floor(u*5-cursorEpsilon)) - 2
	by := int(math.Floor(v*5-cursorEpsilon)) - 2
	return ClassifyCursorCell(bx, by)
}

// CursorRectContains is the containment rule applied by the cursor fragment
// shader: half-open on the right and bottom edges so that a fragment on a
// boundary shared by two regions is classified exactly once. The rectangle
// is (left, top, right, bottom) in normalized coordinates.
func CursorRectContains(u float32, v float32, rect [4]float32) bool {
	return u >= rect[0] && u < rect[2] && v >= rect[1] && v < rect[3]
}

// CursorRect returns the marker's bounding rectangle (left, top, right,
// bottom) normalized to the given buffer size. Used to fill the cursor
// rectangle field of the shader's uniform block.
func CursorRect(target image.Point, size int, scale int, bufferSize image.Point) [4]float32 {
	ext := size * scale
	return [4]float32{
		float32(target.X-ext) / float32(bufferSize.X),
		float32(target.Y-ext) / float32(bufferSize.Y),
		float32(target.X+ext) / float32(bufferSize.X),
		float32(target.Y+ext) / float32(bufferSize.Y),
	}
}

var (
	cursorWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	cursorBlack = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// DrawCursor draws the pointer marker into the buffer. target is the
// marker's position in output-buffer coordinates; size pulls the marker's
// centre inside the buffer when the target is near an edge; scale is the
// magnification of the region the marker is drawn over.
func DrawCursor(b *Buffer, target image.Point, size int, scale int) {
	bufSize := b.Size()

	// the configured size nudges the centre away from the buffer's edges.
	// note that the footprint of the marker is governed by scale, not size
	start := clampPoint(target.Sub(image.Point{size, size}), bufSize)
	end := clampPoint(target.Add(image.Point{size, size}), bufSize)
	cx := (start.X + end.X) / 2
	cy := (start.Y + end.Y) / 2

	// bounds of the scaled 5x5 grid, clipped to the buffer. destination
	// pixels for base cell b span [c + b*scale, c + b*scale + scale - 1]
	sx := max(0, cx-2*scale)
	sy := max(0, cy-2*scale)
	ex := min(bufSize.X-1, cx+2*scale+scale-1)
	ey := min(bufSize.Y-1, cy+2*scale+scale-1)

	for y := sy; y <= ey; y++ {
		for x := sx; x <= ex; x++ {
			switch ClassifyCursorCell(FloorDiv(x-cx, scale), FloorDiv(y-cy, scale)) {
			case CursorFill:
				b.SetRGBA(x, y, cursorWhite)
			case CursorRing:
				b.SetRGBA(x, y, cursorBlack)
			}
		}
	}
}

func clampPoint(p image.Point, size image.Point) image.Point {
	return image.Point{
		X: min(max(p.X, 0), size.X),
		Y: min(max(p.Y, 0), size.Y),
	}
}

func min(a int, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
