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

	"golang.org/x/image/math/f64"
)

// Spec is the precomputed geometry for a Layout. Compute() must be called
// after any field in the first group is changed. None of the geometry is
// recomputed during a frame.
type Spec struct {
	Layout Layout

	// magnification ratio for the hybrid and largescreen layouts. clamped by
	// Compute() to a minimum of 2 for those layouts, 1 otherwise
	Ratio int

	// number of blank rows between the screens in the stacked layouts.
	// negative values are clamped to zero by Compute()
	Gap int

	// companion screen policy for the hybrid layouts
	Side SideScreenDisplay

	// the size the output buffer must be resized to before compositing
	BufferSize image.Point

	// where each screen lands in the output buffer. for the largescreen
	// layouts the magnified screen's own translation is used; the hybrid
	// layouts use HybridTranslation for the magnified region and the screen
	// translations for the native-size column
	TopTranslation    image.Point
	BottomTranslation image.Point
	HybridTranslation image.Point

	// maps a point in bottom-screen coordinates to the region of the output
	// buffer in which the bottom screen is displayed
	BottomScreenTransform f64.Aff3

	// the magnification of the region in which the bottom screen is
	// displayed. one except when the bottom screen is the magnified screen
	CursorScale int
}

// FocusedTop returns true if the top screen is the magnified screen of a
// hybrid or largescreen layout.
func (s *Spec) FocusedTop() bool {
	switch s.Layout {
	case HybridTop, FlippedHybridTop, LargescreenTop, FlippedLargescreenTop:
		return true
	}
	return false
}

// Compute fills in the geometry fields from the Layout, Ratio, Gap and Side
// fields. Panics if the Layout field is not a member of the Layout
// enumeration.
func (s *Spec) Compute() {
	// at a ratio of one the magnified screen would be native size and the
	// side column would land on top of it
	minRatio := 1
	if s.Layout.IsHybrid() || s.Layout.IsLargescreen() {
		minRatio = 2
	}
	if s.Ratio < minRatio {
		s.Ratio = minRatio
	}

	if s.Gap < 0 {
		s.Gap = 0
	}

	r := s.Ratio

	// width of the magnified region and the x-coordinate of the side column
	// in the unflipped magnified layouts
	mw := Width * r
	mh := Height * r

	switch s.Layout {
	case TopOnly:
		s.BufferSize = image.Point{Width, Height}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{}
		s.setBottomRegion(1, image.Point{})

	case BottomOnly:
		s.BufferSize = image.Point{Width, Height}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{}
		s.setBottomRegion(1, image.Point{})

	case TopBottom:
		s.BufferSize = image.Point{Width, Height*2 + s.Gap}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{0, Height + s.Gap}
		s.setBottomRegion(1, s.BottomTranslation)

	case BottomTop:
		s.BufferSize = image.Point{Width, Height*2 + s.Gap}
		s.TopTranslation = image.Point{0, Height + s.Gap}
		s.BottomTranslation = image.Point{}
		s.setBottomRegion(1, s.BottomTranslation)

	case LeftRight:
		s.BufferSize = image.Point{Width * 2, Height}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{Width, 0}
		s.setBottomRegion(1, s.BottomTranslation)

	case RightLeft:
		s.BufferSize = image.Point{Width * 2, Height}
		s.TopTranslation = image.Point{Width, 0}
		s.BottomTranslation = image.Point{}
		s.setBottomRegion(1, s.BottomTranslation)

	case HybridTop:
		s.BufferSize = image.Point{mw + Width, mh}
		s.HybridTranslation = image.Point{}
		s.TopTranslation = image.Point{mw, 0}
		s.BottomTranslation = image.Point{mw, mh - Height}
		s.setBottomRegion(1, s.BottomTranslation)

	case HybridBottom:
		s.BufferSize = image.Point{mw + Width, mh}
		s.HybridTranslation = image.Point{}
		s.TopTranslation = image.Point{mw, 0}
		s.BottomTranslation = image.Point{mw, mh - Height}

		// the bottom screen is the focus of the layout so the pointer maps
		// into the magnified region, even when a native-size copy is also on
		// show in the side column
		s.setBottomRegion(r, s.HybridTranslation)

	case FlippedHybridTop:
		s.BufferSize = image.Point{mw + Width, mh}
		s.HybridTranslation = image.Point{Width, 0}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{0, mh - Height}
		s.setBottomRegion(1, s.BottomTranslation)

	case FlippedHybridBottom:
		s.BufferSize = image.Point{mw + Width, mh}
		s.HybridTranslation = image.Point{Width, 0}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{0, mh - Height}
		s.setBottomRegion(r, s.HybridTranslation)

	case LargescreenTop:
		s.BufferSize = image.Point{mw + Width, mh}
		s.TopTranslation = image.Point{}
		s.BottomTranslation = image.Point{mw, mh - Height}
		s.setBottomRegion(1, s.BottomTranslation)

	case LargescreenBottom:
		s.BufferSize = image.Point{mw + Width, mh}
		s.BottomTranslation = image.Point{}
		s.TopTranslation = image.Point{mw, 0}
		s.setBottomRegion(r, s.BottomTranslation)

	case FlippedLargescreenTop:
		s.BufferSize = image.Point{mw + Width, mh}
		s.TopTranslation = image.Point{Width, 0}
		s.BottomTranslation = image.Point{0, mh - Height}
		s.setBottomRegion(1, s.BottomTranslation)

	case FlippedLargescreenBottom:
		s.BufferSize = image.Point{mw + Width, mh}
		s.BottomTranslation = image.Point{Width, 0}
		s.TopTranslation = image.Point{0, 0}
		s.setBottomRegion(r, s.BottomTranslation)

	default:
		panic("compute: unknown layout")
	}
}

// setBottomRegion records the magnification and translation of the region of
// the output buffer in which the bottom screen is displayed.
func (s *Spec) setBottomRegion(scale int, translation image.Point) {
	s.CursorScale = scale
	s.BottomScreenTransform = f64.Aff3{
		float64(scale), 0, float64(translation.X),
		0, float64(scale), float64(translation.Y),
	}
}

// TransformTouch maps a pointer position in bottom-screen coordinates to a
// point in the output buffer. The position is clamped to the screen's
// extents before transformation.
func (s *Spec) TransformTouch(p image.Point) image.Point {
	if p.X < 0 {
		p.X = 0
	} else if p.X > Width-1 {
		p.X = Width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > Height-1 {
		p.Y = Height - 1
	}

	m := s.BottomScreenTransform
	return image.Point{
		X: int(m[0]*float64(p.X) + m[1]*float64(p.Y) + m[2]),
		Y: int(m[3]*float64(p.X) + m[4]*float64(p.Y) + m[5]),
	}
}
