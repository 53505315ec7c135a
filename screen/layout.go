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

// Width and Height are the dimensions of a single emulated screen. Both
// screens are the same size.
const (
	Width  = 256
	Height = 192
)

// Depth is the number of bytes per pixel in every image handled by this
// package.
const Depth = 4

// Layout is the policy used to combine the two screens into the output
// image. The set of layouts is closed; Spec.Compute() will panic on a value
// outside the enumeration.
type Layout int

// List of valid Layout values.
//
// The hybrid layouts magnify one screen (the "primary") and optionally show
// both screens at native size in a column alongside it. The largescreen
// layouts also magnify one screen but always show the other (the
// "companion") at native size. The flipped variants mirror the magnified
// region and the column horizontally.
const (
	TopOnly Layout = iota
	BottomOnly
	TopBottom
	BottomTop
	LeftRight
	RightLeft
	HybridTop
	HybridBottom
	FlippedHybridTop
	FlippedHybridBottom
	LargescreenTop
	LargescreenBottom
	FlippedLargescreenTop
	FlippedLargescreenBottom
	numLayouts
)

func (l Layout) String() string {
	switch l {
	case TopOnly:
		return "top only"
	case BottomOnly:
		return "bottom only"
	case TopBottom:
		return "top/bottom"
	case BottomTop:
		return "bottom/top"
	case LeftRight:
		return "left/right"
	case RightLeft:
		return "right/left"
	case HybridTop:
		return "hybrid (top)"
	case HybridBottom:
		return "hybrid (bottom)"
	case FlippedHybridTop:
		return "flipped hybrid (top)"
	case FlippedHybridBottom:
		return "flipped hybrid (bottom)"
	case LargescreenTop:
		return "largescreen (top)"
	case LargescreenBottom:
		return "largescreen (bottom)"
	case FlippedLargescreenTop:
		return "flipped largescreen (top)"
	case FlippedLargescreenBottom:
		return "flipped largescreen (bottom)"
	}
	return "unknown layout"
}

// IsHybrid returns true if the layout magnifies one screen and places the
// pair of native-size screens in a side column.
func (l Layout) IsHybrid() bool {
	switch l {
	case HybridTop, HybridBottom, FlippedHybridTop, FlippedHybridBottom:
		return true
	}
	return false
}

// IsLargescreen returns true if the layout magnifies one screen and shows
// only the companion at native size.
func (l Layout) IsLargescreen() bool {
	switch l {
	case LargescreenTop, LargescreenBottom, FlippedLargescreenTop, FlippedLargescreenBottom:
		return true
	}
	return false
}

// SupportsDirectCopy returns true if a screen's destination rows are
// contiguous in the output buffer. This is only so when the screen occupies
// the full width of the buffer. Layouts that place anything at the side of a
// screen must copy row-by-row.
func (l Layout) SupportsDirectCopy() bool {
	switch l {
	case TopOnly, BottomOnly, TopBottom, BottomTop:
		return true
	}
	return false
}

// Next returns the layout following this one, wrapping at the end of the
// enumeration. Useful for cycling layouts with a hotkey.
func (l Layout) Next() Layout {
	return (l + 1) % numLayouts
}

// SideScreenDisplay governs whether the native-size companion screen is
// drawn at all in the hybrid layouts.
type SideScreenDisplay int

// List of valid SideScreenDisplay values. SideScreenBoth draws both screens
// at native size in the side column. SideScreenFocusedOnly draws only the
// non-primary screen; a native-size copy of the primary would be redundant,
// it is already shown magnified.
const (
	SideScreenBoth SideScreenDisplay = iota
	SideScreenFocusedOnly
)

func (d SideScreenDisplay) String() string {
	switch d {
	case SideScreenBoth:
		return "both"
	case SideScreenFocusedOnly:
		return "focused only"
	}
	return "unknown side-screen display"
}
