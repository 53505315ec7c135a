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

	"golang.org/x/image/draw"
)

// Filter is the resampling kernel used when magnifying a screen.
type Filter int

// List of valid Filter values.
const (
	FilterNearest Filter = iota
	FilterSmooth
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterSmooth:
		return "smooth"
	}
	return "unknown filter"
}

// Scaler resamples a native-size screen into a larger destination. Filter
// and output size are mutable; changing them between frames is cheap and
// changing them to the same value is free.
type Scaler struct {
	filter Filter
	out    image.Point
}

// NewScaler is the preferred method of initialisation for the Scaler type.
func NewScaler(filter Filter, out image.Point) *Scaler {
	return &Scaler{
		filter: filter,
		out:    out,
	}
}

// SetFilter changes the resampling kernel.
func (s *Scaler) SetFilter(filter Filter) {
	s.filter = filter
}

// SetOutSize changes the destination size of subsequent Scale() calls.
func (s *Scaler) SetOutSize(out image.Point) {
	s.out = out
}

// OutSize returns the current destination size.
func (s *Scaler) OutSize() image.Point {
	return s.out
}

// Scale resamples src into dst. dst must be at least the scaler's output
// size.
func (s *Scaler) Scale(dst *image.RGBA, src *image.RGBA) {
	r := image.Rect(0, 0, s.out.X, s.out.Y)
	switch s.filter {
	case FilterNearest:
		draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	case FilterSmooth:
		draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	}
}
