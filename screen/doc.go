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

// Package screen combines the two screens of the emulated console into a
// single output image.
//
// The console has two fixed-size screens. How the pair is presented to the
// user is a matter of taste and so the package supports a range of layouts:
// one screen only, both screens stacked or side-by-side, and magnified
// layouts in which one screen is scaled up and the other shown at native
// size alongside it (or not shown at all).
//
// The Layout type enumerates the possibilities and the Spec type carries the
// geometry for the chosen layout: the size of the output image and where in
// that image each screen lands. Geometry is computed once, when the layout or
// the preferences change, never per frame.
//
// The Renderer type drives a frame: it resizes and clears the output Buffer,
// copies/scales the screens into place, optionally draws the pointer marker
// over the bottom screen and hands the finished image to a Presenter.
//
// The pointer marker is also implemented as a fragment shader in the
// gui/sdlgl package. The two implementations must classify the marker's 5x5
// base grid identically; the classification function and its test live here.
package screen
