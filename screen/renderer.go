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

	"github.com/jetsetilly/gopherds/input"
)

// Presenter implementations receive the finished frame. The pixel data is
// valid only for the duration of the call and is in the host's channel
// order (blue in the lowest byte).
type Presenter interface {
	Present(pix []byte, size image.Point, stride int) error
}

// Renderer composites the two screens into an output buffer. A Renderer is
// owned by a single rendering session and must not be shared between
// goroutines. All of its buffers are long-lived; in the steady state a frame
// allocates nothing.
type Renderer struct {
	buffer Buffer

	// the magnified screen of a hybrid/largescreen layout is scaled into
	// this intermediate image before being copied into place
	hybrid *image.RGBA
	scaler *Scaler

	cursorSize int

	// delivery buffer for the channel-swapped frame
	frame []byte
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(filter Filter, cursorSize int) *Renderer {
	return &Renderer{
		scaler:     NewScaler(filter, image.Point{Width, Height}),
		cursorSize: cursorSize,
	}
}

// SetFilter changes the resampling kernel used for magnified layouts.
func (r *Renderer) SetFilter(filter Filter) {
	r.scaler.SetFilter(filter)
}

// SetCursorSize changes the configured size of the pointer marker.
func (r *Renderer) SetCursorSize(size int) {
	r.cursorSize = size
}

// Buffer exposes the output buffer. Useful for testing and for presentation
// paths that read the composited frame directly.
func (r *Renderer) Buffer() *Buffer {
	return &r.buffer
}

// Render composites one frame and delivers it to the Presenter. The two
// source images are borrowed for the duration of the call only.
func (r *Renderer) Render(top *image.RGBA, bottom *image.RGBA, spec *Spec, st input.State, pres Presenter) error {
	r.Combine(top, bottom, spec)

	if spec.Layout != TopOnly && st.CursorVisible {
		DrawCursor(&r.buffer, spec.TransformTouch(st.Touch), r.cursorSize, spec.CursorScale)
	}

	return pres.Present(r.swapChannels(), r.buffer.Size(), r.buffer.Stride())
}

// RenderWithoutCursor composites one frame and delivers it without the
// pointer marker. For presentation paths that apply the marker themselves,
// in a fragment shader.
func (r *Renderer) RenderWithoutCursor(top *image.RGBA, bottom *image.RGBA, spec *Spec, pres Presenter) error {
	r.Combine(top, bottom, spec)
	return pres.Present(r.swapChannels(), r.buffer.Size(), r.buffer.Stride())
}

// Combine composites the two screens into the output buffer according to
// the given layout geometry. The buffer is resized and cleared first; a
// layout that doesn't write a region of the buffer leaves that region
// black.
func (r *Renderer) Combine(top *image.RGBA, bottom *image.RGBA, spec *Spec) {
	r.buffer.SetSize(spec.BufferSize)

	if spec.Layout.IsHybrid() || spec.Layout.IsLargescreen() {
		mag := image.Point{Width * spec.Ratio, Height * spec.Ratio}
		if r.hybrid == nil || r.hybrid.Rect.Size() != mag {
			r.hybrid = image.NewRGBA(image.Rect(0, 0, mag.X, mag.Y))
		}
		r.scaler.SetOutSize(mag)
	}

	r.buffer.Clear()

	switch {
	case spec.Layout.IsHybrid():
		r.combineHybrid(top, bottom, spec)
	case spec.Layout.IsLargescreen():
		r.combineLargescreen(top, bottom, spec)
	default:
		if spec.Layout != BottomOnly {
			r.copyScreen(top, spec.TopTranslation, spec.Layout)
		}
		if spec.Layout != TopOnly {
			r.copyScreen(bottom, spec.BottomTranslation, spec.Layout)
		}
	}
}

func (r *Renderer) combineHybrid(top *image.RGBA, bottom *image.RGBA, spec *Spec) {
	if spec.FocusedTop() {
		r.scaler.Scale(r.hybrid, top)
	} else {
		r.scaler.Scale(r.hybrid, bottom)
	}
	r.buffer.CopyRows(r.hybrid, spec.HybridTranslation)

	// the native-size column. each screen is drawn if the policy asks for
	// both screens or if it is the companion to the magnified screen. the
	// magnified screen's native-size copy is the redundant one
	if spec.Side == SideScreenBoth || !spec.FocusedTop() {
		r.buffer.CopyRows(top, spec.TopTranslation)
	}
	if spec.Side == SideScreenBoth || spec.FocusedTop() {
		r.buffer.CopyRows(bottom, spec.BottomTranslation)
	}
}

func (r *Renderer) combineLargescreen(top *image.RGBA, bottom *image.RGBA, spec *Spec) {
	// unlike the hybrid layouts there is no side-screen policy here. the
	// companion screen is always drawn
	if spec.FocusedTop() {
		r.scaler.Scale(r.hybrid, top)
		r.buffer.CopyRows(r.hybrid, spec.TopTranslation)
		r.copyScreen(bottom, spec.BottomTranslation, spec.Layout)
	} else {
		r.scaler.Scale(r.hybrid, bottom)
		r.buffer.CopyRows(r.hybrid, spec.BottomTranslation)
		r.copyScreen(top, spec.TopTranslation, spec.Layout)
	}
}

// copyScreen copies a native-size screen using the cheapest strategy the
// layout allows.
func (r *Renderer) copyScreen(src *image.RGBA, translation image.Point, layout Layout) {
	if layout.SupportsDirectCopy() {
		r.buffer.CopyDirect(src, translation)
	} else {
		r.buffer.CopyRows(src, translation)
	}
}

// swapChannels converts the output buffer into the host's channel order,
// swapping red and blue and forcing full opacity. The delivery buffer is
// reused from frame to frame.
func (r *Renderer) swapChannels() []byte {
	pix := r.buffer.Pixels().Pix
	if len(r.frame) != len(pix) {
		r.frame = make([]byte, len(pix))
	}
	for i := 0; i < len(pix); i += Depth {
		r.frame[i] = pix[i+2]
		r.frame[i+1] = pix[i+1]
		r.frame[i+2] = pix[i]
		r.frame[i+3] = 0xff
	}
	return r.frame
}
