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

package screen_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/gopherds/input"
	"github.com/jetsetilly/gopherds/screen"
	"github.com/jetsetilly/gopherds/test"

	"github.com/lucasb-eyer/go-colorful"
)

// solid screens in unmistakable colours.
func testScreens() (*image.RGBA, *image.RGBA, color.RGBA, color.RGBA) {
	hue := func(h float64) color.RGBA {
		r, g, b := colorful.Hsv(h, 1, 1).RGB255()
		return color.RGBA{r, g, b, 0xff}
	}

	topColor := hue(0)
	bottomColor := hue(240)

	top := image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height))
	bottom := image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height))
	fill(top, topColor)
	fill(bottom, bottomColor)

	return top, bottom, topColor, bottomColor
}

var clearColor = color.RGBA{0x00, 0x00, 0x00, 0xff}

// every pixel of the region is the given colour.
func regionIs(t *testing.T, b *screen.Buffer, region image.Rectangle, c color.RGBA) {
	t.Helper()
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if b.Pixels().RGBAAt(x, y) != c {
				t.Fatalf("pixel (%d,%d) is %v - wanted %v", x, y, b.Pixels().RGBAAt(x, y), c)
			}
		}
	}
}

func TestSimpleLayouts(t *testing.T) {
	top, bottom, topColor, bottomColor := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	spec := &screen.Spec{Layout: screen.TopBottom, Gap: 16}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	regionIs(t, rend.Buffer(), image.Rect(0, 0, 256, 192), topColor)
	regionIs(t, rend.Buffer(), image.Rect(0, 208, 256, 400), bottomColor)

	// the gap band is left at the clear value
	regionIs(t, rend.Buffer(), image.Rect(0, 192, 256, 208), clearColor)

	spec = &screen.Spec{Layout: screen.RightLeft}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	regionIs(t, rend.Buffer(), image.Rect(256, 0, 512, 192), topColor)
	regionIs(t, rend.Buffer(), image.Rect(0, 0, 256, 192), bottomColor)
}

func TestNoStaleContent(t *testing.T) {
	top, bottom, topColor, _ := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	// dirty the renderer with a large two-screen frame first
	spec := &screen.Spec{Layout: screen.TopBottom}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	// the single-screen frame that follows must contain nothing but the top
	// screen
	spec = &screen.Spec{Layout: screen.TopOnly}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	test.ExpectedSuccess(t, rend.Buffer().Size() == image.Point{256, 192})
	regionIs(t, rend.Buffer(), image.Rect(0, 0, 256, 192), topColor)
}

func TestHybridBoth(t *testing.T) {
	top, bottom, topColor, bottomColor := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	spec := &screen.Spec{Layout: screen.HybridTop, Ratio: 3, Side: screen.SideScreenBoth}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	// magnified top screen fills the left region
	regionIs(t, rend.Buffer(), image.Rect(0, 0, 768, 576), topColor)

	// both screens appear at native size in the side column
	regionIs(t, rend.Buffer(), image.Rect(768, 0, 1024, 192), topColor)
	regionIs(t, rend.Buffer(), image.Rect(768, 384, 1024, 576), bottomColor)

	// the band between the native-size screens is clear
	regionIs(t, rend.Buffer(), image.Rect(768, 192, 1024, 384), clearColor)
}

func TestHybridMinimumRatio(t *testing.T) {
	top, bottom, topColor, bottomColor := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	// a ratio below the minimum is clamped to two. the two native-size
	// screens must each keep their own region of the side column; the bottom
	// screen must never overwrite the top screen's copy
	spec := &screen.Spec{Layout: screen.HybridTop, Ratio: 1, Side: screen.SideScreenBoth}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	regionIs(t, rend.Buffer(), image.Rect(0, 0, 512, 384), topColor)
	regionIs(t, rend.Buffer(), image.Rect(512, 0, 768, 192), topColor)
	regionIs(t, rend.Buffer(), image.Rect(512, 192, 768, 384), bottomColor)
}

func TestHybridFocusedOnly(t *testing.T) {
	top, bottom, topColor, bottomColor := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	spec := &screen.Spec{Layout: screen.HybridTop, Ratio: 3, Side: screen.SideScreenFocusedOnly}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	// only the companion appears in the side column. the slot for the
	// magnified screen's native-size copy stays clear
	regionIs(t, rend.Buffer(), image.Rect(768, 0, 1024, 192), clearColor)
	regionIs(t, rend.Buffer(), image.Rect(768, 384, 1024, 576), bottomColor)

	// and with the bottom screen focused, the companion is the top screen
	spec = &screen.Spec{Layout: screen.HybridBottom, Ratio: 3, Side: screen.SideScreenFocusedOnly}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	regionIs(t, rend.Buffer(), image.Rect(0, 0, 768, 576), bottomColor)
	regionIs(t, rend.Buffer(), image.Rect(768, 0, 1024, 192), topColor)
	regionIs(t, rend.Buffer(), image.Rect(768, 384, 1024, 576), clearColor)
}

func TestLargescreen(t *testing.T) {
	top, bottom, topColor, bottomColor := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	// the side-screen policy has no effect on the largescreen layouts: the
	// companion is always drawn
	spec := &screen.Spec{Layout: screen.LargescreenTop, Ratio: 2, Side: screen.SideScreenFocusedOnly}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	regionIs(t, rend.Buffer(), image.Rect(0, 0, 512, 384), topColor)
	regionIs(t, rend.Buffer(), image.Rect(512, 192, 768, 384), bottomColor)
	regionIs(t, rend.Buffer(), image.Rect(512, 0, 768, 192), clearColor)

	spec = &screen.Spec{Layout: screen.FlippedLargescreenBottom, Ratio: 2, Side: screen.SideScreenFocusedOnly}
	spec.Compute()
	rend.Combine(top, bottom, spec)

	regionIs(t, rend.Buffer(), image.Rect(256, 0, 768, 384), bottomColor)
	regionIs(t, rend.Buffer(), image.Rect(0, 0, 256, 192), topColor)
}

type capture struct {
	pix    []byte
	size   image.Point
	stride int
}

func (c *capture) Present(pix []byte, size image.Point, stride int) error {
	c.pix = make([]byte, len(pix))
	copy(c.pix, pix)
	c.size = size
	c.stride = stride
	return nil
}

func TestPresentation(t *testing.T) {
	top, bottom, topColor, _ := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	spec := &screen.Spec{Layout: screen.TopBottom}
	spec.Compute()

	pres := &capture{}
	st := input.State{Touch: image.Point{128, 96}, CursorVisible: true}
	test.ExpectedSuccess(t, rend.Render(top, bottom, spec, st, pres))

	test.ExpectedSuccess(t, pres.size == image.Point{256, 384})
	test.Equate(t, pres.stride, 256*4)

	// delivered pixels have red and blue swapped and are fully opaque
	test.Equate(t, pres.pix[0], int(topColor.B))
	test.Equate(t, pres.pix[1], int(topColor.G))
	test.Equate(t, pres.pix[2], int(topColor.R))
	test.Equate(t, pres.pix[3], 0xff)

	// the marker was drawn over the bottom screen. the touch point maps to
	// (128, 288) in the output buffer and the marker's fill is white
	i := 288*pres.stride + 128*4
	test.Equate(t, pres.pix[i], 0xff)
	test.Equate(t, pres.pix[i+1], 0xff)
	test.Equate(t, pres.pix[i+2], 0xff)
}

func TestCursorSuppressed(t *testing.T) {
	top, bottom, _, _ := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	// the marker is never drawn in the top-only layout, visible or not
	spec := &screen.Spec{Layout: screen.TopOnly}
	spec.Compute()

	pres := &capture{}
	st := input.State{Touch: image.Point{128, 96}, CursorVisible: true}
	test.ExpectedSuccess(t, rend.Render(top, bottom, spec, st, pres))

	white, _ := countCursorPixels(rend.Buffer(), image.Rectangle{Max: rend.Buffer().Size()})
	test.Equate(t, white, 0)
}

func TestMagnifiedCursor(t *testing.T) {
	top, bottom, _, _ := testScreens()
	rend := screen.NewRenderer(screen.FilterNearest, 2)

	spec := &screen.Spec{Layout: screen.LargescreenBottom, Ratio: 3}
	spec.Compute()

	pres := &capture{}
	st := input.State{Touch: image.Point{128, 96}, CursorVisible: true}
	test.ExpectedSuccess(t, rend.Render(top, bottom, spec, st, pres))

	// footprint scales with the magnification ratio. counted only over the
	// magnified region; the cleared parts of the buffer are also black
	white, black := countCursorPixels(rend.Buffer(), image.Rect(0, 0, 768, 576))
	test.Equate(t, white, 9*3*3)
	test.Equate(t, black, 12*3*3)
}
