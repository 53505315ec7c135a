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

package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jetsetilly/gopherds/gui/sdlgl"
	"github.com/jetsetilly/gopherds/gui/sdlpresent"
	"github.com/jetsetilly/gopherds/input"
	"github.com/jetsetilly/gopherds/logger"
	"github.com/jetsetilly/gopherds/screen"
)

// layouts the -layout flag understands
var layouts = map[string]screen.Layout{
	"top":                        screen.TopOnly,
	"bottom":                     screen.BottomOnly,
	"top-bottom":                 screen.TopBottom,
	"bottom-top":                 screen.BottomTop,
	"left-right":                 screen.LeftRight,
	"right-left":                 screen.RightLeft,
	"hybrid-top":                 screen.HybridTop,
	"hybrid-bottom":              screen.HybridBottom,
	"flipped-hybrid-top":         screen.FlippedHybridTop,
	"flipped-hybrid-bottom":      screen.FlippedHybridBottom,
	"largescreen-top":            screen.LargescreenTop,
	"largescreen-bottom":         screen.LargescreenBottom,
	"flipped-largescreen-top":    screen.FlippedLargescreenTop,
	"flipped-largescreen-bottom": screen.FlippedLargescreenBottom,
}

func layoutNames() string {
	n := make([]string, 0, len(layouts))
	for k := range layouts {
		n = append(n, k)
	}
	sort.Strings(n)
	return strings.Join(n, ", ")
}

// presenter is the union of the two window types. both implement the
// screen.Presenter interface along with event servicing.
type presenter interface {
	screen.Presenter
	Service() bool
	Destroy()
}

func main() {
	layoutArg := flag.String("layout", "hybrid-top", "screen layout ("+layoutNames()+")")
	ratio := flag.Int("ratio", 3, "magnification ratio for the hybrid and largescreen layouts")
	gap := flag.Int("gap", 0, "blank rows between the screens in the stacked layouts")
	smooth := flag.Bool("smooth", false, "use the smooth filter when magnifying a screen")
	focusedOnly := flag.Bool("focused", false, "hybrid layouts show only the companion screen at native size")
	cursorSize := flag.Int("cursor", 2, "configured size of the pointer marker")
	scale := flag.Int("scale", 2, "window scaling factor")
	useGL := flag.Bool("gl", false, "present through OpenGL with the shader pointer marker")
	cycle := flag.Duration("cycle", 0, "cycle through the layouts at this interval (0 to disable)")
	flag.Parse()

	logger.SetEcho(os.Stderr)

	lay, ok := layouts[*layoutArg]
	if !ok {
		fmt.Printf("* unrecognised layout: %s\n", *layoutArg)
		os.Exit(10)
	}

	err := run(lay, *ratio, *gap, *smooth, *focusedOnly, *cursorSize, *scale, *useGL, *cycle)
	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}
}

func run(lay screen.Layout, ratio int, gap int, smooth bool, focusedOnly bool,
	cursorSize int, scale int, useGL bool, cycle time.Duration) error {

	prf, err := screen.NewPreferences()
	if err != nil {
		return err
	}
	err = prf.HybridRatio.Set(ratio)
	if err != nil {
		return err
	}
	err = prf.ScreenGap.Set(gap)
	if err != nil {
		return err
	}
	err = prf.Smooth.Set(smooth)
	if err != nil {
		return err
	}
	err = prf.CursorSize.Set(cursorSize)
	if err != nil {
		return err
	}
	err = prf.SideBoth.Set(!focusedOnly)
	if err != nil {
		return err
	}

	spec := &screen.Spec{Layout: lay}
	prf.ApplyTo(spec)

	rnd := screen.NewRenderer(prf.Filter(), prf.CursorSize.Get().(int))

	// a preference change recomputes the geometry and updates the renderer
	prf.SetOnChange(func() error {
		prf.ApplyTo(spec)
		rnd.SetFilter(prf.Filter())
		rnd.SetCursorSize(prf.CursorSize.Get().(int))
		return nil
	})

	var pres presenter
	var glWindow *sdlgl.Window

	if useGL {
		glWindow, err = sdlgl.NewWindow(scale)
		if err != nil {
			return err
		}
		pres = glWindow
	} else {
		pres, err = sdlpresent.NewWindow(scale)
		if err != nil {
			return err
		}
	}
	defer pres.Destroy()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	top := image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height))
	bottom := image.NewRGBA(image.Rect(0, 0, screen.Width, screen.Height))

	logger.Logf(logger.Allow, "gopherds", "layout: %s", spec.Layout)

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	var lastCycle time.Time
	var frame int

	for pres.Service() {
		select {
		case <-intChan:
			return nil
		case <-tick.C:
		}

		if cycle > 0 && time.Since(lastCycle) > cycle {
			spec.Layout = spec.Layout.Next()
			spec.Compute()
			lastCycle = time.Now()
			logger.Logf(logger.Allow, "gopherds", "layout: %s", spec.Layout)
		}

		drawTestCard(top, bottom, frame)
		st := testTouch(frame)

		if useGL {
			// the pointer marker is applied by the fragment shader so the
			// frame is delivered without it
			target := spec.TransformTouch(st.Touch)
			glWindow.SetUniforms(spec.BufferSize, uint32(spec.Ratio), prf.Filter(),
				screen.CursorRect(target, prf.CursorSize.Get().(int), spec.CursorScale, spec.BufferSize),
				st.CursorVisible && spec.Layout != screen.TopOnly)
			err = rnd.RenderWithoutCursor(top, bottom, spec, pres)
		} else {
			err = rnd.Render(top, bottom, spec, st, pres)
		}
		if err != nil {
			return err
		}

		frame++
	}

	return nil
}

// drawTestCard fills the two screens with an animated gradient. the top and
// bottom screens use different hue bands so a layout mistake is obvious at a
// glance.
func drawTestCard(top *image.RGBA, bottom *image.RGBA, frame int) {
	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			h := math.Mod(float64(x+frame)/float64(screen.Width)*120.0, 120.0)
			v := 0.4 + 0.6*float64(y)/float64(screen.Height)

			r, g, b := colorful.Hsv(h, 1.0, v).RGB255()
			i := top.PixOffset(x, y)
			top.Pix[i] = r
			top.Pix[i+1] = g
			top.Pix[i+2] = b
			top.Pix[i+3] = 0xff

			r, g, b = colorful.Hsv(h+180.0, 1.0, v).RGB255()
			i = bottom.PixOffset(x, y)
			bottom.Pix[i] = r
			bottom.Pix[i+1] = g
			bottom.Pix[i+2] = b
			bottom.Pix[i+3] = 0xff
		}
	}
}

// testTouch moves the pointer in a slow circle around the bottom screen.
func testTouch(frame int) input.State {
	a := float64(frame) / 120.0
	return input.State{
		Touch: image.Point{
			X: screen.Width/2 + int(100*math.Cos(a)),
			Y: screen.Height/2 + int(70*math.Sin(a)),
		},
		CursorVisible: true,
	}
}
