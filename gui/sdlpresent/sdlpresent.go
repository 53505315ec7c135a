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

// Package sdlpresent presents composited frames through a plain SDL
// renderer. The frame is expected to be complete, pointer marker included;
// compare the sdlgl package which applies the marker on the GPU.
package sdlpresent

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/logger"
	"github.com/jetsetilly/gopherds/screen"
)

// the window title
const title = "GopherDS"

// Window is an SDL implementation of the screen.Presenter interface.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the streaming texture the frame is uploaded to, and the size of the
	// most recent upload. a size change means the texture must be recreated
	texture *sdl.Texture
	size    image.Point

	// window scaling factor
	scale int
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(scale int) (*Window, error) {
	w := &Window{scale: scale}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlpresent: %v", err)
	}

	// window size is set on the first Present(), when the layout's buffer
	// size is known
	w.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(screen.Width*scale), int32(screen.Height*scale),
		sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf("sdlpresent: %v", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdlpresent: %v", err)
	}

	return w, nil
}

// Present implements the screen.Presenter interface. The pixel data is in
// the host's channel order, which on a little-endian machine is what SDL
// calls ARGB8888.
func (w *Window) Present(pix []byte, size image.Point, stride int) error {
	if size != w.size {
		err := w.resize(size)
		if err != nil {
			return err
		}
	}

	err := w.texture.Update(nil, pix, stride)
	if err != nil {
		return curated.Errorf("sdlpresent: %v", err)
	}

	err = w.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlpresent: %v", err)
	}

	err = w.renderer.Copy(w.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlpresent: %v", err)
	}

	w.renderer.Present()

	return nil
}

// recreate the streaming texture and fit the window to a new frame size.
func (w *Window) resize(size image.Point) error {
	logger.Logf(logger.Allow, "sdlpresent", "resize: %dx%d", size.X, size.Y)

	if w.texture != nil {
		_ = w.texture.Destroy()
	}

	var err error
	w.texture, err = w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(size.X), int32(size.Y))
	if err != nil {
		return curated.Errorf("sdlpresent: %v", err)
	}

	w.window.SetSize(int32(size.X*w.scale), int32(size.Y*w.scale))
	w.window.Show()

	w.size = size

	return nil
}

// Service window events. Returns false when the user has asked for the
// window to close.
func (w *Window) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

// Destroy the window.
func (w *Window) Destroy() {
	if w.texture != nil {
		_ = w.texture.Destroy()
	}
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	if w.window != nil {
		_ = w.window.Destroy()
	}
	sdl.Quit()
}
