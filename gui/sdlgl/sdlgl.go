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

// Package sdlgl presents composited frames through an SDL window with an
// OpenGL 3.2 context. Unlike the sdlpresent package, the pointer marker is
// not expected to be in the frame: it is applied by a fragment shader, the
// GPU equivalent of screen.DrawCursor().
package sdlgl

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/gui/sdlgl/shaders"
	"github.com/jetsetilly/gopherds/logger"
	"github.com/jetsetilly/gopherds/screen"
)

// the window title
const title = "GopherDS"

// Window is an SDL/OpenGL implementation of the screen.Presenter interface.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext

	shader shader

	vao uint32
	vbo uint32
	ubo uint32

	// the texture the composited frame is uploaded to, and the size of the
	// most recent upload. a size change means the texture storage must be
	// respecified
	texture uint32
	size    image.Point

	// window scaling factor
	scale int

	// uniform block state for the next Present(). written by SetUniforms()
	uniforms uniformBlock
}

// quad vertices: interleaved position (NDC) and texture coordinate. the
// first row of the frame is the top of the image
var quad = []float32{
	-1.0, 1.0, 0.0, 0.0,
	-1.0, -1.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 0.0,
	1.0, -1.0, 1.0, 1.0,
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(scale int) (*Window, error) {
	w := &Window{scale: scale}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlgl: %v", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	// window size is set on the first Present(), when the layout's buffer
	// size is known
	w.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(screen.Width*scale), int32(screen.Height*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf("sdlgl: %v", err)
	}

	w.glContext, err = w.window.GLCreateContext()
	if err != nil {
		return nil, curated.Errorf("sdlgl: %v", err)
	}

	err = gl.Init()
	if err != nil {
		return nil, curated.Errorf("sdlgl: %v", err)
	}

	logger.Logf(logger.Allow, "sdlgl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "sdlgl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "sdlgl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	w.shader.createProgram(string(shaders.ScreenVertexShader), string(shaders.ScreenFragShader))
	w.setupScreen()

	return w, nil
}

// create the vertex, uniform and texture state used to draw the frame.
func (w *Window) setupScreen() {
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(w.shader.position))
	gl.VertexAttribPointerWithOffset(uint32(w.shader.position), 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(uint32(w.shader.uv))
	gl.VertexAttribPointerWithOffset(uint32(w.shader.uv), 2, gl.FLOAT, false, 16, 8)

	gl.GenBuffers(1, &w.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, w.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, uniformBlockSize, nil, gl.DYNAMIC_DRAW)

	blockIdx := gl.GetUniformBlockIndex(w.shader.handle, gl.Str("Config"+"\x00"))
	gl.UniformBlockBinding(w.shader.handle, blockIdx, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, 0, w.ubo)

	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// SetUniforms prepares the uniform block for the next Present(). The cursor
// rectangle is in coordinates normalized to the frame (see
// screen.CursorRect()).
func (w *Window) SetUniforms(size image.Point, scale3D uint32, filter screen.Filter, cursorRect [4]float32, cursorVisible bool) {
	w.uniforms.OutputSize = [2]float32{float32(size.X), float32(size.Y)}
	w.uniforms.Scale3D = scale3D
	w.uniforms.FilterMode = uint32(filter)
	w.uniforms.CursorRect = cursorRect
	if cursorVisible {
		w.uniforms.CursorVisible = 1
	} else {
		w.uniforms.CursorVisible = 0
	}
}

// Present implements the screen.Presenter interface. The pixel data is in
// the host channel order; the shader reverses the channels for display.
func (w *Window) Present(pix []byte, size image.Point, stride int) error {
	if size != w.size {
		w.resize(size)
	}

	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(stride/screen.Depth))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(size.X), int32(size.Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.BindBuffer(gl.UNIFORM_BUFFER, w.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, uniformBlockSize, unsafe.Pointer(&w.uniforms))

	gl.Viewport(0, 0, int32(size.X*w.scale), int32(size.Y*w.scale))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.shader.handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.Uniform1i(w.shader.texture, 0)

	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	w.window.GLSwap()

	return nil
}

// respecify texture storage and fit the window to a new frame size.
func (w *Window) resize(size image.Point) {
	logger.Logf(logger.Allow, "sdlgl", "resize: %dx%d", size.X, size.Y)

	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	w.window.SetSize(int32(size.X*w.scale), int32(size.Y*w.scale))
	w.window.Show()

	w.size = size
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

// Destroy the window and its OpenGL state.
func (w *Window) Destroy() {
	w.shader.destroy()
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteBuffers(1, &w.ubo)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteTextures(1, &w.texture)
	sdl.GLDeleteContext(w.glContext)
	w.window.Destroy()
	sdl.Quit()
}
