// SPDX-License-Identifier: GPL-2.0-or-later

// package window owns the SDL window and its OpenGL context.
package window

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"vrplay/cvar"
	"vrplay/cvars"
)

var (
	window      *sdl.Window
	context     sdl.GLContext
	skipUpdates bool
)

// DrawableSize returns the GL drawable size, which can differ from the
// window size on high dpi displays.
func DrawableSize() (int32, int32) {
	w, h := window.GLGetDrawableSize()
	return w, h
}

func Shutdown() {
	if context != nil {
		sdl.GLDeleteContext(context)
		context = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
	}
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

// applyVSync pushes the cvar to the driver. The driver may refuse,
// compositors without vsync support do.
func applyVSync() {
	want := cvars.VideoVerticalSync.Bool()
	if want {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
	if VSync() != want {
		log.Printf("window: vsync %v not honored by driver", want)
	}
}

// SetMode creates the window and GL context on first use, with
// progressively relaxed GL attributes when creation fails. There is no
// degraded path without a GL context; the error is fatal to startup.
func SetMode(width, height int32, fullscreen bool) error {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	// the whole pipeline runs without depth testing
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 0)

	if window == nil {
		flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_HIDDEN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
		if cvars.VideoBorderLess.Bool() {
			flags |= sdl.WINDOW_BORDERLESS
		}
		w, err := sdl.CreateWindow("vrplay", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
		if err != nil {
			sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 0)
			w, err = sdl.CreateWindow("vrplay", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
		}
		if err != nil {
			return errors.Wrap(err, "create window")
		}
		window = w
	}
	window.SetSize(width, height)
	window.SetPosition(sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED)
	if fullscreen {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			return errors.Wrap(err, "set fullscreen")
		}
	}

	window.Show()

	if context == nil {
		c, err := window.GLCreateContext()
		if err != nil {
			return errors.Wrap(err, "create GL context")
		}
		context = c
		if err := gl.Init(); err != nil {
			return errors.Wrap(err, "init gl")
		}
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}
	cvars.VideoVerticalSync.SetCallback(func(*cvar.Cvar) { applyVSync() })
	applyVSync()
	return nil
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Panicf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	} else {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

func SetSkipUpdates(skip bool) {
	skipUpdates = skip
}

func EndRendering() {
	if skipUpdates {
		return
	}
	window.GLSwap()
}
