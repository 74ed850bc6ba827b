package sdl

import (
	"unsafe"

	"github.com/bscheibe/Parallel-game-of-life/util"
	"github.com/veandco/go-sdl2/sdl"
)

// Smallest edge of the window in screen pixels
const minWindowSize = 512

type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte
}

// NewWindow opens a window with one texture pixel per cell, scaled up so
// small boards remain visible.
func NewWindow(width, height int32) *Window {
	err := sdl.Init(sdl.INIT_EVERYTHING)
	util.Check(err)

	scale := int32(1)
	if edge := max(width, height); edge < minWindowSize {
		scale = minWindowSize / edge
	}

	window, err := sdl.CreateWindow("GOL GUI", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width*scale, height*scale, sdl.WINDOW_SHOWN)
	util.Check(err)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	util.Check(err)
	err = renderer.SetLogicalSize(width, height)
	util.Check(err)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, width, height)
	util.Check(err)

	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, width*height*4),
	}
}

func (w *Window) Destroy() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

// SetPixel paints one cell white when alive and black otherwise
func (w *Window) SetPixel(x, y int, alive bool) {
	value := byte(0)
	if alive {
		value = 0xFF
	}
	offset := (y*int(w.Width) + x) * 4
	w.pixels[offset+0] = value
	w.pixels[offset+1] = value
	w.pixels[offset+2] = value
	w.pixels[offset+3] = 0xFF
}

func (w *Window) RenderFrame() {
	err := w.texture.Update(nil, unsafe.Pointer(&w.pixels[0]), int(w.Width)*4)
	util.Check(err)
	err = w.renderer.Clear()
	util.Check(err)
	err = w.renderer.Copy(w.texture, nil, nil)
	util.Check(err)
	w.renderer.Present()
}

// Closed drains pending window events and reports whether the user asked to
// close the window.
func (w *Window) Closed() bool {
	closed := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			closed = true
		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED && (e.Keysym.Sym == sdl.K_q || e.Keysym.Sym == sdl.K_ESCAPE) {
				closed = true
			}
		}
	}
	return closed
}
