package view

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/aseforge/pkg/atlas"
)

// Viewer displays a compiled atlas texture in a window. The texture is
// blitted through a read framebuffer, so no shader pipeline is needed.
type Viewer struct {
	window  *Window
	store   *GLStore
	texture atlas.TextureID
	readFBO uint32
	scale   int
	running bool
}

// NewViewer creates the window, initializes OpenGL and prepares the
// read framebuffer used for blitting.
func NewViewer(cfg Config) (*Viewer, error) {
	v := &Viewer{
		scale: 1,
	}

	var err error
	v.window, err = New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.GenFramebuffers(1, &v.readFBO)
	v.store = NewGLStore()

	return v, nil
}

// Store returns the GPU texture store. Compile into this store before
// calling Show.
func (v *Viewer) Store() *GLStore {
	return v.store
}

// Show sets the texture to display.
func (v *Viewer) Show(id atlas.TextureID) {
	v.texture = id
}

// Run drives the event loop until the window is closed or ESC is
// pressed. Plus/minus adjust the integer zoom.
func (v *Viewer) Run() error {
	v.running = true

	slog.Info("starting viewer loop")
	for v.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				v.running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					v.running = false
				case sdl.K_EQUALS, sdl.K_PLUS, sdl.K_KP_PLUS:
					if v.scale < 16 {
						v.scale++
					}
				case sdl.K_MINUS, sdl.K_KP_MINUS:
					if v.scale > 1 {
						v.scale--
					}
				}
			}
		}

		if err := v.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.window.SwapBuffers()

		sdl.Delay(16)
	}

	return nil
}

// render clears the backbuffer and blits the atlas texture centered at
// the current zoom.
func (v *Viewer) render() error {
	winW, winH := v.window.GetSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(winW), int32(winH))
	gl.ClearColor(0.16, 0.16, 0.18, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	texW, texH, ok := v.store.Size(v.texture)
	if !ok {
		return fmt.Errorf("no texture to display")
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, v.readFBO)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(v.texture), 0)
	if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
		return fmt.Errorf("read framebuffer incomplete: 0x%x", status)
	}

	dstW := texW * v.scale
	dstH := texH * v.scale
	dstX := (winW - dstW) / 2
	dstY := (winH - dstH) / 2

	// Flip vertically: atlas rows are top-down, GL origin is bottom-left
	gl.BlitFramebuffer(
		0, int32(texH), int32(texW), 0,
		int32(dstX), int32(dstY), int32(dstX+dstW), int32(dstY+dstH),
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return nil
}

// Close releases GL resources and destroys the window.
func (v *Viewer) Close() {
	slog.Info("closing viewer")

	if v.readFBO != 0 {
		gl.DeleteFramebuffers(1, &v.readFBO)
		v.readFBO = 0
	}
	if v.store != nil {
		v.store.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
