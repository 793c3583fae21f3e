package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Water Rendering",
		Resizable: true,
		VSync:     true,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// SetVSync locks presentation to the monitor refresh rate when enabled.
func (w *Window) SetVSync(enabled bool) {
	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeySpace   = int(glfw.KeySpace)
	KeyComma   = int(glfw.KeyComma)
	KeyMinus   = int(glfw.KeyMinus)
	KeyPeriod  = int(glfw.KeyPeriod)
	KeyEqual   = int(glfw.KeyEqual)
	Key0       = int(glfw.Key0)
	Key1       = int(glfw.Key1)
	Key2       = int(glfw.Key2)
	Key3       = int(glfw.Key3)
	Key4       = int(glfw.Key4)
	Key5       = int(glfw.Key5)
	Key6       = int(glfw.Key6)
	Key7       = int(glfw.Key7)
	Key8       = int(glfw.Key8)
	Key9       = int(glfw.Key9)
	KeyA       = int(glfw.KeyA)
	KeyB       = int(glfw.KeyB)
	KeyC       = int(glfw.KeyC)
	KeyD       = int(glfw.KeyD)
	KeyE       = int(glfw.KeyE)
	KeyF       = int(glfw.KeyF)
	KeyG       = int(glfw.KeyG)
	KeyH       = int(glfw.KeyH)
	KeyI       = int(glfw.KeyI)
	KeyJ       = int(glfw.KeyJ)
	KeyK       = int(glfw.KeyK)
	KeyL       = int(glfw.KeyL)
	KeyM       = int(glfw.KeyM)
	KeyN       = int(glfw.KeyN)
	KeyO       = int(glfw.KeyO)
	KeyP       = int(glfw.KeyP)
	KeyQ       = int(glfw.KeyQ)
	KeyR       = int(glfw.KeyR)
	KeyS       = int(glfw.KeyS)
	KeyT       = int(glfw.KeyT)
	KeyU       = int(glfw.KeyU)
	KeyV       = int(glfw.KeyV)
	KeyW       = int(glfw.KeyW)
	KeyX       = int(glfw.KeyX)
	KeyY       = int(glfw.KeyY)
	KeyZ       = int(glfw.KeyZ)
	KeyEscape  = int(glfw.KeyEscape)
	KeyEnter   = int(glfw.KeyEnter)
	KeyRight   = int(glfw.KeyRight)
	KeyLeft    = int(glfw.KeyLeft)
	KeyDown    = int(glfw.KeyDown)
	KeyUp      = int(glfw.KeyUp)
	KeyNone    = -1
	keyMax     = int(glfw.KeyMenu)
)
