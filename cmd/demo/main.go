package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"water-engine/core"
	"water-engine/internal/opengl"
	"water-engine/renderer"
)

const titleUpdateInterval = 500 * time.Millisecond

func main() {
	assetDir := flag.String("assets", "assets", "directory containing meshes and textures")
	flag.Parse()

	if err := run(*assetDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(assetDir string) error {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev, err := opengl.NewDevice(window)
	if err != nil {
		return err
	}
	defer dev.Destroy()

	fbWidth, fbHeight := window.GetFramebufferSize()
	engine, err := renderer.New(dev, fbWidth, fbHeight)
	if err != nil {
		return err
	}
	defer engine.Release()

	if err := engine.InitGeometry(assetDir); err != nil {
		return err
	}
	engine.InitScene()

	input := core.NewInput(window)
	vsync := true

	lastFrame := time.Now()
	lastTitle := lastFrame
	frames := 0

	for !window.ShouldClose() {
		window.PollEvents()
		input.Update()

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		if w, h := window.GetFramebufferSize(); w > 0 && h > 0 {
			if err := engine.Resize(w, h); err != nil {
				return err
			}
		}

		// P toggles the frame-rate lock (vsync).
		if input.KeyHit(core.KeyP) {
			vsync = !vsync
			window.SetVSync(vsync)
		}
		if input.KeyHit(core.KeyEscape) {
			break
		}

		engine.UpdateScene(dt, input)
		engine.RenderScene()

		// Frame diagnostics in the title twice a second.
		frames++
		if elapsed := now.Sub(lastTitle); elapsed >= titleUpdateInterval {
			avg := elapsed.Seconds() / float64(frames)
			window.SetTitle(fmt.Sprintf(
				"Water Rendering - Frame Time: %.2fms, FPS: %.0f",
				avg*1000, 1/avg))
			lastTitle = now
			frames = 0
		}
	}
	return nil
}
