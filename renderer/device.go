package renderer

import (
	"water-engine/core"
	"water-engine/scene"
)

// Device is the GPU execution boundary. The engine and pass sequencer issue
// every GPU operation through it, so the frame logic can run against the real
// OpenGL backend or against a recording fake in tests.
//
// Resource creation returns an error; per-frame calls do not. Once init has
// succeeded every handle passed during a frame is valid, and a draw-time GPU
// failure has no useful recovery at this layer.
type Device interface {
	// CreateTexture allocates a GPU texture usable as both a render target
	// attachment and a shader input.
	CreateTexture(width, height int, format core.TextureFormat) (core.TextureID, error)
	// CreateRenderTarget makes tex renderable. The backend attaches a depth
	// buffer of matching size.
	CreateRenderTarget(tex core.TextureID) (core.TargetID, error)
	// CreateShaderView makes tex readable from shaders via BindShaderView.
	CreateShaderView(tex core.TextureID) (core.ViewID, error)

	// Each Release must be called exactly once per created handle.
	ReleaseTexture(tex core.TextureID)
	ReleaseRenderTarget(target core.TargetID)
	ReleaseShaderView(view core.ViewID)

	// LoadTexture reads an image file and uploads it, returning both handles
	// so the caller can release the texture later.
	LoadTexture(path string) (core.TextureID, core.ViewID, error)

	SetRenderTarget(target core.TargetID) // core.TargetBackBuffer for the window
	ClearColor(colour core.Color)
	ClearDepth()

	SetBlend(mode core.BlendMode)
	SetDepthTest(mode core.DepthMode)
	SetCull(mode core.CullMode)

	UseProgram(program core.Program)

	// BindShaderView binds view for shader reads at slot; UnbindShaderView
	// detaches the slot so its texture can become a render target again.
	BindShaderView(slot core.TextureSlot, view core.ViewID)
	UnbindShaderView(slot core.TextureSlot)

	PushFrameUniforms(u *core.FrameUniforms)
	PushModelUniforms(u *core.ModelUniforms)

	// Draw renders the mesh with the current program and state, uploading
	// the geometry on first use.
	Draw(mesh *scene.Mesh)

	// Present swaps the back buffer to the window.
	Present()
}
