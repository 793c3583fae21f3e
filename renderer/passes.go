package renderer

import (
	"water-engine/core"
	"water-engine/math"
	"water-engine/scene"
)

// tintWhite leaves the sampled texture colour unchanged.
var tintWhite = math.Vec3One

// pipelineState is the trio of output-merger/rasterizer states the sequencer
// switches between. The engine tracks the current state so scoped overrides
// only issue the device calls that actually change something.
type pipelineState struct {
	blend core.BlendMode
	depth core.DepthMode
	cull  core.CullMode
}

var (
	stateSky = pipelineState{
		blend: core.BlendNone, depth: core.DepthReadWrite, cull: core.CullNone,
	}
	// Light markers: additive so overlapping flares brighten, read-only depth
	// so they never occlude, no culling so the quads face both ways.
	stateMarkers = pipelineState{
		blend: core.BlendAdditive, depth: core.DepthReadOnly, cull: core.CullNone,
	}
)

// RenderScene draws one frame: water height, refraction, and reflection into
// the off-screen targets, then the main pass to the back buffer, then present.
func (e *Engine) RenderScene() {
	s := e.Scene

	e.stageFrameUniforms()

	// Known state at frame start.
	e.dev.SetBlend(core.BlendNone)
	e.dev.SetDepthTest(core.DepthReadWrite)
	e.dev.SetCull(core.CullBack)
	e.state = pipelineState{core.BlendNone, core.DepthReadWrite, core.CullBack}

	// The water normal/height map feeds the height pass and the water
	// surface, so it stays bound for the whole frame.
	e.dev.BindShaderView(core.SlotWaterNormal, s.WaterNormalMap)
	e.selectCamera(s.Camera)

	e.renderHeightPass()
	e.renderRefractionPass()
	e.renderReflectionPass()

	// The height texture becomes a render target again next frame; detach it
	// before the GPU could see it bound on both ends.
	e.dev.UnbindShaderView(core.SlotWaterHeight)

	e.renderMainPass()
	e.dev.Present()
}

// stageFrameUniforms fills the camera-independent fields of the frame block.
// selectCamera fills the rest and pushes.
func (e *Engine) stageFrameUniforms() {
	s := e.Scene
	for i, l := range s.Lights {
		e.frame.Lights[i].Position = l.Model.Position()
		e.frame.Lights[i].Colour = l.ScaledColour()
	}
	e.frame.AmbientColour = s.AmbientColour
	e.frame.SpecularPower = s.SpecularPower
	e.frame.ViewportWidth = float32(e.width)
	e.frame.ViewportHeight = float32(e.height)
	e.frame.WaterPlaneY = s.WaterPlaneY()
	e.frame.WaveScale = s.WaveScale
	e.frame.WaterMovement = s.WaterMovement
}

// selectCamera loads the camera's matrices into the frame block and pushes
// it. Called again whenever the camera changes mid-frame (the reflection
// mirror and its restore).
func (e *Engine) selectCamera(cam *scene.Camera) {
	e.frame.CameraMatrix = cam.WorldMatrix()
	e.frame.ViewMatrix = cam.ViewMatrix()
	e.frame.ProjectionMatrix = cam.ProjectionMatrix()
	e.frame.ViewProjectionMatrix = cam.ViewProjectionMatrix()
	e.frame.CameraPosition = cam.Position
	e.dev.PushFrameUniforms(&e.frame)
}

// renderHeightPass writes the displaced water surface's world-space Y into
// the single-channel height target.
func (e *Engine) renderHeightPass() {
	e.dev.SetRenderTarget(e.Targets.Height.Target)
	e.dev.ClearColor(core.Color{})
	e.dev.ClearDepth()
	e.dev.UseProgram(core.ProgramWaterHeight)
	e.drawModel(e.Scene.Water, tintWhite)
}

// renderRefractionPass draws the scene as seen through the water: the
// refracted programs read the height target to discard anything above the
// surface.
func (e *Engine) renderRefractionPass() {
	e.dev.SetRenderTarget(e.Targets.Refraction.Target)
	e.dev.ClearColor(e.Scene.Background)
	e.dev.ClearDepth()
	e.dev.BindShaderView(core.SlotWaterHeight, e.Targets.Height.View)
	e.drawLitModels(core.ProgramPixelLightingRefracted)
	e.drawUnlitModels(core.ProgramTintedTextureRefracted)
}

// renderReflectionPass mirrors the camera through the water plane and draws
// the scene above the surface. Mirroring flips triangle winding, so front
// faces are culled instead of back faces. The camera mutation is a critical
// section: snapshot, mirror, draw, restore, re-select.
func (e *Engine) renderReflectionPass() {
	cam := e.Scene.Camera
	saved := cam.State()
	cam.MirrorAboutPlane(e.Scene.WaterPlaneY())
	e.selectCamera(cam)
	e.setCull(core.CullFront)

	e.dev.SetRenderTarget(e.Targets.Reflection.Target)
	e.dev.ClearColor(e.Scene.Background)
	e.dev.ClearDepth()
	e.drawLitModels(core.ProgramPixelLightingReflected)
	e.drawUnlitModels(core.ProgramTintedTextureReflected)

	cam.Restore(saved)
	e.selectCamera(cam)
	e.setCull(core.CullBack)
}

// renderMainPass draws to the back buffer: the lit scene, then the water
// surface combining the refraction and reflection targets, then the unlit
// group so the blended markers draw over the water.
func (e *Engine) renderMainPass() {
	e.dev.SetRenderTarget(core.TargetBackBuffer)
	e.dev.ClearColor(e.Scene.Background)
	e.dev.ClearDepth()

	e.drawLitModels(core.ProgramPixelLighting)

	e.dev.UseProgram(core.ProgramWaterSurface)
	e.dev.BindShaderView(core.SlotRefraction, e.Targets.Refraction.View)
	e.dev.BindShaderView(core.SlotReflection, e.Targets.Reflection.View)
	e.drawModel(e.Scene.Water, tintWhite)
	e.dev.UnbindShaderView(core.SlotReflection)
	e.dev.UnbindShaderView(core.SlotRefraction)

	e.drawUnlitModels(core.ProgramTintedTexture)
}

// drawLitModels draws the ground, troll, and crate with the given lighting
// program, binding each model's diffuse map to slot 0.
func (e *Engine) drawLitModels(program core.Program) {
	s := e.Scene
	e.dev.UseProgram(program)
	for _, m := range []*scene.Model{s.Ground, s.Troll, s.Crate} {
		e.dev.BindShaderView(core.SlotDiffuse, m.Texture)
		e.drawModel(m, tintWhite)
	}
}

// drawUnlitModels draws the sky, then the light markers, with the given
// tinted-texture program. Each group runs inside its own state scope.
func (e *Engine) drawUnlitModels(program core.Program) {
	s := e.Scene
	e.dev.UseProgram(program)

	restore := e.applyState(stateSky)
	e.dev.BindShaderView(core.SlotDiffuse, s.Sky.Texture)
	e.drawModel(s.Sky, tintWhite)
	restore()

	restore = e.applyState(stateMarkers)
	for _, l := range s.Lights {
		e.dev.BindShaderView(core.SlotDiffuse, l.Model.Texture)
		e.drawModel(l.Model, l.Colour)
	}
	restore()
}

// drawModel pushes the model block and issues the draw. Bone matrices stay
// at identity; the layout reserves them for skinned meshes.
func (e *Engine) drawModel(m *scene.Model, tint math.Vec3) {
	e.model.WorldMatrix = m.WorldMatrix()
	e.model.ObjectColour = tint
	e.dev.PushModelUniforms(&e.model)
	e.dev.Draw(m.Mesh)
}

// applyState switches to s and returns a func restoring the previous state.
// Only fields that differ produce device calls.
func (e *Engine) applyState(s pipelineState) func() {
	prev := e.state
	e.setPipelineState(s)
	return func() { e.setPipelineState(prev) }
}

func (e *Engine) setPipelineState(s pipelineState) {
	if s.blend != e.state.blend {
		e.dev.SetBlend(s.blend)
		e.state.blend = s.blend
	}
	if s.depth != e.state.depth {
		e.dev.SetDepthTest(s.depth)
		e.state.depth = s.depth
	}
	e.setCull(s.cull)
}

func (e *Engine) setCull(c core.CullMode) {
	if c != e.state.cull {
		e.dev.SetCull(c)
		e.state.cull = c
	}
}
