package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"water-engine/core"
	"water-engine/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

type textureInfo struct {
	width  int32
	height int32
}

type targetInfo struct {
	depthRBO uint32
	width    int32
	height   int32
}

// Device is the OpenGL graphics backend. Handles map straight onto GL object
// names: a TextureID is a texture name, a TargetID is a framebuffer name
// (0 being the default framebuffer, matching core.TargetBackBuffer), and a
// ViewID is the texture name again since GL samples textures directly.
type Device struct {
	window *core.Window

	programs [core.ProgramCount]uint32
	perFrame uint32 // UBO at binding point 0
	perModel uint32 // UBO at binding point 1

	textures map[core.TextureID]textureInfo
	targets  map[core.TargetID]targetInfo

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// NewDevice initialises OpenGL, compiles every shader program, and creates
// the uniform buffers. Must be called after the window context is current.
func NewDevice(window *core.Window) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	d := &Device{
		window:    window,
		textures:  make(map[core.TextureID]textureInfo),
		targets:   make(map[core.TargetID]targetInfo),
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}

	for p := core.Program(0); p < core.ProgramCount; p++ {
		src := programSources[p]
		prog, err := newProgram(src.vert, src.frag)
		if err != nil {
			d.Destroy()
			return nil, fmt.Errorf("%s shader compile: %w", p, err)
		}
		d.programs[p] = prog
	}

	d.perFrame = newUniformBuffer(int(unsafe.Sizeof(core.FrameUniforms{})), 0)
	d.perModel = newUniformBuffer(int(unsafe.Sizeof(core.ModelUniforms{})), 1)

	// Wire each program's uniform blocks to the shared binding points and
	// its samplers to the fixed texture slots.
	samplers := map[string]int32{
		"diffuseMap":           int32(core.SlotDiffuse),
		"waterNormalHeightMap": int32(core.SlotWaterNormal),
		"waterHeightMap":       int32(core.SlotWaterHeight),
		"refractionMap":        int32(core.SlotRefraction),
		"reflectionMap":        int32(core.SlotReflection),
	}
	for _, prog := range d.programs {
		bindUniformBlock(prog, "PerFrame\x00", 0)
		bindUniformBlock(prog, "PerModel\x00", 1)

		gl.UseProgram(prog)
		for name, slot := range samplers {
			loc := gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
			if loc >= 0 {
				gl.Uniform1i(loc, slot)
			}
		}
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	// Scene cameras face along right x up, the mirror of view space's -z,
	// which mirrors every triangle's window winding: front faces are
	// clockwise.
	gl.FrontFace(gl.CW)

	return d, nil
}

func newUniformBuffer(size int, bindingPoint uint32) uint32 {
	var ubo uint32
	gl.GenBuffers(1, &ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindingPoint, ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return ubo
}

func bindUniformBlock(prog uint32, name string, bindingPoint uint32) {
	idx := gl.GetUniformBlockIndex(prog, gl.Str(name))
	if idx != gl.INVALID_INDEX {
		gl.UniformBlockBinding(prog, idx, bindingPoint)
	}
}

// ── Resource creation ─────────────────────────────────────────────────────────

func (d *Device) CreateTexture(width, height int, format core.TextureFormat) (core.TextureID, error) {
	var internalFormat int32
	var pixelFormat, pixelType uint32
	switch format {
	case core.FormatRGBA8:
		internalFormat, pixelFormat, pixelType = gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	case core.FormatR32F:
		internalFormat, pixelFormat, pixelType = gl.R32F, gl.RED, gl.FLOAT
	default:
		return 0, fmt.Errorf("unsupported texture format %v", format)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(width), int32(height), 0, pixelFormat, pixelType, nil)
	// Render textures are sampled at screen coordinates: no mips, clamped.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return 0, fmt.Errorf("texture allocation failed: gl error 0x%X", glErr)
	}

	tex := core.TextureID(id)
	d.textures[tex] = textureInfo{width: int32(width), height: int32(height)}
	return tex, nil
}

func (d *Device) CreateRenderTarget(tex core.TextureID) (core.TargetID, error) {
	info, ok := d.textures[tex]
	if !ok {
		return 0, fmt.Errorf("unknown texture %d", tex)
	}

	var depthRBO uint32
	gl.GenRenderbuffers(1, &depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, info.width, info.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(tex), 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depthRBO)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fbo)
		gl.DeleteRenderbuffers(1, &depthRBO)
		return 0, fmt.Errorf("framebuffer incomplete: status=0x%X", status)
	}

	target := core.TargetID(fbo)
	d.targets[target] = targetInfo{depthRBO: depthRBO, width: info.width, height: info.height}
	return target, nil
}

// CreateShaderView returns a readable binding for tex. GL samples textures
// directly, so the view is the texture name itself.
func (d *Device) CreateShaderView(tex core.TextureID) (core.ViewID, error) {
	if _, ok := d.textures[tex]; !ok {
		return 0, fmt.Errorf("unknown texture %d", tex)
	}
	return core.ViewID(tex), nil
}

func (d *Device) ReleaseTexture(tex core.TextureID) {
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
	delete(d.textures, tex)
}

func (d *Device) ReleaseRenderTarget(target core.TargetID) {
	info, ok := d.targets[target]
	if !ok {
		return
	}
	fbo := uint32(target)
	gl.DeleteFramebuffers(1, &fbo)
	gl.DeleteRenderbuffers(1, &info.depthRBO)
	delete(d.targets, target)
}

// ReleaseShaderView is bookkeeping only; the texture release frees the GL
// object.
func (d *Device) ReleaseShaderView(view core.ViewID) {}

// ── State ─────────────────────────────────────────────────────────────────────

func (d *Device) SetRenderTarget(target core.TargetID) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(target))
	if target == core.TargetBackBuffer {
		w, h := d.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		return
	}
	if info, ok := d.targets[target]; ok {
		gl.Viewport(0, 0, info.width, info.height)
	}
}

func (d *Device) ClearColor(colour core.Color) {
	gl.ClearColor(colour.R, colour.G, colour.B, colour.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) ClearDepth() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (d *Device) SetBlend(mode core.BlendMode) {
	switch mode {
	case core.BlendNone:
		gl.Disable(gl.BLEND)
	case core.BlendAdditive:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)
	}
}

func (d *Device) SetDepthTest(mode core.DepthMode) {
	switch mode {
	case core.DepthReadWrite:
		gl.DepthMask(true)
	case core.DepthReadOnly:
		gl.DepthMask(false)
	}
}

func (d *Device) SetCull(mode core.CullMode) {
	switch mode {
	case core.CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case core.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case core.CullNone:
		gl.Disable(gl.CULL_FACE)
	}
}

func (d *Device) UseProgram(program core.Program) {
	gl.UseProgram(d.programs[program])
}

func (d *Device) BindShaderView(slot core.TextureSlot, view core.ViewID) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, uint32(view))
}

func (d *Device) UnbindShaderView(slot core.TextureSlot) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ── Uniforms ──────────────────────────────────────────────────────────────────

func (d *Device) PushFrameUniforms(u *core.FrameUniforms) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.perFrame)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, int(unsafe.Sizeof(*u)), unsafe.Pointer(u))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (d *Device) PushModelUniforms(u *core.ModelUniforms) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.perModel)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, int(unsafe.Sizeof(*u)), unsafe.Pointer(u))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// ── Draw / present ────────────────────────────────────────────────────────────

func (d *Device) Draw(mesh *scene.Mesh) {
	gpu := d.ensureUploaded(mesh)
	if gpu == nil {
		return
	}
	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (d *Device) Present() {
	d.window.SwapBuffers()
}

// ensureUploaded uploads vertex/index data if not already done.
func (d *Device) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := d.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride,
		gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride,
		gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride,
		gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	d.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// releaseMesh frees GPU buffers for the given mesh.
func (d *Device) releaseMesh(mesh *scene.Mesh) {
	if gpu, ok := d.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(d.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases every GPU resource the device still tracks.
func (d *Device) Destroy() {
	for mesh := range d.gpuMeshes {
		d.releaseMesh(mesh)
	}
	for _, prog := range d.programs {
		if prog != 0 {
			gl.DeleteProgram(prog)
		}
	}
	if d.perFrame != 0 {
		gl.DeleteBuffers(1, &d.perFrame)
	}
	if d.perModel != 0 {
		gl.DeleteBuffers(1, &d.perModel)
	}
}
