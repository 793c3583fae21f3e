package renderer

import (
	"fmt"
	gomath "math"
	"path/filepath"

	"water-engine/core"
	"water-engine/math"
	"water-engine/scene"
)

// Water surface extent and tessellation. The grid needs enough vertices for
// the height-map displacement to read as waves.
const (
	waterExtent    float32 = 200
	waterDivisions         = 400
)

// Engine ties the scene to a graphics device: it owns the off-screen target
// set, the loaded meshes and textures, and the per-frame uniform staging.
type Engine struct {
	dev     Device
	width   int
	height  int
	Targets *TargetSet

	// Scene is rebuilt by InitScene; tests may substitute their own.
	Scene *scene.Scene

	meshes struct {
		sky, ground, troll, crate, marker, water *scene.Mesh
	}
	views struct {
		sky, ground, troll, crate, flare, waterNormal core.ViewID
	}
	fileTextures []fileTexture

	frame core.FrameUniforms
	model core.ModelUniforms
	state pipelineState
}

type fileTexture struct {
	tex  core.TextureID
	view core.ViewID
}

// New creates the engine and its render-target set at the given viewport size.
func New(dev Device, width, height int) (*Engine, error) {
	targets, err := NewTargetSet(dev, width, height)
	if err != nil {
		return nil, fmt.Errorf("render targets: %w", err)
	}

	e := &Engine{
		dev:     dev,
		width:   width,
		height:  height,
		Targets: targets,
	}
	for i := range e.model.BoneMatrices {
		e.model.BoneMatrices[i] = math.Mat4Identity()
	}
	return e, nil
}

// InitGeometry loads every mesh and file texture from assetDir and builds the
// water grid. All-or-nothing: any failure leaves nothing usable, and Release
// still cleans up whatever was uploaded.
func (e *Engine) InitGeometry(assetDir string) error {
	meshFiles := []struct {
		out  **scene.Mesh
		file string
	}{
		{&e.meshes.sky, "skybox.glb"},
		{&e.meshes.ground, "hills.glb"},
		{&e.meshes.troll, "troll.glb"},
		{&e.meshes.crate, "crate.glb"},
		{&e.meshes.marker, "light.glb"},
	}
	for _, mf := range meshFiles {
		mesh, err := scene.LoadMeshGLTF(filepath.Join(assetDir, mf.file))
		if err != nil {
			return fmt.Errorf("load mesh: %w", err)
		}
		*mf.out = mesh
	}

	e.meshes.water = scene.CreateWaterGrid(
		math.Vec3{X: -waterExtent, Y: 0, Z: -waterExtent},
		math.Vec3{X: waterExtent, Y: 0, Z: waterExtent},
		waterDivisions, waterDivisions)

	texFiles := []struct {
		out  *core.ViewID
		file string
	}{
		{&e.views.sky, "skybox.jpg"},
		{&e.views.ground, "grass.jpg"},
		{&e.views.troll, "troll.png"},
		{&e.views.crate, "crate.jpg"},
		{&e.views.flare, "flare.jpg"},
		{&e.views.waterNormal, "water_normal_height.png"},
	}
	for _, tf := range texFiles {
		tex, view, err := e.dev.LoadTexture(filepath.Join(assetDir, tf.file))
		if err != nil {
			return fmt.Errorf("load texture: %w", err)
		}
		e.fileTextures = append(e.fileTextures, fileTexture{tex, view})
		*tf.out = view
	}
	return nil
}

// InitScene builds the scene: entity placement, lights, and the camera.
// Calling it again resets every entity to its starting state.
func (e *Engine) InitScene() {
	s := scene.NewScene()

	s.Ground = scene.NewModel(e.meshes.ground, e.views.ground)

	s.Troll = scene.NewModel(e.meshes.troll, e.views.troll)
	s.Troll.SetPosition(math.Vec3{X: 45, Y: 0, Z: 45})
	s.Troll.SetScale(10)

	s.Crate = scene.NewModel(e.meshes.crate, e.views.crate)
	s.Crate.SetPosition(math.Vec3{X: 65, Y: 0, Z: -170})
	s.Crate.SetRotation(math.Vec3{Y: radians(40)})
	s.Crate.SetScale(12)

	s.Sky = scene.NewModel(e.meshes.sky, e.views.sky)
	s.Sky.SetRotation(math.Vec3{Y: radians(90)})
	s.Sky.SetScale(10)

	s.Water = scene.NewModel(e.meshes.water, 0)
	s.Water.SetPosition(math.Vec3{X: 0, Y: 10, Z: 0})
	s.WaterNormalMap = e.views.waterNormal

	s.Lights[0] = &scene.Light{
		Model:    scene.NewModel(e.meshes.marker, e.views.flare),
		Colour:   math.Vec3{X: 0.8, Y: 0.8, Z: 1.0},
		Strength: 20,
	}
	s.Lights[0].Model.SetPosition(math.Vec3{X: 40, Y: 20, Z: -40})

	s.Lights[1] = &scene.Light{
		Model:    scene.NewModel(e.meshes.marker, e.views.flare),
		Colour:   math.Vec3{X: 1.0, Y: 0.9, Z: 0.8},
		Strength: 1000,
	}
	s.Lights[1].Model.SetPosition(math.Vec3{X: 25, Y: 800, Z: -950})

	// Marker brightness reads as size.
	for _, l := range s.Lights {
		l.Model.SetScale(float32(gomath.Sqrt(float64(l.Strength))))
	}

	s.Camera = scene.NewCamera(
		gomath.Pi/4, float32(e.width)/float32(e.height), 5, 100000)
	s.Camera.SetPosition(math.Vec3{X: -80, Y: 50, Z: 200})
	s.Camera.SetRotation(math.Vec3{X: radians(16), Y: radians(145)})

	e.Scene = s
}

// UpdateScene advances the scene by dt seconds.
func (e *Engine) UpdateScene(dt float32, in core.InputSource) {
	e.Scene.Update(dt, in)
}

// Resize recreates the render-target set at the new viewport size and fixes
// the camera aspect ratio.
func (e *Engine) Resize(width, height int) error {
	if width == e.width && height == e.height {
		return nil
	}
	e.Targets.Release()
	targets, err := NewTargetSet(e.dev, width, height)
	if err != nil {
		return fmt.Errorf("render targets: %w", err)
	}
	e.Targets = targets
	e.width = width
	e.height = height
	if e.Scene != nil && e.Scene.Camera != nil {
		e.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
	return nil
}

// Release frees the target set and every file texture. Safe after a partial
// init and safe to call twice.
func (e *Engine) Release() {
	if e.Targets != nil {
		e.Targets.Release()
	}
	for _, ft := range e.fileTextures {
		e.dev.ReleaseShaderView(ft.view)
		e.dev.ReleaseTexture(ft.tex)
	}
	e.fileTextures = nil
}

func radians(degrees float32) float32 {
	return degrees * gomath.Pi / 180
}
