package core

import (
	"water-engine/math"
)

// MaxLights is the light count the frame uniform block is laid out for.
// The scene's light array uses the same constant, so a mismatch between the
// two cannot compile.
const MaxLights = 2

// MaxBones is the skeletal-transform capacity of the model uniform block.
// Unskinned draws leave the matrices at identity.
const MaxBones = 64

// LightUniform is one position/colour pair inside FrameUniforms. Strength is
// premultiplied into Colour before the block is pushed. The blank fields are
// std140 padding: a vec3 occupies a full 16-byte slot.
type LightUniform struct {
	Position math.Vec3
	_        float32
	Colour   math.Vec3
	_        float32
}

// FrameUniforms mirrors the PerFrame uniform block in the shaders, byte for
// byte (std140). It is updated once per frame by the scene update, mutated
// again when the camera is mirrored for the reflection pass, and pushed on
// every camera selection — up to three times per frame.
type FrameUniforms struct {
	CameraMatrix         math.Mat4
	ViewMatrix           math.Mat4
	ProjectionMatrix     math.Mat4
	ViewProjectionMatrix math.Mat4

	Lights [MaxLights]LightUniform

	AmbientColour math.Vec3
	SpecularPower float32

	CameraPosition math.Vec3
	_              float32

	ViewportWidth  float32
	ViewportHeight float32
	WaterPlaneY    float32 // Y of the water plane before height-map displacement
	WaveScale      float32 // rescales height-map heights and normals

	WaterMovement math.Vec2 // UV offset that scrolls the water surface
	_             math.Vec2
}

// ModelUniforms mirrors the PerModel uniform block. Overwritten and pushed
// immediately before each draw call; nothing persists across draws.
type ModelUniforms struct {
	WorldMatrix math.Mat4

	ObjectColour math.Vec3
	_            float32

	BoneMatrices [MaxBones]math.Mat4
}
