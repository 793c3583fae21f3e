package scene

import (
	gomath "math"

	"water-engine/core"
	"water-engine/math"
)

// Constants controlling the scene's animated parts.
const (
	LightOrbitRadius float32 = 20.0
	LightOrbitSpeed  float32 = 0.7
	WaterHeightSpeed float32 = 5.0 // units per second when adjusting the plane
	WaveScaleSpeed   float32 = 0.5
	waterScrollSpeed float32 = 1.0
)

// Scene is the context object owning every entity the renderer draws: the
// lit models, the sky, the light markers, the water surface, and the camera.
type Scene struct {
	Camera *Camera

	// Lit draw group, in draw order.
	Ground *Model
	Troll  *Model
	Crate  *Model

	// Unlit draw group: sky first, then the light markers.
	Sky    *Model
	Lights Lights

	Water *Model

	// WaterNormalMap is the normal/height map used for the waves; it stays
	// bound for the whole frame.
	WaterNormalMap core.ViewID

	AmbientColour math.Vec3
	SpecularPower float32
	Background    core.Color

	WaveScale     float32
	WaterMovement math.Vec2

	lightAngle float32
	orbiting   bool
}

func NewScene() *Scene {
	return &Scene{
		AmbientColour: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		SpecularPower: 256,
		Background:    core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		WaveScale:     0.6,
		orbiting:      true,
	}
}

// WaterPlaneY is the height of the water plane before the height map
// displaces the surface; the camera is mirrored about this plane.
func (s *Scene) WaterPlaneY() float32 {
	return s.Water.Position().Y
}

// Update advances the scene by dt seconds: light orbit, camera and troll
// control, water plane height, wave scale, and the scrolling water UVs.
func (s *Scene) Update(dt float32, in core.InputSource) {
	// Orbit light 0 around its anchor; key 0 pauses the orbit.
	if in.KeyHit(core.Key0) {
		s.orbiting = !s.orbiting
	}
	if s.orbiting {
		s.lightAngle -= LightOrbitSpeed * dt
	}
	s.Lights[0].Model.SetPosition(math.Vec3{
		X: 40 + float32(gomath.Cos(float64(s.lightAngle)))*LightOrbitRadius,
		Y: 20,
		Z: -40 + float32(gomath.Sin(float64(s.lightAngle)))*LightOrbitRadius,
	})

	s.Camera.Control(dt, in,
		core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight,
		core.KeyW, core.KeyS, core.KeyA, core.KeyD)
	s.Troll.Control(dt, in, core.KeyJ, core.KeyL, core.KeyI, core.KeyK)

	// Raise/lower the whole water plane.
	waterPos := s.Water.Position()
	if in.KeyHeld(core.KeyPeriod) {
		waterPos.Y += WaterHeightSpeed * dt
	}
	if in.KeyHeld(core.KeyComma) {
		waterPos.Y -= WaterHeightSpeed * dt
	}
	s.Water.SetPosition(waterPos)

	// Wave height, clamped at flat.
	if in.KeyHeld(core.KeyEqual) {
		s.WaveScale += WaveScaleSpeed * dt
	}
	if in.KeyHeld(core.KeyMinus) {
		s.WaveScale -= WaveScaleSpeed * dt
	}
	if s.WaveScale < 0 {
		s.WaveScale = 0
	}

	// Scroll the water height-map UVs so the surface drifts.
	s.WaterMovement = s.WaterMovement.Add(
		math.Vec2{X: 0.01, Y: 0.015}.Mul(waterScrollSpeed * dt))
}
