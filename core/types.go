package core

import (
	"water-engine/math"
)

type Color struct {
	R, G, B, A float32
}

// Vertex is the CPU-side vertex layout shared by every mesh in the scene.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Transform is a position / Euler rotation / scale triple.
// The world matrix applies scale, then rotation, then translation
// (row-vector convention: v' = v·S·R·T).
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3 // Euler angles in radians
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.Vec3Zero,
		Scale:    math.Vec3One,
	}
}

func (t Transform) GetMatrix() math.Mat4 {
	scale := math.Mat4Scale(t.Scale)
	rotation := math.Mat4Rotation(t.Rotation)
	translation := math.Mat4Translation(t.Position)
	return scale.Mul(rotation).Mul(translation)
}
