package scene

import (
	"water-engine/core"
	"water-engine/math"
)

// Model is a movable instance of a shared mesh: a transform plus a diffuse
// texture view. The mesh is shared and never owned by the model.
type Model struct {
	Mesh      *Mesh
	Transform core.Transform
	Texture   core.ViewID
}

func NewModel(mesh *Mesh, texture core.ViewID) *Model {
	return &Model{
		Mesh:      mesh,
		Transform: core.NewTransform(),
		Texture:   texture,
	}
}

func (m *Model) SetPosition(pos math.Vec3) {
	m.Transform.Position = pos
}

func (m *Model) Position() math.Vec3 {
	return m.Transform.Position
}

func (m *Model) SetRotation(rot math.Vec3) {
	m.Transform.Rotation = rot
}

// SetScale applies a uniform scale on all three axes.
func (m *Model) SetScale(scale float32) {
	m.Transform.Scale = math.Vec3{X: scale, Y: scale, Z: scale}
}

func (m *Model) WorldMatrix() math.Mat4 {
	return m.Transform.GetMatrix()
}

// Control rotates the model around its Y axis and moves it along its local
// Z axis, for simple keyboard-driven objects.
func (m *Model) Control(dt float32, in core.InputSource, turnLeft, turnRight, forward, backward int) {
	if in.KeyHeld(turnRight) {
		m.Transform.Rotation.Y += RotationSpeed * dt
	}
	if in.KeyHeld(turnLeft) {
		m.Transform.Rotation.Y -= RotationSpeed * dt
	}

	rot := math.Mat4Rotation(m.Transform.Rotation)
	localZ := math.Vec3{X: rot[2][0], Y: rot[2][1], Z: rot[2][2]}
	if in.KeyHeld(forward) {
		m.Transform.Position = m.Transform.Position.Add(localZ.Mul(MovementSpeed * dt))
	}
	if in.KeyHeld(backward) {
		m.Transform.Position = m.Transform.Position.Sub(localZ.Mul(MovementSpeed * dt))
	}
}
