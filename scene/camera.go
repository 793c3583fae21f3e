package scene

import (
	"water-engine/core"
	"water-engine/math"
)

// Constants controlling speed of camera/model movement, in units per second.
const (
	RotationSpeed float32 = 1.5
	MovementSpeed float32 = 50.0
)

// Camera owns a position and an orientation stored as three basis axes, and
// derives view/projection matrices on demand. The axes are kept explicit
// (rather than Euler angles or a quaternion) because the reflection pass
// mirrors them in place: negate the Y component of each axis and move the
// position to the far side of the water plane.
type Camera struct {
	Position math.Vec3
	XAxis    math.Vec3
	YAxis    math.Vec3
	ZAxis    math.Vec3

	// Rotation holds the pitch/yaw/roll the control scheme accumulates.
	// rebuildAxes derives the basis from it; mirroring bypasses it and
	// edits the axes directly.
	Rotation math.Vec3

	FOV         float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32

	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	viewProjMatrix   math.Mat4
	dirty            bool
}

// CameraState is a verbatim snapshot of position and orientation, taken
// before mirroring and restored afterwards.
type CameraState struct {
	Position math.Vec3
	XAxis    math.Vec3
	YAxis    math.Vec3
	ZAxis    math.Vec3
}

func NewCamera(fov, aspectRatio, nearClip, farClip float32) *Camera {
	c := &Camera{
		Position:    math.Vec3Zero,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearClip:    nearClip,
		FarClip:     farClip,
	}
	c.rebuildAxes()
	return c
}

func (c *Camera) SetPosition(pos math.Vec3) {
	c.Position = pos
	c.dirty = true
}

// SetRotation sets pitch/yaw/roll in radians and rebuilds the basis axes.
func (c *Camera) SetRotation(rot math.Vec3) {
	c.Rotation = rot
	c.rebuildAxes()
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
		c.dirty = true
	}
}

// Control applies the fly-camera scheme: arrow-style keys rotate, WASD-style
// keys move along the camera's own axes.
func (c *Camera) Control(dt float32, in core.InputSource,
	turnUp, turnDown, turnLeft, turnRight, forward, backward, left, right int) {

	if in.KeyHeld(turnDown) {
		c.Rotation.X += RotationSpeed * dt
	}
	if in.KeyHeld(turnUp) {
		c.Rotation.X -= RotationSpeed * dt
	}
	if in.KeyHeld(turnRight) {
		c.Rotation.Y += RotationSpeed * dt
	}
	if in.KeyHeld(turnLeft) {
		c.Rotation.Y -= RotationSpeed * dt
	}
	c.rebuildAxes()

	if in.KeyHeld(forward) {
		c.Position = c.Position.Add(c.ZAxis.Mul(MovementSpeed * dt))
	}
	if in.KeyHeld(backward) {
		c.Position = c.Position.Sub(c.ZAxis.Mul(MovementSpeed * dt))
	}
	if in.KeyHeld(right) {
		c.Position = c.Position.Add(c.XAxis.Mul(MovementSpeed * dt))
	}
	if in.KeyHeld(left) {
		c.Position = c.Position.Sub(c.XAxis.Mul(MovementSpeed * dt))
	}
	c.dirty = true
}

// MirrorAboutPlane reflects the camera through the horizontal plane at
// height h, in place: the Y component of each basis axis is negated and the
// position is moved the same distance below the plane as it was above it.
// Callers must snapshot with State beforehand and Restore afterwards; no
// other code may observe the camera while a mirror is in flight.
func (c *Camera) MirrorAboutPlane(h float32) {
	c.XAxis.Y = -c.XAxis.Y
	c.YAxis.Y = -c.YAxis.Y
	c.ZAxis.Y = -c.ZAxis.Y
	c.Position.Y = 2*h - c.Position.Y
	c.dirty = true
}

// State snapshots position and orientation for later Restore.
func (c *Camera) State() CameraState {
	return CameraState{
		Position: c.Position,
		XAxis:    c.XAxis,
		YAxis:    c.YAxis,
		ZAxis:    c.ZAxis,
	}
}

// Restore puts back a snapshot verbatim.
func (c *Camera) Restore(s CameraState) {
	c.Position = s.Position
	c.XAxis = s.XAxis
	c.YAxis = s.YAxis
	c.ZAxis = s.ZAxis
	c.dirty = true
}

// WorldMatrix returns the camera's world transform, the inverse of the view
// matrix: right and up axes in the first two rows, the negated forward axis
// in the third, position in the fourth (row-vector convention).
func (c *Camera) WorldMatrix() math.Mat4 {
	return math.Mat4{
		{c.XAxis.X, c.XAxis.Y, c.XAxis.Z, 0},
		{c.YAxis.X, c.YAxis.Y, c.YAxis.Z, 0},
		{-c.ZAxis.X, -c.ZAxis.Y, -c.ZAxis.Z, 0},
		{c.Position.X, c.Position.Y, c.Position.Z, 1},
	}
}

func (c *Camera) ViewMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewProjMatrix
}

// rebuildAxes derives the basis from the accumulated pitch/yaw/roll,
// applied roll, then pitch, then yaw.
func (c *Camera) rebuildAxes() {
	rot := math.Mat4RotationZ(c.Rotation.Z).
		Mul(math.Mat4RotationX(c.Rotation.X)).
		Mul(math.Mat4RotationY(c.Rotation.Y))
	c.XAxis = math.Vec3{X: rot[0][0], Y: rot[0][1], Z: rot[0][2]}
	c.YAxis = math.Vec3{X: rot[1][0], Y: rot[1][1], Z: rot[1][2]}
	c.ZAxis = math.Vec3{X: rot[2][0], Y: rot[2][1], Z: rot[2][2]}
	c.dirty = true
}

// updateMatrices recomputes the cached view/projection matrices. The view
// matrix is the rigid inverse of the world matrix. View space looks along
// -z, so the forward axis fills the third column negated and points ahead
// of the camera get positive clip w from the projection.
func (c *Camera) updateMatrices() {
	c.viewMatrix = math.Mat4{
		{c.XAxis.X, c.YAxis.X, -c.ZAxis.X, 0},
		{c.XAxis.Y, c.YAxis.Y, -c.ZAxis.Y, 0},
		{c.XAxis.Z, c.YAxis.Z, -c.ZAxis.Z, 0},
		{-c.Position.Dot(c.XAxis), -c.Position.Dot(c.YAxis), c.Position.Dot(c.ZAxis), 1},
	}
	c.projectionMatrix = math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearClip, c.FarClip)
	c.viewProjMatrix = c.viewMatrix.Mul(c.projectionMatrix)
	c.dirty = false
}
