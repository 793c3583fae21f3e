package scene

import (
	gomath "math"
	"testing"

	"water-engine/math"
)

func TestCameraMirrorAboutPlane(t *testing.T) {
	c := NewCamera(gomath.Pi/4, 16.0/9.0, 5, 100000)
	c.SetPosition(math.Vec3{X: 10, Y: 50, Z: 20})

	c.MirrorAboutPlane(10)

	if c.Position.Y != -30 {
		t.Errorf("expected mirrored Y -30, got %v", c.Position.Y)
	}
	if c.Position.X != 10 || c.Position.Z != 20 {
		t.Errorf("expected X/Z unchanged, got %v/%v", c.Position.X, c.Position.Z)
	}
	if c.YAxis.Y != -1 {
		t.Errorf("expected up axis Y -1, got %v", c.YAxis.Y)
	}
	if c.XAxis.Y != 0 || c.ZAxis.Y != 0 {
		t.Errorf("expected X/Z axis Y components unchanged at 0, got %v/%v",
			c.XAxis.Y, c.ZAxis.Y)
	}
}

// Mirroring twice about the same plane must give back the starting camera
// exactly; the operation is its own inverse.
func TestCameraMirrorInvolution(t *testing.T) {
	c := NewCamera(gomath.Pi/4, 16.0/9.0, 5, 100000)
	c.SetPosition(math.Vec3{X: -80, Y: 50, Z: 200})
	c.SetRotation(math.Vec3{X: 0.25, Y: 2.5})

	before := c.State()
	c.MirrorAboutPlane(10)
	c.MirrorAboutPlane(10)

	if c.State() != before {
		t.Errorf("expected state %+v after double mirror, got %+v", before, c.State())
	}
}

func TestCameraStateRestoreAfterMirror(t *testing.T) {
	c := NewCamera(gomath.Pi/4, 16.0/9.0, 5, 100000)
	c.SetPosition(math.Vec3{X: -80, Y: 50, Z: 200})
	c.SetRotation(math.Vec3{X: 0.25, Y: 2.5})

	saved := c.State()
	c.MirrorAboutPlane(10)
	c.Restore(saved)

	if c.State() != saved {
		t.Errorf("expected restored state %+v, got %+v", saved, c.State())
	}
}

// A point along the camera's forward axis must project inside the clip
// volume, and a point behind the camera must not.
func TestCameraForwardPointInClipVolume(t *testing.T) {
	c := NewCamera(gomath.Pi/4, 4.0/3.0, 5, 100000)
	c.SetPosition(math.Vec3{X: -80, Y: 50, Z: 200})
	c.SetRotation(math.Vec3{X: 0.28, Y: 2.53})

	ahead := c.Position.Add(c.ZAxis.Mul(100))
	clip := ahead.ToVec4(1).MulMat(c.ViewProjectionMatrix())
	if clip.W <= 0 {
		t.Fatalf("expected positive clip w ahead of the camera, got %v", clip.W)
	}
	if clip.Z < -clip.W || clip.Z > clip.W {
		t.Errorf("expected clip z within [-w, w], got z %v w %v", clip.Z, clip.W)
	}
	if gomath.Abs(float64(clip.X)) > float64(clip.W) ||
		gomath.Abs(float64(clip.Y)) > float64(clip.W) {
		t.Errorf("expected an on-axis point inside x/y bounds, got %+v", clip)
	}

	behind := c.Position.Sub(c.ZAxis.Mul(100))
	clip = behind.ToVec4(1).MulMat(c.ViewProjectionMatrix())
	if clip.W >= 0 {
		t.Errorf("expected negative clip w behind the camera, got %v", clip.W)
	}
}

// The view matrix is the rigid inverse of the camera's world matrix, so
// their product must be the identity.
func TestCameraViewInvertsWorld(t *testing.T) {
	c := NewCamera(gomath.Pi/4, 16.0/9.0, 5, 100000)
	c.SetPosition(math.Vec3{X: 30, Y: -12, Z: 7})
	c.SetRotation(math.Vec3{X: 0.4, Y: 1.1, Z: 0.2})

	product := c.WorldMatrix().Mul(c.ViewMatrix())
	identity := math.Mat4Identity()

	const epsilon = 1e-4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			diff := float64(product[i][j] - identity[i][j])
			if gomath.Abs(diff) > epsilon {
				t.Fatalf("expected identity, got %v at [%d][%d] (matrix %v)",
					product[i][j], i, j, product)
			}
		}
	}
}
