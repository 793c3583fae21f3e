package scene

import (
	gomath "math"
	"testing"

	"water-engine/math"
)

func TestCreateWaterGridGeometry(t *testing.T) {
	min := math.Vec3{X: -200, Y: 10, Z: -200}
	max := math.Vec3{X: 200, Y: 0, Z: 200}
	mesh := CreateWaterGrid(min, max, 4, 3)

	expectedVerts := (4 + 1) * (3 + 1)
	if len(mesh.Vertices) != expectedVerts {
		t.Errorf("expected %d vertices, got %d", expectedVerts, len(mesh.Vertices))
	}
	expectedIndices := 4 * 3 * 6
	if len(mesh.Indices) != expectedIndices {
		t.Errorf("expected %d indices, got %d", expectedIndices, len(mesh.Indices))
	}

	for i, v := range mesh.Vertices {
		if v.Position.Y != min.Y {
			t.Fatalf("vertex %d: expected Y %v, got %v", i, min.Y, v.Position.Y)
		}
		if v.Position.X < min.X || v.Position.X > max.X ||
			v.Position.Z < min.Z || v.Position.Z > max.Z {
			t.Fatalf("vertex %d: position %v outside the grid rectangle", i, v.Position)
		}
		if v.UV.X < 0 || v.UV.X > 1 || v.UV.Y < 0 || v.UV.Y > 1 {
			t.Fatalf("vertex %d: UV %v outside [0,1]", i, v.UV)
		}
		if v.Normal != math.Vec3Up {
			t.Fatalf("vertex %d: expected up normal, got %v", i, v.Normal)
		}
	}

	// Corners of the UV space must be reached so the height map spans the
	// whole surface.
	first := mesh.Vertices[0]
	last := mesh.Vertices[len(mesh.Vertices)-1]
	if first.UV != (math.Vec2{}) || last.UV != (math.Vec2{X: 1, Y: 1}) {
		t.Errorf("expected UVs to span (0,0)..(1,1), got %v..%v", first.UV, last.UV)
	}
	if first.Position.X != min.X || last.Position.X != max.X {
		t.Errorf("expected X to span %v..%v, got %v..%v",
			min.X, max.X, first.Position.X, last.Position.X)
	}
}

// Triangle winding must agree with the up-facing vertex normals: the cross
// product of each triangle's edges points up.
func TestCreateWaterGridWindingFacesUp(t *testing.T) {
	mesh := CreateWaterGrid(math.Vec3{X: -2, Z: -2}, math.Vec3{X: 2, Z: 2}, 3, 3)
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]].Position
		b := mesh.Vertices[mesh.Indices[i+1]].Position
		c := mesh.Vertices[mesh.Indices[i+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Y <= 0 {
			t.Fatalf("triangle %d: winding normal %v does not face up", i/3, n)
		}
	}
}

// Seen from a camera above, the water triangles must rasterize with the
// front winding (clockwise in window space, matching the device's front-face
// setting) so back-face culling keeps the surface visible.
func TestWaterGridFrontFacesCameraAbove(t *testing.T) {
	mesh := CreateWaterGrid(
		math.Vec3{X: -200, Y: 10, Z: -200},
		math.Vec3{X: 200, Y: 10, Z: 200}, 4, 4)

	c := NewCamera(gomath.Pi/4, 1, 5, 1000)
	c.SetPosition(math.Vec3{Y: 100})
	c.SetRotation(math.Vec3{X: gomath.Pi / 2}) // straight down
	vp := c.ViewProjectionMatrix()

	// First triangle of a central cell.
	base := (1*4 + 1) * 6
	var ndc [3]math.Vec2
	for i := 0; i < 3; i++ {
		pos := mesh.Vertices[mesh.Indices[base+i]].Position
		clip := pos.ToVec4(1).MulMat(vp)
		if clip.W <= 0 {
			t.Fatalf("vertex %d: expected positive clip w, got %v", i, clip.W)
		}
		ndc[i] = math.Vec2{X: clip.X / clip.W, Y: clip.Y / clip.W}
	}

	area := (ndc[1].X-ndc[0].X)*(ndc[2].Y-ndc[0].Y) -
		(ndc[2].X-ndc[0].X)*(ndc[1].Y-ndc[0].Y)
	if area >= 0 {
		t.Errorf("expected clockwise window winding (negative signed area), got %v", area)
	}
}

func TestCreateWaterGridIndicesInRange(t *testing.T) {
	mesh := CreateWaterGrid(math.Vec3{X: -1, Z: -1}, math.Vec3{X: 1, Z: 1}, 2, 2)
	limit := uint32(len(mesh.Vertices))
	for i, idx := range mesh.Indices {
		if idx >= limit {
			t.Fatalf("index %d: %d out of range (limit %d)", i, idx, limit)
		}
	}
}
