package scene

import (
	"water-engine/core"
	"water-engine/math"
)

// CreateWaterGrid builds the tessellated water surface: a flat, UV-mapped
// triangle grid spanning min..max in XZ at min.Y. The surface needs real
// tessellation (not a single quad) because the water vertex shader displaces
// each vertex by the height map to form waves.
//
//	min, max  — opposite corners of the covered rectangle (Y from min)
//	divX/divZ — number of cells along each axis
func CreateWaterGrid(min, max math.Vec3, divX, divZ int) *Mesh {
	if divX < 1 {
		divX = 1
	}
	if divZ < 1 {
		divZ = 1
	}

	sizeX := max.X - min.X
	sizeZ := max.Z - min.Z

	vertices := make([]core.Vertex, 0, (divX+1)*(divZ+1))
	for iz := 0; iz <= divZ; iz++ {
		tz := float32(iz) / float32(divZ)
		for ix := 0; ix <= divX; ix++ {
			tx := float32(ix) / float32(divX)
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: min.X + tx*sizeX, Y: min.Y, Z: min.Z + tz*sizeZ},
				Normal:   math.Vec3Up,
				UV:       math.Vec2{X: tx, Y: tz},
			})
		}
	}

	// Two triangles per cell, wound to face +Y like the vertex normals.
	indices := make([]uint32, 0, divX*divZ*6)
	stride := uint32(divX + 1)
	for iz := 0; iz < divZ; iz++ {
		for ix := 0; ix < divX; ix++ {
			i0 := uint32(iz)*stride + uint32(ix)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			indices = append(indices,
				i0, i2, i1,
				i1, i2, i3,
			)
		}
	}

	return CreateMeshFromData("Water", vertices, indices)
}
