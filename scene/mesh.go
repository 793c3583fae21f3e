package scene

import (
	"water-engine/core"
)

// Mesh holds CPU-side vertex/index data. Many models may reference the same
// mesh; meshes are shared and read-only after creation. GPU upload is
// managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	// GPUData is set by the backend on first draw (e.g. *opengl.GPUMesh).
	// Do not access directly.
	GPUData interface{}
}

// CreateMeshFromData builds a Mesh from prepared vertex/index slices.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}
