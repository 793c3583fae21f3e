package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"water-engine/core"
	"water-engine/math"
)

// LoadMeshGLTF opens a .glb or .gltf file and returns its geometry flattened
// into a single mesh. Every primitive of every mesh in the document is
// concatenated; materials and the node hierarchy are ignored, since each
// model here pairs one mesh with one diffuse texture.
func LoadMeshGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var vertices []core.Vertex
	var indices []uint32
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			base := uint32(len(vertices))
			verts, inds, err := loadPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf %q: mesh %d prim %d: %w", path, mi, pi, err)
			}
			vertices = append(vertices, verts...)
			for _, i := range inds {
				indices = append(indices, base+i)
			}
		}
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("gltf %q: no geometry", path)
	}
	return CreateMeshFromData(name, vertices, indices), nil
}

// loadPrimitive converts one glTF mesh primitive into vertex/index slices.
func loadPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([]core.Vertex, []uint32, error) {
	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		// Non-indexed primitive: synthesize a trivial index buffer.
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	return verts, indices, nil
}
