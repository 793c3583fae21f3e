package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"water-engine/core"
	"water-engine/scene"
)

// LoadTexture decodes an image file and uploads it as a mipmapped, repeating
// GPU texture. File textures tile (ground, water normal map), unlike render
// textures which clamp.
func (d *Device) LoadTexture(path string) (core.TextureID, core.ViewID, error) {
	tex, err := scene.LoadTexture(path)
	if err != nil {
		return 0, 0, err
	}
	if len(tex.Pixels) == 0 {
		return 0, 0, fmt.Errorf("texture %q has no pixel data", tex.Name)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(tex.Width),
		int32(tex.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	texID := core.TextureID(id)
	d.textures[texID] = textureInfo{width: int32(tex.Width), height: int32(tex.Height)}
	return texID, core.ViewID(id), nil
}
