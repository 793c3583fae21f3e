package core

// Handles issued by the graphics device. The zero TargetID addresses the
// back buffer; every other handle is opaque to callers.
type (
	TextureID uint32
	TargetID  uint32
	ViewID    uint32
)

// TargetBackBuffer addresses the window's back buffer when passed to
// SetRenderTarget.
const TargetBackBuffer TargetID = 0

// TextureFormat selects the pixel format of a render texture.
type TextureFormat int

const (
	// FormatRGBA8 is a 4-channel, 8-bit-per-channel colour format.
	FormatRGBA8 TextureFormat = iota
	// FormatR32F is a single-channel 32-bit float format (one scalar per
	// pixel), used for the water height target.
	FormatR32F
)

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatR32F:
		return "r32f"
	}
	return "unknown"
}

// BlendMode selects the output-merger blend state.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendAdditive
)

func (b BlendMode) String() string {
	switch b {
	case BlendNone:
		return "none"
	case BlendAdditive:
		return "additive"
	}
	return "unknown"
}

// DepthMode selects depth testing and depth writes.
type DepthMode int

const (
	// DepthReadWrite tests against and writes to the depth buffer.
	DepthReadWrite DepthMode = iota
	// DepthReadOnly tests but never writes, so blended geometry does not
	// occlude itself.
	DepthReadOnly
)

func (d DepthMode) String() string {
	switch d {
	case DepthReadWrite:
		return "rw"
	case DepthReadOnly:
		return "ro"
	}
	return "unknown"
}

// CullMode selects which triangle faces the rasterizer discards.
type CullMode int

const (
	CullBack CullMode = iota
	CullFront
	CullNone
)

func (c CullMode) String() string {
	switch c {
	case CullBack:
		return "back"
	case CullFront:
		return "front"
	case CullNone:
		return "none"
	}
	return "unknown"
}

// TextureSlot is a shader texture binding point. Slot numbers must match the
// sampler bindings in the GLSL sources.
type TextureSlot int

const (
	SlotDiffuse     TextureSlot = 0 // per-model diffuse/specular map
	SlotWaterNormal TextureSlot = 1 // water normal/height map, bound all frame
	SlotWaterHeight TextureSlot = 2 // water height render texture
	SlotRefraction  TextureSlot = 3 // refraction render texture
	SlotReflection  TextureSlot = 4 // reflection render texture
)

// Program identifies one of the compiled shader program pairs.
type Program int

const (
	// ProgramPixelLighting and its variants share the pixel-lighting vertex
	// shader; the tinted-texture trio shares the basic-transform vertex
	// shader; the water pair shares the displacing water-surface vertex
	// shader.
	ProgramPixelLighting Program = iota
	ProgramPixelLightingReflected
	ProgramPixelLightingRefracted
	ProgramTintedTexture
	ProgramTintedTextureReflected
	ProgramTintedTextureRefracted
	ProgramWaterHeight
	ProgramWaterSurface

	ProgramCount
)

func (p Program) String() string {
	switch p {
	case ProgramPixelLighting:
		return "pixel-lighting"
	case ProgramPixelLightingReflected:
		return "pixel-lighting-reflected"
	case ProgramPixelLightingRefracted:
		return "pixel-lighting-refracted"
	case ProgramTintedTexture:
		return "tinted-texture"
	case ProgramTintedTextureReflected:
		return "tinted-texture-reflected"
	case ProgramTintedTextureRefracted:
		return "tinted-texture-refracted"
	case ProgramWaterHeight:
		return "water-height"
	case ProgramWaterSurface:
		return "water-surface"
	}
	return "unknown"
}
