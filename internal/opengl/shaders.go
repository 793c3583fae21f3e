package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"water-engine/core"
)

// The Go-side uniform structs are row-major with row-vector maths; GLSL reads
// the same bytes column-major, which is the transpose, so every shader
// multiplies matrix * vector.
const uniformBlocks = `
struct Light {
    vec3 position;
    vec3 colour;
};

layout(std140) uniform PerFrame {
    mat4  cameraMatrix;
    mat4  viewMatrix;
    mat4  projectionMatrix;
    mat4  viewProjectionMatrix;
    Light lights[2];
    vec3  ambientColour;
    float specularPower;
    vec3  cameraPosition;
    float framePad0;
    float viewportWidth;
    float viewportHeight;
    float waterPlaneY;
    float waveScale;
    vec2  waterMovement;
    vec2  framePad1;
};

layout(std140) uniform PerModel {
    mat4 worldMatrix;
    vec3 objectColour;
    mat4 boneMatrices[64];
};
`

// ── Vertex shaders ────────────────────────────────────────────────────────────

// pixelLightingVert feeds the lighting fragment shaders with world-space
// position and normal.
const pixelLightingVert = `#version 410 core
` + uniformBlocks + `
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

out vec3 worldPosition;
out vec3 worldNormal;
out vec2 uv;

void main() {
    vec4 wp = worldMatrix * vec4(inPosition, 1.0);
    gl_Position   = viewProjectionMatrix * wp;
    worldPosition = wp.xyz;
    worldNormal   = mat3(worldMatrix) * inNormal;
    uv            = inUV;
}
` + "\x00"

// basicTransformVert is the unlit path: transform only, but world position is
// still passed through for the water-relative discard in the refracted and
// reflected variants.
const basicTransformVert = `#version 410 core
` + uniformBlocks + `
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

out vec3 worldPosition;
out vec2 uv;

void main() {
    vec4 wp = worldMatrix * vec4(inPosition, 1.0);
    gl_Position   = viewProjectionMatrix * wp;
    worldPosition = wp.xyz;
    uv            = inUV;
}
` + "\x00"

// waterSurfaceVert displaces the flat water grid by the height stored in the
// normal/height map's alpha channel, scrolled by waterMovement. Shared by the
// height pass and the water surface pass, so both agree on the wave shape.
const waterSurfaceVert = `#version 410 core
` + uniformBlocks + `
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform sampler2D waterNormalHeightMap;

out vec3 worldPosition;
out vec2 uv;

void main() {
    vec4 wp = worldMatrix * vec4(inPosition, 1.0);
    vec2 scrolled = inUV + waterMovement;
    float height = texture(waterNormalHeightMap, scrolled).a;
    wp.y += waveScale * (height * 2.0 - 1.0);

    gl_Position   = viewProjectionMatrix * wp;
    worldPosition = wp.xyz;
    uv            = scrolled;
}
` + "\x00"

// ── Fragment shader building blocks ──────────────────────────────────────────

// lightingBody evaluates two point lights with diffuse and blinn specular
// terms plus the ambient colour, against the diffuse map where the RGB is
// albedo and the alpha is the specular mask.
const lightingBody = `
uniform sampler2D diffuseMap;

vec3 litColour(vec3 wp, vec3 n, vec2 texUV) {
    vec3 N = normalize(n);
    vec3 V = normalize(cameraPosition - wp);

    vec4 texel = texture(diffuseMap, texUV);
    vec3 albedo = texel.rgb;
    float specMask = texel.a;

    vec3 diffuse = ambientColour;
    vec3 specular = vec3(0.0);
    for (int i = 0; i < 2; i++) {
        vec3 toLight = lights[i].position - wp;
        float dist = length(toLight);
        vec3 L = toLight / dist;
        vec3 rad = lights[i].colour / dist;

        diffuse += rad * max(dot(N, L), 0.0);
        vec3 H = normalize(L + V);
        specular += rad * pow(max(dot(N, H), 0.0), specularPower);
    }
    return diffuse * albedo * objectColour + specular * specMask;
}
`

// waterClip samples the water height render texture at this fragment's screen
// position. The refracted variants discard above the surface, the reflected
// variants below it.
const waterClip = `
uniform sampler2D waterHeightMap;

float surfaceHeight() {
    vec2 screenUV = gl_FragCoord.xy / vec2(viewportWidth, viewportHeight);
    return texture(waterHeightMap, screenUV).r;
}
`

// refractionTint darkens and blue-shifts geometry by its depth below the
// water surface.
const refractionTint = `
vec3 underwaterTint(vec3 colour, float depth) {
    float murk = exp(-depth * 0.08);
    return mix(vec3(0.15, 0.25, 0.30) * colour, colour, clamp(murk, 0.0, 1.0));
}
`

const pixelLightingFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec3 worldNormal;
in vec2 uv;
out vec4 outColour;
` + lightingBody + `
void main() {
    outColour = vec4(litColour(worldPosition, worldNormal, uv), 1.0);
}
` + "\x00"

const pixelLightingReflectedFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec3 worldNormal;
in vec2 uv;
out vec4 outColour;
` + lightingBody + waterClip + `
void main() {
    if (worldPosition.y < surfaceHeight()) {
        discard;
    }
    outColour = vec4(litColour(worldPosition, worldNormal, uv), 1.0);
}
` + "\x00"

const pixelLightingRefractedFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec3 worldNormal;
in vec2 uv;
out vec4 outColour;
` + lightingBody + waterClip + refractionTint + `
void main() {
    float surface = surfaceHeight();
    if (worldPosition.y > surface) {
        discard;
    }
    vec3 colour = litColour(worldPosition, worldNormal, uv);
    outColour = vec4(underwaterTint(colour, surface - worldPosition.y), 1.0);
}
` + "\x00"

const tintedTextureFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec2 uv;
out vec4 outColour;

uniform sampler2D diffuseMap;

void main() {
    outColour = texture(diffuseMap, uv) * vec4(objectColour, 1.0);
}
` + "\x00"

const tintedTextureReflectedFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec2 uv;
out vec4 outColour;

uniform sampler2D diffuseMap;
` + waterClip + `
void main() {
    if (worldPosition.y < surfaceHeight()) {
        discard;
    }
    outColour = texture(diffuseMap, uv) * vec4(objectColour, 1.0);
}
` + "\x00"

const tintedTextureRefractedFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec2 uv;
out vec4 outColour;

uniform sampler2D diffuseMap;
` + waterClip + refractionTint + `
void main() {
    float surface = surfaceHeight();
    if (worldPosition.y > surface) {
        discard;
    }
    vec3 colour = texture(diffuseMap, uv).rgb * objectColour;
    outColour = vec4(underwaterTint(colour, surface - worldPosition.y), 1.0);
}
` + "\x00"

// waterHeightFrag writes the displaced surface's world-space Y into the
// single-channel float target.
const waterHeightFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec2 uv;
out float outHeight;

void main() {
    outHeight = worldPosition.y;
}
` + "\x00"

// waterSurfaceFrag combines the refraction and reflection targets. The
// screen-space lookup is distorted by the wave normal, and the two are mixed
// by a fresnel term so the water is a mirror at grazing angles and clear when
// looked at straight down.
const waterSurfaceFrag = `#version 410 core
` + uniformBlocks + `
in vec3 worldPosition;
in vec2 uv;
out vec4 outColour;

uniform sampler2D waterNormalHeightMap;
uniform sampler2D refractionMap;
uniform sampler2D reflectionMap;

void main() {
    vec3 mapNormal = texture(waterNormalHeightMap, uv).rgb * 2.0 - 1.0;
    vec3 N = normalize(vec3(mapNormal.x * waveScale, 1.0, mapNormal.y * waveScale));

    vec2 screenUV = gl_FragCoord.xy / vec2(viewportWidth, viewportHeight);
    vec2 distortion = N.xz * 0.03;

    vec3 refracted = texture(refractionMap, screenUV + distortion).rgb;
    vec3 reflected = texture(reflectionMap, screenUV - distortion).rgb;

    vec3 V = normalize(cameraPosition - worldPosition);
    float fresnel = pow(1.0 - max(dot(V, N), 0.0), 3.0);
    fresnel = clamp(fresnel, 0.05, 0.95);

    vec3 colour = mix(refracted, reflected, fresnel);

    // Specular glints from both lights off the wave normal.
    for (int i = 0; i < 2; i++) {
        vec3 toLight = lights[i].position - worldPosition;
        float dist = length(toLight);
        vec3 L = toLight / dist;
        vec3 H = normalize(L + V);
        colour += (lights[i].colour / dist) * pow(max(dot(N, H), 0.0), specularPower);
    }

    outColour = vec4(colour, 1.0);
}
` + "\x00"

// programSources pairs each program with its vertex/fragment sources.
var programSources = [core.ProgramCount]struct {
	vert, frag string
}{
	core.ProgramPixelLighting:          {pixelLightingVert, pixelLightingFrag},
	core.ProgramPixelLightingReflected: {pixelLightingVert, pixelLightingReflectedFrag},
	core.ProgramPixelLightingRefracted: {pixelLightingVert, pixelLightingRefractedFrag},
	core.ProgramTintedTexture:          {basicTransformVert, tintedTextureFrag},
	core.ProgramTintedTextureReflected: {basicTransformVert, tintedTextureReflectedFrag},
	core.ProgramTintedTextureRefracted: {basicTransformVert, tintedTextureRefractedFrag},
	core.ProgramWaterHeight:            {waterSurfaceVert, waterHeightFrag},
	core.ProgramWaterSurface:           {waterSurfaceVert, waterSurfaceFrag},
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
