package renderer

import (
	"fmt"

	"water-engine/core"
)

// RenderTexture is one off-screen texture with its render-target and
// shader-view handles.
type RenderTexture struct {
	Texture core.TextureID
	Target  core.TargetID
	View    core.ViewID
}

// TargetSet owns the three off-screen render textures the water passes draw
// into. Creation is all-or-nothing: if any sub-resource fails, everything
// already created is released in reverse order and the error is returned.
type TargetSet struct {
	Reflection RenderTexture // what is above the water, mirrored (RGBA8)
	Refraction RenderTexture // what is below the water (RGBA8)
	Height     RenderTexture // world-space water surface height (R32F)

	dev      Device
	releases []func()
}

// NewTargetSet creates the reflection, refraction, and water-height targets
// at the given viewport size.
func NewTargetSet(dev Device, width, height int) (*TargetSet, error) {
	ts := &TargetSet{dev: dev}

	steps := []struct {
		name   string
		format core.TextureFormat
		out    *RenderTexture
	}{
		{"reflection", core.FormatRGBA8, &ts.Reflection},
		{"refraction", core.FormatRGBA8, &ts.Refraction},
		{"water height", core.FormatR32F, &ts.Height},
	}
	for _, step := range steps {
		rt, err := ts.createOne(width, height, step.format)
		if err != nil {
			ts.Release()
			return nil, fmt.Errorf("%s target: %w", step.name, err)
		}
		*step.out = rt
	}
	return ts, nil
}

// createOne builds texture, render target, and shader view for one target,
// pushing a release step per created sub-resource. On error the caller
// unwinds via Release, which also covers the partial state.
func (ts *TargetSet) createOne(width, height int, format core.TextureFormat) (RenderTexture, error) {
	var rt RenderTexture

	tex, err := ts.dev.CreateTexture(width, height, format)
	if err != nil {
		return rt, fmt.Errorf("texture: %w", err)
	}
	ts.releases = append(ts.releases, func() { ts.dev.ReleaseTexture(tex) })
	rt.Texture = tex

	target, err := ts.dev.CreateRenderTarget(tex)
	if err != nil {
		return rt, fmt.Errorf("render target: %w", err)
	}
	ts.releases = append(ts.releases, func() { ts.dev.ReleaseRenderTarget(target) })
	rt.Target = target

	view, err := ts.dev.CreateShaderView(tex)
	if err != nil {
		return rt, fmt.Errorf("shader view: %w", err)
	}
	ts.releases = append(ts.releases, func() { ts.dev.ReleaseShaderView(view) })
	rt.View = view

	return rt, nil
}

// Release frees every created sub-resource in reverse creation order. Safe
// to call more than once and on a partially created set.
func (ts *TargetSet) Release() {
	for i := len(ts.releases) - 1; i >= 0; i-- {
		ts.releases[i]()
	}
	ts.releases = nil
}
