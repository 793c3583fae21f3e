package renderer

import (
	"fmt"

	"water-engine/core"
	"water-engine/scene"
)

// fakeDevice records every device call as a readable op string so tests can
// assert on ordering. Handles are issued from separate counters per kind,
// starting at 1 (target 0 is the back buffer). Creation calls can be made to
// fail at a chosen 1-based call index.
type fakeDevice struct {
	trace []string

	textureCalls, targetCalls, viewCalls    int
	failTextureAt, failTargetAt, failViewAt int

	nextTexture core.TextureID
	nextTarget  core.TargetID
	nextView    core.ViewID
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{}
}

func (d *fakeDevice) reset() {
	d.trace = nil
}

func (d *fakeDevice) op(format string, args ...interface{}) {
	d.trace = append(d.trace, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) CreateTexture(width, height int, format core.TextureFormat) (core.TextureID, error) {
	d.textureCalls++
	if d.textureCalls == d.failTextureAt {
		return 0, fmt.Errorf("injected texture failure")
	}
	d.nextTexture++
	d.op("create-tex %dx%d %s", width, height, format)
	return d.nextTexture, nil
}

func (d *fakeDevice) CreateRenderTarget(tex core.TextureID) (core.TargetID, error) {
	d.targetCalls++
	if d.targetCalls == d.failTargetAt {
		return 0, fmt.Errorf("injected render-target failure")
	}
	d.nextTarget++
	d.op("create-target t%d", tex)
	return d.nextTarget, nil
}

func (d *fakeDevice) CreateShaderView(tex core.TextureID) (core.ViewID, error) {
	d.viewCalls++
	if d.viewCalls == d.failViewAt {
		return 0, fmt.Errorf("injected shader-view failure")
	}
	d.nextView++
	d.op("create-view t%d", tex)
	return d.nextView, nil
}

func (d *fakeDevice) ReleaseTexture(tex core.TextureID)        { d.op("release-tex %d", tex) }
func (d *fakeDevice) ReleaseRenderTarget(target core.TargetID) { d.op("release-target %d", target) }
func (d *fakeDevice) ReleaseShaderView(view core.ViewID)       { d.op("release-view %d", view) }

func (d *fakeDevice) LoadTexture(path string) (core.TextureID, core.ViewID, error) {
	d.nextTexture++
	d.nextView++
	d.op("load-tex %s", path)
	return d.nextTexture, d.nextView, nil
}

func (d *fakeDevice) SetRenderTarget(target core.TargetID) { d.op("target %d", target) }
func (d *fakeDevice) ClearColor(colour core.Color)         { d.op("clear-color") }
func (d *fakeDevice) ClearDepth()                          { d.op("clear-depth") }

func (d *fakeDevice) SetBlend(mode core.BlendMode)     { d.op("blend %s", mode) }
func (d *fakeDevice) SetDepthTest(mode core.DepthMode) { d.op("depth %s", mode) }
func (d *fakeDevice) SetCull(mode core.CullMode)       { d.op("cull %s", mode) }

func (d *fakeDevice) UseProgram(program core.Program) { d.op("program %s", program) }

func (d *fakeDevice) BindShaderView(slot core.TextureSlot, view core.ViewID) {
	d.op("bind %d v%d", slot, view)
}

func (d *fakeDevice) UnbindShaderView(slot core.TextureSlot) { d.op("unbind %d", slot) }

func (d *fakeDevice) PushFrameUniforms(u *core.FrameUniforms) { d.op("push-frame") }
func (d *fakeDevice) PushModelUniforms(u *core.ModelUniforms) { d.op("push-model") }

func (d *fakeDevice) Draw(mesh *scene.Mesh) { d.op("draw %s", mesh.Name) }
func (d *fakeDevice) Present()              { d.op("present") }
