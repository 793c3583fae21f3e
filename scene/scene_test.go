package scene

import (
	gomath "math"
	"testing"

	"water-engine/core"
	"water-engine/math"
)

// fakeInput satisfies core.InputSource with scripted key states.
type fakeInput struct {
	hit  map[int]bool
	held map[int]bool
}

func (f *fakeInput) KeyHit(key int) bool  { return f.hit[key] }
func (f *fakeInput) KeyHeld(key int) bool { return f.held[key] }

func noInput() *fakeInput {
	return &fakeInput{hit: map[int]bool{}, held: map[int]bool{}}
}

func testScene() *Scene {
	tri := CreateMeshFromData("tri", make([]core.Vertex, 3), []uint32{0, 1, 2})

	s := NewScene()
	s.Ground = NewModel(tri, 0)
	s.Troll = NewModel(tri, 0)
	s.Crate = NewModel(tri, 0)
	s.Sky = NewModel(tri, 0)
	s.Water = NewModel(tri, 0)
	s.Water.SetPosition(math.Vec3{Y: 10})
	for i := range s.Lights {
		s.Lights[i] = &Light{Model: NewModel(tri, 0), Colour: math.Vec3One, Strength: 20}
	}
	s.Camera = NewCamera(gomath.Pi/4, 16.0/9.0, 5, 100000)
	return s
}

func TestSceneWaterHeightKeys(t *testing.T) {
	s := testScene()

	in := noInput()
	in.held[core.KeyPeriod] = true
	s.Update(0.5, in)
	if got := s.WaterPlaneY(); got != 12.5 {
		t.Errorf("expected water plane at 12.5, got %v", got)
	}

	in = noInput()
	in.held[core.KeyComma] = true
	s.Update(0.5, in)
	if got := s.WaterPlaneY(); got != 10 {
		t.Errorf("expected water plane back at 10, got %v", got)
	}
}

func TestSceneWaveScaleClampsAtZero(t *testing.T) {
	s := testScene()

	in := noInput()
	in.held[core.KeyMinus] = true
	// 0.6 default, dropping 0.5/s: ten seconds is far past zero.
	for i := 0; i < 10; i++ {
		s.Update(1, in)
	}
	if s.WaveScale != 0 {
		t.Errorf("expected wave scale clamped to 0, got %v", s.WaveScale)
	}

	in = noInput()
	in.held[core.KeyEqual] = true
	s.Update(1, in)
	if s.WaveScale != 0.5 {
		t.Errorf("expected wave scale 0.5, got %v", s.WaveScale)
	}
}

func TestSceneLightOrbitToggle(t *testing.T) {
	s := testScene()

	s.Update(0.1, noInput())
	p0 := s.Lights[0].Model.Position()
	s.Update(0.1, noInput())
	p1 := s.Lights[0].Model.Position()
	if p0 == p1 {
		t.Fatal("expected the orbiting light to move between updates")
	}

	in := noInput()
	in.hit[core.Key0] = true
	s.Update(0.1, in)
	p2 := s.Lights[0].Model.Position()
	s.Update(0.1, noInput())
	p3 := s.Lights[0].Model.Position()
	if p2 != p3 {
		t.Errorf("expected paused light to stay at %v, got %v", p2, p3)
	}
}

func TestSceneWaterMovementAdvances(t *testing.T) {
	s := testScene()
	s.Update(1, noInput())
	expected := math.Vec2{X: 0.01, Y: 0.015}
	if s.WaterMovement != expected {
		t.Errorf("expected water movement %v, got %v", expected, s.WaterMovement)
	}
}
