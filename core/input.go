package core

// InputSource answers discrete "key hit" (edge) and "key held" (level)
// queries by logical key identifier. The scene update consumes this
// interface so tests can drive it with a scripted fake.
type InputSource interface {
	// KeyHit reports whether the key went down this frame.
	KeyHit(key int) bool
	// KeyHeld reports whether the key is currently down.
	KeyHeld(key int) bool
}

// Input polls a Window's keyboard state once per frame and derives edge
// information by diffing against the previous frame.
type Input struct {
	window   *Window
	keys     []bool
	keysPrev []bool
}

func NewInput(window *Window) *Input {
	return &Input{
		window:   window,
		keys:     make([]bool, keyMax+1),
		keysPrev: make([]bool, keyMax+1),
	}
}

// Update polls the current key state. Call once per frame, after PollEvents.
func (in *Input) Update() {
	copy(in.keysPrev, in.keys)
	for k := KeySpace; k <= keyMax; k++ {
		in.keys[k] = in.window.IsKeyPressed(k)
	}
}

func (in *Input) KeyHit(key int) bool {
	if key < 0 || key > keyMax {
		return false
	}
	return in.keys[key] && !in.keysPrev[key]
}

func (in *Input) KeyHeld(key int) bool {
	if key < 0 || key > keyMax {
		return false
	}
	return in.keys[key]
}
