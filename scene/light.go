package scene

import (
	"water-engine/core"
	"water-engine/math"
)

// Light is a point light with a visual marker model. Strength and colour
// combine multiplicatively before being pushed to the frame uniform block.
type Light struct {
	Model    *Model
	Colour   math.Vec3
	Strength float32
}

// ScaledColour returns colour premultiplied by strength, the value the
// shaders expect.
func (l *Light) ScaledColour() math.Vec3 {
	return l.Colour.Mul(l.Strength)
}

// Lights is the scene's fixed, order-significant light collection; the
// index addresses the matching slot of the frame uniform block, whose
// layout is sized by the same core.MaxLights constant.
type Lights [core.MaxLights]*Light
