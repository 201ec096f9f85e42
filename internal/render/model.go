package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Model is a renderable mesh instance owned by a component and attached to
// the render Scene while the component is enabled.
type Model struct {
	Model    rl.Model
	Color    rl.Color
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3

	// Unlit models (light indicators, gizmos) skip the lighting shader.
	Unlit bool

	loaded bool
}

// NewModel wraps an already-loaded raylib model.
func NewModel(model rl.Model, color rl.Color) *Model {
	model.Materials.Maps.Color = color
	return &Model{
		Model:  model,
		Color:  color,
		Scale:  rl.Vector3{X: 1, Y: 1, Z: 1},
		loaded: true,
	}
}

func (m *Model) SetShader(shader rl.Shader) {
	m.Model.Materials.Shader = shader
	m.Model.Materials.Maps.Color = m.Color
}

func (m *Model) Draw() {
	if !m.loaded {
		return
	}

	// Build scale matrix
	scaleMatrix := rl.MatrixScale(m.Scale.X, m.Scale.Y, m.Scale.Z)

	// Build rotation matrix from Euler angles
	rotX := rl.MatrixRotateX(m.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(m.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(m.Rotation.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	transMatrix := rl.MatrixTranslate(m.Position.X, m.Position.Y, m.Position.Z)

	// Combine: scale -> rotate -> translate
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *Model) Unload() {
	if m.loaded {
		rl.UnloadModel(m.Model)
		m.loaded = false
	}
}
