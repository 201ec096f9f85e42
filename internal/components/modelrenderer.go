package components

import (
	"lumen3d/internal/engine"
	"lumen3d/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer owns a render model and keeps it attached to the render
// scene while the component is enabled, synced to the GameObject transform.
type ModelRenderer struct {
	engine.BaseComponent
	Model *render.Model
	Color rl.Color

	// Mesh provenance, kept for scene-file round-trips.
	MeshType string
	MeshSize []float32

	renderScene *render.Scene
}

func NewModelRenderer(model *render.Model, color rl.Color) *ModelRenderer {
	model.Color = color
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// SetRenderScene attaches the component to the render scene it adds its
// model to. Must be called before the enable path fires.
func (m *ModelRenderer) SetRenderScene(scene *render.Scene) {
	m.renderScene = scene
}

func (m *ModelRenderer) SetShader(shader rl.Shader) {
	m.Model.SetShader(shader)
}

func (m *ModelRenderer) OnEnable() {
	if m.renderScene != nil && !m.renderScene.ContainsModel(m.Model) {
		m.renderScene.AddModel(m.Model)
	}
}

func (m *ModelRenderer) OnDisable() {
	if m.renderScene != nil && m.renderScene.ContainsModel(m.Model) {
		m.renderScene.RemoveModel(m.Model)
	}
}

func (m *ModelRenderer) Update(deltaTime float32) {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	m.Model.Position = g.WorldPosition()
	m.Model.Rotation = g.WorldRotation()
	m.Model.Scale = g.WorldScale()
}

func (m *ModelRenderer) Unload() {
	m.Model.Unload()
}
