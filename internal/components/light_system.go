package components

import (
	"log"

	"lumen3d/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightSystem owns the renderer-side objects behind Light components: it
// creates the render light for each component, swaps it when the component
// type changes, and keeps transforms and shadow cadence in sync each frame.
type LightSystem struct {
	renderScene *render.Scene
	lights      map[*Light]*render.Light

	// IndicatorModel, when set, builds the editor-style indicator model
	// attached to the render scene while a light is enabled. Left nil in
	// headless use.
	IndicatorModel func(t render.LightType) *render.Model
}

func NewLightSystem(renderScene *render.Scene) *LightSystem {
	return &LightSystem{
		renderScene: renderScene,
		lights:      make(map[*Light]*render.Light),
	}
}

// Register creates the render light for c and forwards the component's
// stored properties onto it. Must run before the component's enable path
// can fire.
func (s *LightSystem) Register(c *Light) {
	if _, exists := s.lights[c]; exists {
		return
	}
	light := render.NewLight(c.Type())
	s.lights[c] = light
	s.renderScene.AddLight(light)

	c.attach(light, s.renderScene, s)
	if s.IndicatorModel != nil {
		c.model = s.IndicatorModel(c.Type())
	}
	c.refreshProperties()
}

// Unregister detaches the component's render objects from the scene.
func (s *LightSystem) Unregister(c *Light) {
	light, ok := s.lights[c]
	if !ok {
		return
	}
	c.OnDisable()
	s.renderScene.RemoveLight(light)
	delete(s.lights, c)
}

// ChangeType swaps the render light implementation behind c. The component
// re-applies its stored properties afterwards via refreshProperties; this
// only replaces the object.
func (s *LightSystem) ChangeType(c *Light, oldType, newType render.LightType) {
	if old, ok := s.lights[c]; ok {
		old.SetEnabled(false)
		s.renderScene.RemoveLight(old)
	}

	log.Printf("LightSystem: %v -> %v", oldType, newType)

	light := render.NewLight(newType)
	s.lights[c] = light
	s.renderScene.AddLight(light)

	// The indicator model follows the light type.
	if s.IndicatorModel != nil {
		if c.model != nil && c.renderScene != nil && c.renderScene.ContainsModel(c.model) {
			c.renderScene.RemoveModel(c.model)
		}
		c.model = s.IndicatorModel(newType)
	}

	c.attach(light, s.renderScene, s)
}

// RenderLightFor exposes the concrete render light behind a component,
// mainly for the renderer and tests.
func (s *LightSystem) RenderLightFor(c *Light) *render.Light {
	return s.lights[c]
}

// Update syncs transforms from the owning GameObjects and advances the
// shadow update cadence.
func (s *LightSystem) Update() {
	for c, light := range s.lights {
		if g := c.GetGameObject(); g != nil {
			pos := g.WorldPosition()
			light.SetPosition(pos)
			light.SetDirection(forwardFromEuler(g.WorldRotation()))
			if c.model != nil {
				c.model.Position = pos
			}
		}

		if light.ShadowUpdateModeValue() == render.ShadowUpdateThisFrame {
			light.UpdateShadow()
			light.SetShadowUpdateMode(render.ShadowUpdateNone)
		}
	}
}

// forwardFromEuler rotates the default emit direction (straight down for
// lights, matching the indicator gizmo) by the object's Euler rotation.
func forwardFromEuler(rot rl.Vector3) rl.Vector3 {
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
	return rl.Vector3Transform(rl.Vector3{X: 0, Y: -1, Z: 0}, rotMatrix)
}
