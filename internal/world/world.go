package world

import (
	"lumen3d/internal/components"
	"lumen3d/internal/engine"
	"lumen3d/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 60.0

// World wires the GameObject scene to the renderer: one engine scene for
// behaviour, one render scene the components attach their render objects to,
// and the light system bridging Light components to renderer lights.
type World struct {
	Scene       *engine.Scene
	RenderScene *render.Scene
	Renderer    *render.Renderer
	Lights      *components.LightSystem

	floor *render.Model
}

func New() *World {
	renderScene := render.NewScene()
	w := &World{
		Scene:       engine.NewScene("Main"),
		RenderScene: renderScene,
		Renderer:    render.NewRenderer(),
		Lights:      components.NewLightSystem(renderScene),
	}
	w.Lights.IndicatorModel = lightIndicatorModel
	return w
}

// Initialize loads GPU resources. Must run after the window exists.
func (w *World) Initialize() {
	w.Renderer.Initialize(FloorSize + 20)

	floorMesh := rl.GenMeshPlane(FloorSize, FloorSize, 1, 1)
	w.floor = render.NewModel(rl.LoadModelFromMesh(floorMesh), rl.LightGray)
	w.floor.SetShader(w.Renderer.Shader)
	w.RenderScene.AddModel(w.floor)

	// Model renderers pick up the lighting shader and render scene before
	// the enable path fires in Scene.Start.
	for _, g := range w.Scene.GameObjects {
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			mr.SetRenderScene(w.RenderScene)
			mr.SetShader(w.Renderer.Shader)
		}
	}

	w.Scene.Start()
}

// AddGameObject adds g to the engine scene and registers any light
// components on g and its children with the light system.
func (w *World) AddGameObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.registerLights(g)
}

func (w *World) registerLights(g *engine.GameObject) {
	if l := engine.GetComponent[*components.Light](g); l != nil {
		w.Lights.Register(l)
	}
	for _, child := range g.Children {
		w.registerLights(child)
	}
}

// RemoveGameObject detaches the render objects of g and its children and
// removes the whole subtree from the engine scene. The engine removes
// children recursively, so registration has to unwind the same way.
func (w *World) RemoveGameObject(g *engine.GameObject) {
	w.detachRenderObjects(g)
	w.Scene.RemoveGameObject(g)
}

func (w *World) detachRenderObjects(g *engine.GameObject) {
	for _, child := range g.Children {
		w.detachRenderObjects(child)
	}
	if l := engine.GetComponent[*components.Light](g); l != nil {
		w.Lights.Unregister(l)
	}
	if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
		mr.OnDisable()
	}
}

// MainCamera returns the first active camera component marked main.
func (w *World) MainCamera() *components.Camera {
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		if cam := engine.GetComponent[*components.Camera](g); cam != nil && cam.IsMain {
			return cam
		}
	}
	return nil
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Lights.Update()
}

// DrawShadowMap runs the shadow pass. Outside of 3D mode.
func (w *World) DrawShadowMap() {
	w.Renderer.DrawShadowMap(w.RenderScene)
}

// DrawWithShadows runs the lit pass. Must run inside BeginMode3D.
func (w *World) DrawWithShadows(cameraPos rl.Vector3) {
	w.Renderer.DrawWithShadows(cameraPos, w.RenderScene)
}

func (w *World) Unload() {
	w.Renderer.Unload(w.RenderScene)
}

// lightIndicatorModel builds the unlit gizmo shown at a light's position
// while it is enabled.
func lightIndicatorModel(t render.LightType) *render.Model {
	var mesh rl.Mesh
	switch t {
	case render.Spot:
		mesh = rl.GenMeshCone(0.4, 0.8, 8)
	case render.Point:
		mesh = rl.GenMeshSphere(0.3, 8, 8)
	default:
		mesh = rl.GenMeshSphere(0.5, 8, 8)
	}
	m := render.NewModel(rl.LoadModelFromMesh(mesh), rl.Yellow)
	m.Unlit = true
	return m
}
