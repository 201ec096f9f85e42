package game

import (
	"fmt"
	"log"
	"time"

	"lumen3d/internal/components"
	"lumen3d/internal/config"
	"lumen3d/internal/engine"
	"lumen3d/internal/render"
	"lumen3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World     *world.World
	Config    *config.Config
	DebugMode bool

	panel *LightPanel

	// Debug timing (ms)
	updateMs float64
	shadowMs float64
	drawMs   float64
}

func New(cfg *config.Config) *Game {
	components.DefaultShadowResolution = cfg.Shadow.Resolution
	components.DefaultShadowDistance = cfg.Shadow.Distance

	return &Game{
		World:  world.New(),
		Config: cfg,
		panel:  NewLightPanel(),
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	// Scene load needs the GL context for mesh generation.
	if err := g.World.LoadScene(g.Config.Scene.Path); err != nil {
		log.Printf("scene %s: %v, using built-in scene", g.Config.Scene.Path, err)
		g.createDefaultScene()
	}

	g.World.Initialize()
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// createDefaultScene is the fallback when no scene file is available: a sun,
// an orbiting spot light and a few cubes.
func (g *Game) createDefaultScene() {
	sun := engine.NewGameObject("Sun")
	sun.Transform.Position = rl.Vector3{X: 0, Y: 25, Z: 0}
	sun.Transform.Rotation = rl.Vector3{X: 20, Y: -30, Z: 0}
	sunLight := components.NewLight()
	sun.AddComponent(sunLight)
	g.World.AddGameObject(sun)
	// Setters need the render light, which exists once the world registers
	// the component.
	sunLight.SetCastShadows(true)

	lamp := engine.NewGameObject("Lamp")
	lampLight := components.NewLight()
	lampLight.Deserialize(map[string]any{"lightType": "spot", "range": 20.0})
	lamp.AddComponent(lampLight)
	lamp.AddComponent(components.NewOrbiter())
	g.World.AddGameObject(lamp)

	for i := 0; i < 5; i++ {
		cube := engine.NewGameObject(fmt.Sprintf("Cube_%d", i))
		cube.Transform.Position = rl.Vector3{X: float32(i*4 - 8), Y: 1.5, Z: 0}
		mesh := rl.GenMeshCube(2, 2, 2)
		model := render.NewModel(rl.LoadModelFromMesh(mesh), rl.SkyBlue)
		mr := components.NewModelRenderer(model, rl.SkyBlue)
		mr.MeshType = "cube"
		mr.MeshSize = []float32{2, 2, 2}
		cube.AddComponent(mr)
		g.World.AddGameObject(cube)
	}

	camObj := engine.NewGameObject("MainCamera")
	camObj.Transform.Position = rl.Vector3{X: 0, Y: 12, Z: 22}
	camObj.Transform.Rotation = rl.Vector3{X: -25, Y: 0, Z: 0}
	cam := components.NewCamera()
	cam.IsMain = true
	camObj.AddComponent(cam)
	g.World.AddGameObject(camObj)
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.World.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}
	if rl.IsKeyDown(rl.KeyLeftControl) && rl.IsKeyPressed(rl.KeyS) {
		if err := g.World.SaveScene(g.Config.Scene.Path); err != nil {
			log.Printf("save scene: %v", err)
		}
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	camera := g.gameCamera()

	// Shadow pass
	shadowStart := time.Now()
	g.World.DrawShadowMap()
	g.shadowMs = float64(time.Since(shadowStart).Microseconds()) / 1000.0

	// Main render
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.DrawWithShadows(camera.Position)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.panel.Draw(g.World)
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) gameCamera() rl.Camera3D {
	if cam := g.World.MainCamera(); cam != nil {
		return cam.GetRaylibCamera()
	}
	// No camera in the scene: fixed overview
	return rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 15, Z: 25},
		Target:     rl.Vector3Zero(),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) DrawUI() {
	rl.DrawText("Tab for light panel, F1 for debug, Ctrl+S to save scene", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	if g.DebugMode {
		rl.DrawText(fmt.Sprintf("Lights:  %d", len(g.World.RenderScene.Lights())), 10, 65, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Models:  %d", len(g.World.RenderScene.Models())), 10, 85, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 110, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Shadows: %.2f ms", g.shadowMs), 10, 130, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 150, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Total:   %.2f ms", g.updateMs+g.shadowMs+g.drawMs), 10, 170, 16, rl.Lime)
	}
}
