package world

import (
	"encoding/json"
	"fmt"
	"os"

	"lumen3d/internal/components"
	"lumen3d/internal/engine"
	"lumen3d/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

// ModelRenderer defs carry mesh provenance, so they cannot go through the
// generic component registry: the mesh has to be generated at load time.
type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh"`
	MeshSize []float32 `json:"meshSize,omitempty"`
	Color    string    `json:"color"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = rl.Vector3{X: objDef.Position[0], Y: objDef.Position[1], Z: objDef.Position[2]}
		g.Transform.Rotation = rl.Vector3{X: objDef.Rotation[0], Y: objDef.Rotation[1], Z: objDef.Rotation[2]}

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = rl.Vector3{X: objDef.Scale[0], Y: objDef.Scale[1], Z: objDef.Scale[2]}
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				continue
			}

			if header.Type == "ModelRenderer" {
				w.loadModelRenderer(g, raw)
				continue
			}
			loadRegistered(g, header.Type, raw)
		}

		w.AddGameObject(g)
	}

	return nil
}

func (w *World) loadModelRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}

	var mesh rl.Mesh
	switch def.Mesh {
	case "cube":
		if len(def.MeshSize) < 3 {
			return
		}
		mesh = rl.GenMeshCube(def.MeshSize[0], def.MeshSize[1], def.MeshSize[2])
	case "plane":
		if len(def.MeshSize) < 2 {
			return
		}
		mesh = rl.GenMeshPlane(def.MeshSize[0], def.MeshSize[1], 1, 1)
	case "sphere":
		if len(def.MeshSize) < 1 {
			return
		}
		mesh = rl.GenMeshSphere(def.MeshSize[0], 16, 16)
	default:
		return
	}

	color := lookupColor(def.Color)
	model := render.NewModel(rl.LoadModelFromMesh(mesh), color)
	renderer := components.NewModelRenderer(model, color)
	renderer.MeshType = def.Mesh
	renderer.MeshSize = def.MeshSize
	g.AddComponent(renderer)
}

// loadRegistered builds any component registered in the engine's component
// registry from its serialized form.
func loadRegistered(g *engine.GameObject, typeName string, raw json.RawMessage) {
	s := engine.CreateComponent(typeName)
	if s == nil {
		return
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	s.Deserialize(data)

	if c, ok := s.(engine.Component); ok {
		g.AddComponent(c)
	}
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	if mr, ok := c.(*components.ModelRenderer); ok {
		if mr.MeshType == "" {
			return nil
		}
		def = modelRendererDef{
			Type:     "ModelRenderer",
			Mesh:     mr.MeshType,
			MeshSize: mr.MeshSize,
			Color:    lookupColorName(mr.Color),
		}
	} else if s, ok := c.(engine.Serializable); ok {
		def = s.Serialize()
	} else {
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
