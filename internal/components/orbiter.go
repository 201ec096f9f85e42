package components

import (
	"math"

	"lumen3d/internal/engine"
)

func init() {
	engine.RegisterComponent("Orbiter", func() engine.Serializable {
		return NewOrbiter()
	})
}

// Orbiter moves its GameObject in a horizontal circle around a center
// point. Used in the demo scene to swing a light over the geometry.
type Orbiter struct {
	engine.BaseComponent
	CenterX float32
	CenterZ float32
	Height  float32
	Radius  float32
	Speed   float32 // degrees per second

	angle float32
}

func NewOrbiter() *Orbiter {
	return &Orbiter{
		Height: 8,
		Radius: 10,
		Speed:  30,
	}
}

func (o *Orbiter) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	o.angle += o.Speed * deltaTime
	rad := float64(o.angle) * math.Pi / 180
	g.Transform.Position.X = o.CenterX + o.Radius*float32(math.Cos(rad))
	g.Transform.Position.Y = o.Height
	g.Transform.Position.Z = o.CenterZ + o.Radius*float32(math.Sin(rad))
}

// TypeName implements engine.Serializable
func (o *Orbiter) TypeName() string {
	return "Orbiter"
}

// Serialize implements engine.Serializable
func (o *Orbiter) Serialize() map[string]any {
	return map[string]any{
		"type":    "Orbiter",
		"centerX": o.CenterX,
		"centerZ": o.CenterZ,
		"height":  o.Height,
		"radius":  o.Radius,
		"speed":   o.Speed,
	}
}

// Deserialize implements engine.Serializable
func (o *Orbiter) Deserialize(data map[string]any) {
	if v, ok := data["centerX"].(float64); ok {
		o.CenterX = float32(v)
	}
	if v, ok := data["centerZ"].(float64); ok {
		o.CenterZ = float32(v)
	}
	if v, ok := data["height"].(float64); ok {
		o.Height = float32(v)
	}
	if v, ok := data["radius"].(float64); ok {
		o.Radius = float32(v)
	}
	if v, ok := data["speed"].(float64); ok {
		o.Speed = float32(v)
	}
}
