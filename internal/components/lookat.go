package components

import (
	"math"

	"lumen3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("LookAt", func() engine.Serializable {
		return NewLookAt()
	})
}

// LookAt keeps its GameObject rotated towards another object, resolved by
// name once at Start. Pairs with spot lights that should track a target.
type LookAt struct {
	engine.BaseComponent
	TargetName string

	target engine.GameObjectRef
}

func NewLookAt() *LookAt {
	return &LookAt{}
}

func (l *LookAt) Start() {
	g := l.GetGameObject()
	if g == nil || g.Scene == nil || l.TargetName == "" {
		return
	}
	l.target.Set(g.Scene.FindByName(l.TargetName))
}

func (l *LookAt) Update(deltaTime float32) {
	g := l.GetGameObject()
	if g == nil || g.Scene == nil || !l.target.IsValid() {
		return
	}
	target := l.target.Get(g.Scene)
	if target == nil {
		return
	}

	from := g.WorldPosition()
	to := target.WorldPosition()
	d := rl.Vector3Subtract(to, from)

	horiz := float32(math.Sqrt(float64(d.X*d.X + d.Z*d.Z)))

	// Euler angles that rotate the default down-facing emit direction onto d.
	pitch := float32(math.Atan2(float64(horiz), float64(-d.Y))) * rl.Rad2deg
	yaw := float32(math.Atan2(float64(-d.X), float64(-d.Z))) * rl.Rad2deg

	g.Transform.Rotation = rl.Vector3{X: pitch, Y: yaw, Z: 0}
}

// TypeName implements engine.Serializable
func (l *LookAt) TypeName() string {
	return "LookAt"
}

// Serialize implements engine.Serializable
func (l *LookAt) Serialize() map[string]any {
	return map[string]any{
		"type":   "LookAt",
		"target": l.TargetName,
	}
}

// Deserialize implements engine.Serializable
func (l *LookAt) Deserialize(data map[string]any) {
	if v, ok := data["target"].(string); ok {
		l.TargetName = v
	}
}
