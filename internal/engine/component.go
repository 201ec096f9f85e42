package engine

// Component is the behavior unit attached to a GameObject.
// OnEnable/OnDisable fire when the component becomes (in)active as part of
// the owning GameObject's lifecycle; both must be safe to call repeatedly.
type Component interface {
	Start()
	Update(deltaTime float32)
	OnEnable()
	OnDisable()
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Enableable is implemented by components that carry their own enabled flag
// on top of the GameObject's Active state.
type Enableable interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
	disabled   bool // zero value keeps components enabled by default
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) OnEnable() {}

func (b *BaseComponent) OnDisable() {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Enabled reports the component-level flag. The component is only live when
// this is true and the owning GameObject is active.
func (b *BaseComponent) Enabled() bool {
	return !b.disabled
}

func (b *BaseComponent) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// ObjectActive reports whether the owning GameObject exists and is active.
func (b *BaseComponent) ObjectActive() bool {
	return b.gameObject != nil && b.gameObject.Active
}
