package components

import (
	"log"
	"sync"

	"lumen3d/internal/engine"
	"lumen3d/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Light", func() engine.Serializable {
		return NewLight()
	})
}

// RenderLight is the renderer-side light object a Light component drives.
// *render.Light satisfies it; tests substitute recorders.
type RenderLight interface {
	SetEnabled(enabled bool)
	SetColor(c rl.Color)
	SetIntensity(v float32)
	SetCastShadows(v bool)
	SetShadowDistance(v float32)
	SetShadowResolution(size int32)
	SetShadowBias(v float32)
	SetNormalOffsetBias(v float32)
	SetShadowType(t render.ShadowType)
	SetShadowUpdateMode(m render.ShadowUpdateMode)
	SetAttenuationEnd(v float32)
	SetInnerConeAngle(deg float32)
	SetOuterConeAngle(deg float32)
	SetFalloffMode(m render.FalloffMode)
	SetMask(mask uint32)
	Mask() uint32
	HasLightmap() bool
	Baked() bool
	UpdateShadow()
}

// Light binds user-facing light properties to a renderer light object.
//
// Every property is stored on the component, but only forwarded to the
// render light when it applies to the current light type; latent values are
// re-forwarded by refreshProperties after a type change. The component does
// not own the render light or the render scene: both are attached by the
// LightSystem, and every setter assumes they are valid once attached.
type Light struct {
	engine.BaseComponent

	lightType        render.LightType
	color            rl.Color
	intensity        float32
	castShadows      bool
	shadowDistance   float32 // directional only
	shadowResolution int32
	shadowBias       float32
	normalOffsetBias float32
	rangeEnd         float32 // point/spot: attenuation end distance
	innerConeAngle   float32 // spot only, degrees
	outerConeAngle   float32 // spot only, degrees
	falloff          render.FalloffMode // point/spot
	shadowType       render.ShadowType
	shadowUpdateMode render.ShadowUpdateMode

	mask              uint32
	affectDynamic     bool
	affectLightmapped bool
	bake              bool

	light       RenderLight
	model       *render.Model // light indicator, attached while enabled
	renderScene *render.Scene
	system      *LightSystem

	// Changed fires after any property is forwarded to the render light.
	Changed engine.Event
	// EnabledChanged fires on component-level enable state transitions.
	EnabledChanged engine.EventWithArg[bool]

	enableGetWarn sync.Once
	enableSetWarn sync.Once
}

// Shadow defaults new lights start from. The engine config overrides these
// at startup; scene files override them per light.
var (
	DefaultShadowResolution int32   = 1024
	DefaultShadowDistance   float32 = 40.0
)

func NewLight() *Light {
	return &Light{
		lightType:        render.Directional,
		color:            rl.White,
		intensity:        1.0,
		shadowDistance:   DefaultShadowDistance,
		shadowResolution: DefaultShadowResolution,
		shadowBias:       0.05,
		rangeEnd:         10.0,
		innerConeAngle:   40.0,
		outerConeAngle:   45.0,
		shadowType:       render.ShadowPCF,
		shadowUpdateMode: render.ShadowUpdateRealtime,
		mask:             render.MaskDynamic,
		affectDynamic:    true,
	}
}

// attach wires the component to its collaborators. Called by the
// LightSystem on registration and on type changes.
func (l *Light) attach(light RenderLight, scene *render.Scene, system *LightSystem) {
	l.light = light
	l.renderScene = scene
	l.system = system
}

// Type returns the current light type.
func (l *Light) Type() render.LightType { return l.lightType }

// SetType swaps the underlying render light. Creating the correct light
// subtype is the owning system's responsibility; afterwards every stored
// property is re-applied against the fresh object.
func (l *Light) SetType(t render.LightType) {
	if l.lightType == t {
		return
	}
	old := l.lightType
	l.lightType = t
	l.system.ChangeType(l, old, t)
	l.refreshProperties()
}

// refreshProperties re-invokes every property handler with the stored
// value. Used after a type swap since the new render object starts from
// defaults; type-gated handlers still gate internally, so values that do
// not apply stay latent.
func (l *Light) refreshProperties() {
	l.SetColor(l.color)
	l.SetIntensity(l.intensity)
	l.SetCastShadows(l.castShadows)
	l.SetShadowDistance(l.shadowDistance)
	l.SetShadowResolution(l.shadowResolution)
	l.SetShadowBias(l.shadowBias)
	l.SetNormalOffsetBias(l.normalOffsetBias)
	l.SetRange(l.rangeEnd)
	l.SetInnerConeAngle(l.innerConeAngle)
	l.SetOuterConeAngle(l.outerConeAngle)
	l.SetFalloffMode(l.falloff)
	l.SetShadowType(l.shadowType)
	l.SetShadowUpdateMode(l.shadowUpdateMode)
	l.SetMask(l.mask)
	l.applyMaskToggles()

	if l.Enabled() && l.ObjectActive() {
		l.OnEnable()
	}
}

func (l *Light) Color() rl.Color { return l.color }

func (l *Light) SetColor(c rl.Color) {
	l.color = c
	l.light.SetColor(c)
	l.notifyChanged()
}

func (l *Light) Intensity() float32 { return l.intensity }

func (l *Light) SetIntensity(v float32) {
	l.intensity = v
	l.light.SetIntensity(v)
	l.notifyChanged()
}

func (l *Light) CastShadows() bool { return l.castShadows }

func (l *Light) SetCastShadows(v bool) {
	l.castShadows = v
	l.light.SetCastShadows(v)
	l.notifyChanged()
}

func (l *Light) ShadowDistance() float32 { return l.shadowDistance }

// SetShadowDistance applies to directional lights only; for other types the
// value stays latent until the type changes.
func (l *Light) SetShadowDistance(v float32) {
	l.shadowDistance = v
	if l.lightType != render.Directional {
		return
	}
	l.light.SetShadowDistance(v)
	l.notifyChanged()
}

func (l *Light) ShadowResolution() int32 { return l.shadowResolution }

func (l *Light) SetShadowResolution(size int32) {
	l.shadowResolution = size
	l.light.SetShadowResolution(size)
	l.notifyChanged()
}

func (l *Light) ShadowBias() float32 { return l.shadowBias }

// SetShadowBias forwards the bias remapped by a -0.01 factor, matching the
// renderer's internal sign/unit convention.
func (l *Light) SetShadowBias(v float32) {
	l.shadowBias = v
	l.light.SetShadowBias(-0.01 * v)
	l.notifyChanged()
}

func (l *Light) NormalOffsetBias() float32 { return l.normalOffsetBias }

func (l *Light) SetNormalOffsetBias(v float32) {
	l.normalOffsetBias = v
	l.light.SetNormalOffsetBias(v)
	l.notifyChanged()
}

func (l *Light) Range() float32 { return l.rangeEnd }

// SetRange applies to point and spot lights only.
func (l *Light) SetRange(v float32) {
	l.rangeEnd = v
	if l.lightType != render.Point && l.lightType != render.Spot {
		return
	}
	l.light.SetAttenuationEnd(v)
	l.notifyChanged()
}

func (l *Light) InnerConeAngle() float32 { return l.innerConeAngle }

// SetInnerConeAngle applies to spot lights only.
func (l *Light) SetInnerConeAngle(deg float32) {
	l.innerConeAngle = deg
	if l.lightType != render.Spot {
		return
	}
	l.light.SetInnerConeAngle(deg)
	l.notifyChanged()
}

func (l *Light) OuterConeAngle() float32 { return l.outerConeAngle }

// SetOuterConeAngle applies to spot lights only.
func (l *Light) SetOuterConeAngle(deg float32) {
	l.outerConeAngle = deg
	if l.lightType != render.Spot {
		return
	}
	l.light.SetOuterConeAngle(deg)
	l.notifyChanged()
}

func (l *Light) FalloffMode() render.FalloffMode { return l.falloff }

// SetFalloffMode applies to point and spot lights only.
func (l *Light) SetFalloffMode(m render.FalloffMode) {
	l.falloff = m
	if l.lightType != render.Point && l.lightType != render.Spot {
		return
	}
	l.light.SetFalloffMode(m)
	l.notifyChanged()
}

func (l *Light) ShadowType() render.ShadowType { return l.shadowType }

func (l *Light) SetShadowType(t render.ShadowType) {
	l.shadowType = t
	l.light.SetShadowType(t)
	l.notifyChanged()
}

func (l *Light) ShadowUpdateMode() render.ShadowUpdateMode { return l.shadowUpdateMode }

func (l *Light) SetShadowUpdateMode(m render.ShadowUpdateMode) {
	l.shadowUpdateMode = m
	l.light.SetShadowUpdateMode(m)
	l.notifyChanged()
}

func (l *Light) Mask() uint32 { return l.mask }

func (l *Light) SetMask(mask uint32) {
	l.mask = mask
	l.light.SetMask(mask)
	l.notifyChanged()
}

func (l *Light) AffectDynamic() bool { return l.affectDynamic }

func (l *Light) SetAffectDynamic(v bool) {
	l.affectDynamic = v
	l.applyMaskToggles()
}

func (l *Light) AffectLightmapped() bool { return l.affectLightmapped }

func (l *Light) SetAffectLightmapped(v bool) {
	l.affectLightmapped = v
	l.applyMaskToggles()
}

func (l *Light) Bake() bool { return l.bake }

func (l *Light) SetBake(v bool) {
	l.bake = v
	l.applyMaskToggles()
}

// applyMaskToggles recomputes the whole mask from the three toggles plus
// the render light's bake state, instead of three handlers bit-editing
// shared state in event order.
func (l *Light) applyMaskToggles() {
	l.mask = lightMask(l.affectDynamic, l.bake, l.affectLightmapped,
		l.light.HasLightmap(), l.light.Baked())
	l.light.SetMask(l.mask)
	l.notifyChanged()
}

// lightMask is the mask state-transition function. The toggle effects apply
// in a fixed order (affectDynamic, bake, affectLightmapped) so the result
// does not depend on the order the setters ran within a frame.
func lightMask(affectDynamic, bake, affectLightmapped, hasLightmap, baked bool) uint32 {
	var mask uint32

	if affectDynamic {
		mask |= render.MaskDynamic
	}

	if bake {
		mask |= render.MaskLightmap
		if baked {
			mask &^= render.MaskBaked
		}
	} else {
		mask &^= render.MaskLightmap
		if baked {
			mask |= render.MaskBaked
		}
	}

	if affectLightmapped {
		mask |= render.MaskBaked
		if hasLightmap {
			mask &^= render.MaskLightmap
		}
	} else {
		mask &^= render.MaskBaked
		if hasLightmap {
			mask |= render.MaskLightmap
		}
	}

	return mask
}

// OnEnable marks the render light active and attaches the indicator model
// to the render scene. Idempotent: an already-attached model is not added
// twice.
func (l *Light) OnEnable() {
	l.light.SetEnabled(true)
	if l.model != nil && l.renderScene != nil && !l.renderScene.ContainsModel(l.model) {
		l.renderScene.AddModel(l.model)
	}
}

// OnDisable marks the render light inactive and detaches the indicator
// model. Removing an absent model is a guarded no-op.
func (l *Light) OnDisable() {
	l.light.SetEnabled(false)
	if l.model != nil && l.renderScene != nil && l.renderScene.ContainsModel(l.model) {
		l.renderScene.RemoveModel(l.model)
	}
}

// SetEnabled toggles the component flag and runs the enable/disable path
// when the owning GameObject is active.
func (l *Light) SetEnabled(enabled bool) {
	if l.Enabled() == enabled {
		return
	}
	l.BaseComponent.SetEnabled(enabled)
	if l.ObjectActive() {
		if enabled {
			l.OnEnable()
		} else {
			l.OnDisable()
		}
	}
	l.EnabledChanged.Invoke(enabled)
}

// Enable reports whether the component is enabled.
//
// Deprecated: use Enabled.
func (l *Light) Enable() bool {
	l.enableGetWarn.Do(func() {
		log.Println("Light: the Enable accessor is deprecated, use Enabled")
	})
	return l.Enabled()
}

// SetEnable toggles the component.
//
// Deprecated: use SetEnabled.
func (l *Light) SetEnable(enabled bool) {
	l.enableSetWarn.Do(func() {
		log.Println("Light: the SetEnable accessor is deprecated, use SetEnabled")
	})
	l.SetEnabled(enabled)
}

func (l *Light) notifyChanged() {
	// A property change invalidates any cached shadow map.
	l.light.UpdateShadow()
	l.Changed.Invoke()
}

// TypeName implements engine.Serializable
func (l *Light) TypeName() string {
	return "Light"
}

// Serialize implements engine.Serializable
func (l *Light) Serialize() map[string]any {
	return map[string]any{
		"type":              "Light",
		"lightType":         l.lightType.String(),
		"color":             [3]uint8{l.color.R, l.color.G, l.color.B},
		"intensity":         l.intensity,
		"castShadows":       l.castShadows,
		"shadowDistance":    l.shadowDistance,
		"shadowResolution":  l.shadowResolution,
		"shadowBias":        l.shadowBias,
		"normalOffsetBias":  l.normalOffsetBias,
		"range":             l.rangeEnd,
		"innerConeAngle":    l.innerConeAngle,
		"outerConeAngle":    l.outerConeAngle,
		"falloffMode":       int(l.falloff),
		"shadowType":        int(l.shadowType),
		"shadowUpdateMode":  int(l.shadowUpdateMode),
		"affectDynamic":     l.affectDynamic,
		"affectLightmapped": l.affectLightmapped,
		"bake":              l.bake,
	}
}

// Deserialize implements engine.Serializable. Writes the stored values
// directly; the LightSystem forwards them when the component is registered.
func (l *Light) Deserialize(data map[string]any) {
	if t, ok := data["lightType"].(string); ok {
		l.lightType = parseLightType(t)
	}
	if c, ok := data["color"].([]any); ok && len(c) == 3 {
		l.color.R = uint8(toFloat(c[0]))
		l.color.G = uint8(toFloat(c[1]))
		l.color.B = uint8(toFloat(c[2]))
		l.color.A = 255
	}
	if v, ok := data["intensity"].(float64); ok {
		l.intensity = float32(v)
	}
	if v, ok := data["castShadows"].(bool); ok {
		l.castShadows = v
	}
	if v, ok := data["shadowDistance"].(float64); ok {
		l.shadowDistance = float32(v)
	}
	if v, ok := data["shadowResolution"].(float64); ok {
		l.shadowResolution = int32(v)
	}
	if v, ok := data["shadowBias"].(float64); ok {
		l.shadowBias = float32(v)
	}
	if v, ok := data["normalOffsetBias"].(float64); ok {
		l.normalOffsetBias = float32(v)
	}
	if v, ok := data["range"].(float64); ok {
		l.rangeEnd = float32(v)
	}
	if v, ok := data["innerConeAngle"].(float64); ok {
		l.innerConeAngle = float32(v)
	}
	if v, ok := data["outerConeAngle"].(float64); ok {
		l.outerConeAngle = float32(v)
	}
	if v, ok := data["falloffMode"].(float64); ok {
		l.falloff = render.FalloffMode(v)
	}
	if v, ok := data["shadowType"].(float64); ok {
		l.shadowType = render.ShadowType(v)
	}
	if v, ok := data["shadowUpdateMode"].(float64); ok {
		l.shadowUpdateMode = render.ShadowUpdateMode(v)
	}
	if v, ok := data["affectDynamic"].(bool); ok {
		l.affectDynamic = v
	}
	if v, ok := data["affectLightmapped"].(bool); ok {
		l.affectLightmapped = v
	}
	if v, ok := data["bake"].(bool); ok {
		l.bake = v
	}
}

func parseLightType(s string) render.LightType {
	switch s {
	case "point":
		return render.Point
	case "spot":
		return render.Spot
	default:
		return render.Directional
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
