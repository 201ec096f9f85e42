package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type LightType int32

const (
	Directional LightType = iota
	Point
	Spot
)

func (t LightType) String() string {
	switch t {
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Spot:
		return "spot"
	}
	return "unknown"
}

// FalloffMode selects the attenuation curve for point and spot lights.
type FalloffMode int32

const (
	FalloffLinear FalloffMode = iota
	FalloffInverseSquared
)

// ShadowType selects the shadow sampling algorithm.
type ShadowType int32

const (
	ShadowHard ShadowType = iota
	ShadowPCF
)

// ShadowUpdateMode controls how often a light's shadow map is re-rendered.
type ShadowUpdateMode int32

const (
	ShadowUpdateRealtime ShadowUpdateMode = iota // every frame
	ShadowUpdateThisFrame                        // once, then drops to none
	ShadowUpdateNone                             // cached
)

// Mask bits controlling which renderable categories a light affects.
const (
	MaskDynamic  uint32 = 1 << 0
	MaskBaked    uint32 = 1 << 1
	MaskLightmap uint32 = 1 << 2
)

// ShadowResolutions are the supported shadow map sizes.
var ShadowResolutions = []int32{64, 128, 256, 512, 1024, 2048}

// Light is the renderer-side light object. Components drive it through the
// setters; the renderer reads it during the shadow and lit passes. Setters
// store state only and never touch the GPU, so lights are usable headless.
type Light struct {
	typ      LightType
	enabled  bool
	position rl.Vector3
	// Direction the light emits in. Meaningful for directional and spot.
	direction rl.Vector3

	color     rl.Color
	intensity float32

	castShadows      bool
	shadowDistance   float32
	shadowResolution int32
	shadowBias       float32
	normalOffsetBias float32
	shadowType       ShadowType
	shadowUpdateMode ShadowUpdateMode

	attenuationEnd float32
	innerConeAngle float32 // degrees
	outerConeAngle float32 // degrees
	falloff        FalloffMode

	mask uint32

	// Bake state, owned by the (out of scope) lightmapper. The component's
	// mask toggles read these.
	hasLightmap bool
	baked       bool

	shadowMap   *ShadowMap
	shadowDirty bool
}

// NewLight creates a light of the given type with renderer defaults.
// Creating the correct subtype is the light system's job, not the
// component's.
func NewLight(typ LightType) *Light {
	l := &Light{
		typ:              typ,
		direction:        rl.Vector3{X: 0, Y: -1, Z: 0},
		color:            rl.White,
		intensity:        1.0,
		shadowDistance:   40.0,
		shadowResolution: 1024,
		shadowBias:       -0.0005,
		shadowUpdateMode: ShadowUpdateRealtime,
		mask:             MaskDynamic,
		shadowDirty:      true,
	}
	switch typ {
	case Point:
		l.attenuationEnd = 10.0
	case Spot:
		l.attenuationEnd = 10.0
		l.innerConeAngle = 40.0
		l.outerConeAngle = 45.0
	}
	return l
}

func (l *Light) Type() LightType { return l.typ }

func (l *Light) SetEnabled(enabled bool) { l.enabled = enabled }
func (l *Light) Enabled() bool           { return l.enabled }

func (l *Light) SetPosition(p rl.Vector3) { l.position = p }
func (l *Light) Position() rl.Vector3     { return l.position }

func (l *Light) SetDirection(d rl.Vector3) { l.direction = d }
func (l *Light) Direction() rl.Vector3     { return l.direction }

func (l *Light) SetColor(c rl.Color) { l.color = c }
func (l *Light) Color() rl.Color     { return l.color }

func (l *Light) SetIntensity(v float32) { l.intensity = v }
func (l *Light) Intensity() float32     { return l.intensity }

func (l *Light) SetCastShadows(v bool) {
	l.castShadows = v
	l.shadowDirty = true
}
func (l *Light) CastShadows() bool { return l.castShadows }

func (l *Light) SetShadowDistance(v float32) {
	l.shadowDistance = v
	l.shadowDirty = true
}
func (l *Light) ShadowDistance() float32 { return l.shadowDistance }

// SetShadowResolution stores the requested shadow map size. The framebuffer
// itself is (re)allocated lazily by the renderer, which owns the GL context.
func (l *Light) SetShadowResolution(size int32) {
	l.shadowResolution = size
	l.shadowDirty = true
}
func (l *Light) ShadowResolution() int32 { return l.shadowResolution }

func (l *Light) SetShadowBias(v float32) {
	l.shadowBias = v
	l.shadowDirty = true
}
func (l *Light) ShadowBias() float32 { return l.shadowBias }

func (l *Light) SetNormalOffsetBias(v float32) {
	l.normalOffsetBias = v
	l.shadowDirty = true
}
func (l *Light) NormalOffsetBias() float32 { return l.normalOffsetBias }

func (l *Light) SetShadowType(t ShadowType) {
	l.shadowType = t
	l.shadowDirty = true
}
func (l *Light) ShadowTypeValue() ShadowType { return l.shadowType }

func (l *Light) SetShadowUpdateMode(m ShadowUpdateMode) { l.shadowUpdateMode = m }
func (l *Light) ShadowUpdateModeValue() ShadowUpdateMode {
	return l.shadowUpdateMode
}

// SetAttenuationEnd sets the distance at which attenuation reaches zero.
func (l *Light) SetAttenuationEnd(v float32) { l.attenuationEnd = v }
func (l *Light) AttenuationEnd() float32     { return l.attenuationEnd }

func (l *Light) SetInnerConeAngle(deg float32) { l.innerConeAngle = deg }
func (l *Light) InnerConeAngle() float32       { return l.innerConeAngle }

func (l *Light) SetOuterConeAngle(deg float32) { l.outerConeAngle = deg }
func (l *Light) OuterConeAngle() float32       { return l.outerConeAngle }

func (l *Light) SetFalloffMode(m FalloffMode) { l.falloff = m }
func (l *Light) Falloff() FalloffMode         { return l.falloff }

func (l *Light) SetMask(mask uint32) { l.mask = mask }
func (l *Light) Mask() uint32        { return l.mask }

func (l *Light) SetHasLightmap(v bool) { l.hasLightmap = v }
func (l *Light) HasLightmap() bool     { return l.hasLightmap }

func (l *Light) SetBaked(v bool) { l.baked = v }
func (l *Light) Baked() bool     { return l.baked }

// UpdateShadow marks the cached shadow map stale so the next shadow pass
// re-renders it regardless of the update mode.
func (l *Light) UpdateShadow() { l.shadowDirty = true }

// ShadowStale reports whether the shadow pass should render this light's
// shadow map this frame.
func (l *Light) ShadowStale() bool {
	if !l.castShadows || !l.enabled {
		return false
	}
	return l.shadowUpdateMode == ShadowUpdateRealtime || l.shadowDirty
}

// ColorFloat returns the intensity-scaled RGB color for shader upload.
func (l *Light) ColorFloat() []float32 {
	return []float32{
		float32(l.color.R) / 255.0 * l.intensity,
		float32(l.color.G) / 255.0 * l.intensity,
		float32(l.color.B) / 255.0 * l.intensity,
		1.0,
	}
}
