package components

import (
	"testing"

	"lumen3d/internal/engine"
	"lumen3d/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLight counts setter calls and captures the last forwarded values.
type recordingLight struct {
	calls map[string]int

	enabled          bool
	color            rl.Color
	intensity        float32
	castShadows      bool
	shadowDistance   float32
	shadowResolution int32
	shadowBias       float32
	normalOffsetBias float32
	shadowType       render.ShadowType
	shadowUpdateMode render.ShadowUpdateMode
	attenuationEnd   float32
	innerConeAngle   float32
	outerConeAngle   float32
	falloff          render.FalloffMode
	mask             uint32

	hasLightmap bool
	baked       bool
}

func newRecordingLight() *recordingLight {
	return &recordingLight{calls: make(map[string]int)}
}

func (r *recordingLight) SetEnabled(v bool) { r.calls["SetEnabled"]++; r.enabled = v }
func (r *recordingLight) SetColor(c rl.Color) {
	r.calls["SetColor"]++
	r.color = c
}
func (r *recordingLight) SetIntensity(v float32) { r.calls["SetIntensity"]++; r.intensity = v }
func (r *recordingLight) SetCastShadows(v bool)  { r.calls["SetCastShadows"]++; r.castShadows = v }
func (r *recordingLight) SetShadowDistance(v float32) {
	r.calls["SetShadowDistance"]++
	r.shadowDistance = v
}
func (r *recordingLight) SetShadowResolution(v int32) {
	r.calls["SetShadowResolution"]++
	r.shadowResolution = v
}
func (r *recordingLight) SetShadowBias(v float32) { r.calls["SetShadowBias"]++; r.shadowBias = v }
func (r *recordingLight) SetNormalOffsetBias(v float32) {
	r.calls["SetNormalOffsetBias"]++
	r.normalOffsetBias = v
}
func (r *recordingLight) SetShadowType(t render.ShadowType) {
	r.calls["SetShadowType"]++
	r.shadowType = t
}
func (r *recordingLight) SetShadowUpdateMode(m render.ShadowUpdateMode) {
	r.calls["SetShadowUpdateMode"]++
	r.shadowUpdateMode = m
}
func (r *recordingLight) SetAttenuationEnd(v float32) {
	r.calls["SetAttenuationEnd"]++
	r.attenuationEnd = v
}
func (r *recordingLight) SetInnerConeAngle(v float32) {
	r.calls["SetInnerConeAngle"]++
	r.innerConeAngle = v
}
func (r *recordingLight) SetOuterConeAngle(v float32) {
	r.calls["SetOuterConeAngle"]++
	r.outerConeAngle = v
}
func (r *recordingLight) SetFalloffMode(m render.FalloffMode) {
	r.calls["SetFalloffMode"]++
	r.falloff = m
}
func (r *recordingLight) SetMask(m uint32) { r.calls["SetMask"]++; r.mask = m }
func (r *recordingLight) Mask() uint32     { return r.mask }
func (r *recordingLight) HasLightmap() bool { return r.hasLightmap }
func (r *recordingLight) Baked() bool       { return r.baked }
func (r *recordingLight) UpdateShadow()     { r.calls["UpdateShadow"]++ }

// newTestLight wires a Light component to a recorder without a system.
func newTestLight(t render.LightType) (*Light, *recordingLight) {
	rec := newRecordingLight()
	l := NewLight()
	l.lightType = t
	l.light = rec
	return l, rec
}

func TestTypeGatedPropertiesStayLatent(t *testing.T) {
	l, rec := newTestLight(render.Directional)

	l.SetInnerConeAngle(30)
	l.SetOuterConeAngle(35)
	l.SetRange(25)
	l.SetFalloffMode(render.FalloffInverseSquared)

	assert.Zero(t, rec.calls["SetInnerConeAngle"], "inner cone must not reach a directional light")
	assert.Zero(t, rec.calls["SetOuterConeAngle"], "outer cone must not reach a directional light")
	assert.Zero(t, rec.calls["SetAttenuationEnd"], "range must not reach a directional light")
	assert.Zero(t, rec.calls["SetFalloffMode"], "falloff must not reach a directional light")

	// The values are stored, not dropped.
	assert.Equal(t, float32(30), l.InnerConeAngle())
	assert.Equal(t, float32(25), l.Range())

	// After a type swap the latent values reach the fresh render light.
	fresh := newRecordingLight()
	l.light = fresh
	l.lightType = render.Spot
	l.refreshProperties()

	assert.Equal(t, float32(30), fresh.innerConeAngle)
	assert.Equal(t, float32(35), fresh.outerConeAngle)
	assert.Equal(t, float32(25), fresh.attenuationEnd)
	assert.Equal(t, render.FalloffInverseSquared, fresh.falloff)
}

func TestShadowDistanceGatedToDirectional(t *testing.T) {
	l, rec := newTestLight(render.Point)

	l.SetShadowDistance(80)
	assert.Zero(t, rec.calls["SetShadowDistance"])

	l2, rec2 := newTestLight(render.Directional)
	l2.SetShadowDistance(80)
	assert.Equal(t, 1, rec2.calls["SetShadowDistance"])
	assert.Equal(t, float32(80), rec2.shadowDistance)
}

func TestShadowBiasRemap(t *testing.T) {
	l, rec := newTestLight(render.Directional)

	l.SetShadowBias(0.05)
	require.Equal(t, 1, rec.calls["SetShadowBias"])
	assert.InDelta(t, -0.0005, rec.shadowBias, 1e-7)

	l.SetShadowBias(-2)
	assert.InDelta(t, 0.02, rec.shadowBias, 1e-7)
}

func TestUnconditionalForwards(t *testing.T) {
	l, rec := newTestLight(render.Point)

	l.SetColor(rl.Red)
	l.SetIntensity(2.5)
	l.SetCastShadows(true)
	l.SetShadowResolution(512)
	l.SetNormalOffsetBias(0.2)
	l.SetShadowType(render.ShadowHard)
	l.SetShadowUpdateMode(render.ShadowUpdateNone)
	l.SetMask(render.MaskDynamic | render.MaskBaked)

	assert.Equal(t, rl.Red, rec.color)
	assert.Equal(t, float32(2.5), rec.intensity)
	assert.True(t, rec.castShadows)
	assert.Equal(t, int32(512), rec.shadowResolution)
	assert.Equal(t, float32(0.2), rec.normalOffsetBias)
	assert.Equal(t, render.ShadowHard, rec.shadowType)
	assert.Equal(t, render.ShadowUpdateNone, rec.shadowUpdateMode)
	assert.Equal(t, render.MaskDynamic|render.MaskBaked, rec.mask)
}

// TestLightMaskTruthTable enumerates every toggle combination against every
// bake-state context.
func TestLightMaskTruthTable(t *testing.T) {
	const (
		d = render.MaskDynamic
		b = render.MaskBaked
		lm = render.MaskLightmap
	)

	cases := []struct {
		bake, affectLightmapped, hasLightmap, baked bool
		want                                        uint32
	}{
		{false, false, false, false, 0},
		{false, false, false, true, 0},
		{false, false, true, false, lm},
		{false, false, true, true, lm},
		{false, true, false, false, b},
		{false, true, false, true, b},
		{false, true, true, false, b},
		{false, true, true, true, b},
		{true, false, false, false, lm},
		{true, false, false, true, lm},
		{true, false, true, false, lm},
		{true, false, true, true, lm},
		{true, true, false, false, b | lm},
		{true, true, false, true, b | lm},
		{true, true, true, false, b},
		{true, true, true, true, b},
	}

	for _, tc := range cases {
		for _, dyn := range []bool{false, true} {
			want := tc.want
			if dyn {
				want |= d
			}
			got := lightMask(dyn, tc.bake, tc.affectLightmapped, tc.hasLightmap, tc.baked)
			assert.Equalf(t, want, got,
				"dyn=%v bake=%v affectLightmapped=%v hasLightmap=%v baked=%v",
				dyn, tc.bake, tc.affectLightmapped, tc.hasLightmap, tc.baked)
		}
	}
}

// Bake on followed by affectLightmapped on, with both context flags set,
// leaves MASK_BAKED set and MASK_LIGHTMAP clear no matter which setter
// runs first.
func TestMaskTogglesCanonicalScenario(t *testing.T) {
	l, rec := newTestLight(render.Point)
	rec.hasLightmap = true
	rec.baked = true

	l.SetAffectDynamic(false)
	l.SetBake(true)
	l.SetAffectLightmapped(true)

	assert.Equal(t, render.MaskBaked, rec.mask)

	// Reverse call order, same result.
	l2, rec2 := newTestLight(render.Point)
	rec2.hasLightmap = true
	rec2.baked = true

	l2.SetAffectDynamic(false)
	l2.SetAffectLightmapped(true)
	l2.SetBake(true)

	assert.Equal(t, render.MaskBaked, rec2.mask)
}

func TestOnEnableIdempotent(t *testing.T) {
	l, rec := newTestLight(render.Directional)
	scene := render.NewScene()
	l.renderScene = scene
	l.model = &render.Model{}

	l.OnEnable()
	l.OnEnable()

	assert.True(t, rec.enabled)
	assert.Len(t, scene.Models(), 1, "double enable must not add the model twice")
}

func TestOnDisableWithoutModel(t *testing.T) {
	l, rec := newTestLight(render.Directional)
	l.renderScene = render.NewScene()

	assert.NotPanics(t, func() { l.OnDisable() })
	assert.False(t, rec.enabled)
}

func TestOnDisableRemovesModelOnce(t *testing.T) {
	l, _ := newTestLight(render.Directional)
	scene := render.NewScene()
	l.renderScene = scene
	l.model = &render.Model{}

	l.OnEnable()
	require.Len(t, scene.Models(), 1)

	l.OnDisable()
	l.OnDisable()
	assert.Empty(t, scene.Models())
}

// A point to spot change followed by a refresh forwards range, falloff and
// both cone angles to the new light object exactly once each.
func TestRefreshAfterPointToSpotForwardsOnce(t *testing.T) {
	l, _ := newTestLight(render.Point)
	l.SetRange(18)
	l.SetFalloffMode(render.FalloffLinear)

	fresh := newRecordingLight()
	l.light = fresh
	l.lightType = render.Spot
	l.refreshProperties()

	assert.Equal(t, 1, fresh.calls["SetAttenuationEnd"])
	assert.Equal(t, 1, fresh.calls["SetFalloffMode"])
	assert.Equal(t, 1, fresh.calls["SetInnerConeAngle"])
	assert.Equal(t, 1, fresh.calls["SetOuterConeAngle"])
	assert.Equal(t, float32(18), fresh.attenuationEnd)
}

func TestSetTypeSwapsRenderLight(t *testing.T) {
	scene := render.NewScene()
	system := NewLightSystem(scene)

	obj := engine.NewGameObject("Lamp")
	l := NewLight()
	l.lightType = render.Point
	obj.AddComponent(l)
	system.Register(l)

	first := system.RenderLightFor(l)
	require.NotNil(t, first)
	require.Equal(t, render.Point, first.Type())

	l.SetRange(30)
	l.SetType(render.Spot)

	second := system.RenderLightFor(l)
	require.NotNil(t, second)
	assert.NotSame(t, first, second, "type change must swap the render light object")
	assert.Equal(t, render.Spot, second.Type())

	// Stored properties were re-applied to the fresh object.
	assert.Equal(t, float32(30), second.AttenuationEnd())
	assert.Equal(t, float32(40), second.InnerConeAngle())

	// The old light left the render scene, the new one joined it.
	assert.False(t, scene.ContainsLight(first))
	assert.True(t, scene.ContainsLight(second))
}

func TestSetTypeSameTypeIsNoop(t *testing.T) {
	// No system attached: a delegated swap would panic.
	l, _ := newTestLight(render.Point)
	assert.NotPanics(t, func() { l.SetType(render.Point) })
}

func TestRefreshTriggersEnablePathWhenActive(t *testing.T) {
	scene := render.NewScene()
	system := NewLightSystem(scene)

	obj := engine.NewGameObject("Lamp")
	l := NewLight()
	obj.AddComponent(l)
	system.Register(l)

	light := system.RenderLightFor(l)
	assert.True(t, light.Enabled(), "registration on an active object enables the render light")

	obj.SetActive(false)
	assert.False(t, light.Enabled())

	obj.SetActive(true)
	assert.True(t, light.Enabled())
}

func TestComponentSetEnabled(t *testing.T) {
	scene := render.NewScene()
	system := NewLightSystem(scene)

	obj := engine.NewGameObject("Lamp")
	l := NewLight()
	obj.AddComponent(l)
	system.Register(l)

	var transitions []bool
	l.EnabledChanged.AddListener(func(v bool) { transitions = append(transitions, v) })

	light := system.RenderLightFor(l)

	l.SetEnabled(false)
	assert.False(t, light.Enabled())

	l.SetEnabled(false) // redundant, must not fire again
	l.SetEnabled(true)
	assert.True(t, light.Enabled())

	assert.Equal(t, []bool{false, true}, transitions)
}

func TestDeprecatedEnableAccessors(t *testing.T) {
	scene := render.NewScene()
	system := NewLightSystem(scene)

	obj := engine.NewGameObject("Lamp")
	l := NewLight()
	obj.AddComponent(l)
	system.Register(l)

	l.SetEnable(false)
	assert.False(t, l.Enable())
	assert.False(t, l.Enabled())

	l.SetEnable(true)
	assert.True(t, l.Enable())
}

func TestChangedEventFiresOnForward(t *testing.T) {
	l, _ := newTestLight(render.Directional)

	fired := 0
	l.Changed.AddListener(func() { fired++ })

	l.SetIntensity(3)
	assert.Equal(t, 1, fired)

	// A latent (gated) set does not count as a change.
	l.SetRange(5)
	assert.Equal(t, 1, fired)
}

func TestUnregisterDetachesFromScene(t *testing.T) {
	scene := render.NewScene()
	system := NewLightSystem(scene)

	obj := engine.NewGameObject("Lamp")
	l := NewLight()
	obj.AddComponent(l)
	system.Register(l)

	light := system.RenderLightFor(l)
	require.True(t, scene.ContainsLight(light))

	system.Unregister(l)
	assert.False(t, scene.ContainsLight(light))
	assert.False(t, light.Enabled())
}

func TestShadowUpdateCadenceThisFrame(t *testing.T) {
	scene := render.NewScene()
	system := NewLightSystem(scene)

	obj := engine.NewGameObject("Lamp")
	l := NewLight()
	obj.AddComponent(l)
	system.Register(l)

	l.SetCastShadows(true)
	l.SetShadowUpdateMode(render.ShadowUpdateThisFrame)

	system.Update()

	light := system.RenderLightFor(l)
	assert.Equal(t, render.ShadowUpdateNone, light.ShadowUpdateModeValue())
	assert.True(t, light.ShadowStale(), "this-frame mode leaves the map flagged for one render")
}

func TestSerializeRoundTrip(t *testing.T) {
	l := NewLight()
	l.lightType = render.Spot
	l.color = rl.Orange
	l.intensity = 2
	l.castShadows = true
	l.shadowResolution = 256
	l.rangeEnd = 12
	l.bake = true

	data := l.Serialize()

	// JSON round-trips arrive as generic types; emulate that.
	decoded := map[string]any{
		"lightType":        data["lightType"],
		"color":            []any{float64(l.color.R), float64(l.color.G), float64(l.color.B)},
		"intensity":        float64(l.intensity),
		"castShadows":      l.castShadows,
		"shadowResolution": float64(l.shadowResolution),
		"range":            float64(l.rangeEnd),
		"bake":             l.bake,
	}

	restored := NewLight()
	restored.Deserialize(decoded)

	assert.Equal(t, render.Spot, restored.Type())
	assert.Equal(t, l.color.R, restored.color.R)
	assert.Equal(t, float32(2), restored.intensity)
	assert.True(t, restored.castShadows)
	assert.Equal(t, int32(256), restored.shadowResolution)
	assert.Equal(t, float32(12), restored.rangeEnd)
	assert.True(t, restored.bake)
}
