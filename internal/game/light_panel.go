package game

import (
	"fmt"
	"strings"

	"lumen3d/internal/components"
	"lumen3d/internal/engine"
	"lumen3d/internal/render"
	"lumen3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightPanel is the runtime tuning UI for Light components. Every control
// writes through the component's typed setters, so the panel gets the same
// gating and forwarding behaviour scripts do.
type LightPanel struct {
	Visible bool

	lightActive   int32
	lightEdit     bool
	typeActive    int32
	typeEdit      bool
	resActive     int32
	resEdit       bool
	falloffActive int32
	falloffEdit   bool
}

func NewLightPanel() *LightPanel {
	return &LightPanel{}
}

const (
	panelX      = float32(10)
	panelY      = float32(200)
	panelW      = float32(260)
	rowH        = float32(22)
	rowGap      = float32(4)
	labelOffset = float32(8)
)

func (p *LightPanel) Draw(w *world.World) {
	if !p.Visible {
		return
	}

	lights, names := sceneLights(w)
	if len(lights) == 0 {
		gui.Panel(rl.Rectangle{X: panelX, Y: panelY, Width: panelW, Height: 60}, "Lights")
		gui.Label(rl.Rectangle{X: panelX + labelOffset, Y: panelY + 28, Width: panelW - 16, Height: rowH}, "No lights in scene")
		return
	}
	if p.lightActive >= int32(len(lights)) {
		p.lightActive = 0
	}
	l := lights[p.lightActive]

	gui.Panel(rl.Rectangle{X: panelX, Y: panelY, Width: panelW, Height: 480}, "Lights")

	y := panelY + 28
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: panelX + labelOffset, Y: y, Width: panelW - 2*labelOffset, Height: rowH}
		y += rowH + rowGap
		return r
	}

	// Enabled + shadow refresh
	enabledRow := row()
	enabled := gui.CheckBox(rl.Rectangle{X: enabledRow.X, Y: enabledRow.Y, Width: rowH, Height: rowH}, "Enabled", l.Enabled())
	if enabled != l.Enabled() {
		l.SetEnabled(enabled)
	}
	if gui.Button(rl.Rectangle{X: enabledRow.X + 110, Y: enabledRow.Y, Width: enabledRow.Width - 110, Height: rowH}, "Redraw Shadow") {
		l.SetShadowUpdateMode(render.ShadowUpdateThisFrame)
	}

	p.typeActive = int32(l.Type())

	intensity := gui.Slider(sliderBounds(row()), "Intensity", fmt.Sprintf("%.1f", l.Intensity()), l.Intensity(), 0, 5)
	if intensity != l.Intensity() {
		l.SetIntensity(intensity)
	}

	// Color channels
	c := l.Color()
	r := gui.Slider(sliderBounds(row()), "R", fmt.Sprintf("%d", c.R), float32(c.R), 0, 255)
	g := gui.Slider(sliderBounds(row()), "G", fmt.Sprintf("%d", c.G), float32(c.G), 0, 255)
	b := gui.Slider(sliderBounds(row()), "B", fmt.Sprintf("%d", c.B), float32(c.B), 0, 255)
	if uint8(r) != c.R || uint8(g) != c.G || uint8(b) != c.B {
		l.SetColor(rl.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
	}

	// Shadows
	shadowRow := row()
	castShadows := gui.CheckBox(rl.Rectangle{X: shadowRow.X, Y: shadowRow.Y, Width: rowH, Height: rowH}, "Cast Shadows", l.CastShadows())
	if castShadows != l.CastShadows() {
		l.SetCastShadows(castShadows)
	}
	pcf := gui.CheckBox(rl.Rectangle{X: shadowRow.X + 130, Y: shadowRow.Y, Width: rowH, Height: rowH}, "PCF", l.ShadowType() == render.ShadowPCF)
	if pcf != (l.ShadowType() == render.ShadowPCF) {
		if pcf {
			l.SetShadowType(render.ShadowPCF)
		} else {
			l.SetShadowType(render.ShadowHard)
		}
	}

	bias := gui.Slider(sliderBounds(row()), "Bias", fmt.Sprintf("%.2f", l.ShadowBias()), l.ShadowBias(), 0, 2)
	if bias != l.ShadowBias() {
		l.SetShadowBias(bias)
	}
	normalBias := gui.Slider(sliderBounds(row()), "N.Bias", fmt.Sprintf("%.2f", l.NormalOffsetBias()), l.NormalOffsetBias(), 0, 1)
	if normalBias != l.NormalOffsetBias() {
		l.SetNormalOffsetBias(normalBias)
	}

	if l.Type() == render.Directional {
		dist := gui.Slider(sliderBounds(row()), "Distance", fmt.Sprintf("%.0f", l.ShadowDistance()), l.ShadowDistance(), 10, 150)
		if dist != l.ShadowDistance() {
			l.SetShadowDistance(dist)
		}
	}

	if l.Type() == render.Point || l.Type() == render.Spot {
		rng := gui.Slider(sliderBounds(row()), "Range", fmt.Sprintf("%.0f", l.Range()), l.Range(), 1, 60)
		if rng != l.Range() {
			l.SetRange(rng)
		}

		p.falloffActive = int32(l.FalloffMode())
		falloffRow := row()
		if gui.DropdownBox(falloffRow, "linear;inverse squared", &p.falloffActive, p.falloffEdit) {
			p.falloffEdit = !p.falloffEdit
		}
		if render.FalloffMode(p.falloffActive) != l.FalloffMode() {
			l.SetFalloffMode(render.FalloffMode(p.falloffActive))
		}
	}

	if l.Type() == render.Spot {
		inner := gui.Slider(sliderBounds(row()), "Inner", fmt.Sprintf("%.0f", l.InnerConeAngle()), l.InnerConeAngle(), 1, 89)
		if inner != l.InnerConeAngle() {
			l.SetInnerConeAngle(inner)
		}
		outer := gui.Slider(sliderBounds(row()), "Outer", fmt.Sprintf("%.0f", l.OuterConeAngle()), l.OuterConeAngle(), 1, 90)
		if outer != l.OuterConeAngle() {
			l.SetOuterConeAngle(outer)
		}
	}

	// Mask toggles
	maskRow := row()
	dyn := gui.CheckBox(rl.Rectangle{X: maskRow.X, Y: maskRow.Y, Width: rowH, Height: rowH}, "Dynamic", l.AffectDynamic())
	if dyn != l.AffectDynamic() {
		l.SetAffectDynamic(dyn)
	}
	bake := gui.CheckBox(rl.Rectangle{X: maskRow.X + 100, Y: maskRow.Y, Width: rowH, Height: rowH}, "Bake", l.Bake())
	if bake != l.Bake() {
		l.SetBake(bake)
	}
	lmRow := row()
	lm := gui.CheckBox(rl.Rectangle{X: lmRow.X, Y: lmRow.Y, Width: rowH, Height: rowH}, "Lightmapped", l.AffectLightmapped())
	if lm != l.AffectLightmapped() {
		l.SetAffectLightmapped(lm)
	}
	gui.Label(row(), fmt.Sprintf("mask: %03b", l.Mask()))

	// Shadow resolution
	p.resActive = resolutionIndex(l.ShadowResolution())
	resRow := row()
	if gui.DropdownBox(resRow, resolutionChoices(), &p.resActive, p.resEdit) {
		p.resEdit = !p.resEdit
	}
	if render.ShadowResolutions[p.resActive] != l.ShadowResolution() {
		l.SetShadowResolution(render.ShadowResolutions[p.resActive])
	}

	// Type dropdown. Drawn near-last so the open list overlaps rows below it.
	typeRow := row()
	if gui.DropdownBox(typeRow, "directional;point;spot", &p.typeActive, p.typeEdit) {
		p.typeEdit = !p.typeEdit
	}
	if render.LightType(p.typeActive) != l.Type() {
		l.SetType(render.LightType(p.typeActive))
	}

	// Light selector, last for the same reason.
	selRow := row()
	if gui.DropdownBox(selRow, strings.Join(names, ";"), &p.lightActive, p.lightEdit) {
		p.lightEdit = !p.lightEdit
	}
}

func sliderBounds(r rl.Rectangle) rl.Rectangle {
	return rl.Rectangle{X: r.X + 60, Y: r.Y, Width: r.Width - 100, Height: r.Height}
}

// sceneLights collects every Light component in the scene, with the owning
// GameObject names for the selector.
func sceneLights(w *world.World) ([]*components.Light, []string) {
	var lights []*components.Light
	var names []string
	for _, g := range w.Scene.GameObjects {
		if l := engine.GetComponent[*components.Light](g); l != nil {
			lights = append(lights, l)
			names = append(names, g.Name)
		}
	}
	return lights, names
}

func resolutionIndex(res int32) int32 {
	for i, r := range render.ShadowResolutions {
		if r == res {
			return int32(i)
		}
	}
	return int32(len(render.ShadowResolutions) - 1)
}

func resolutionChoices() string {
	parts := make([]string, len(render.ShadowResolutions))
	for i, r := range render.ShadowResolutions {
		parts[i] = fmt.Sprintf("%d px", r)
	}
	return strings.Join(parts, ";")
}
