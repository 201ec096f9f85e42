package render

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxLights is the size of the shader-side light array.
const MaxLights = 8

// Renderer owns the lighting shader and the shadow pass. It consumes the
// render Scene: whatever models and lights are attached when a frame is
// drawn are what gets rendered.
type Renderer struct {
	Shader     rl.Shader
	MatLightVP rl.Matrix
	Ambient    [4]float32

	// Half-extent of the shadow-casting ortho volume.
	orthoSize float32

	lightCamera rl.Camera3D
}

func NewRenderer() *Renderer {
	return &Renderer{
		Ambient:   [4]float32{0.1, 0.1, 0.1, 1.0},
		orthoSize: 80,
	}
}

func (r *Renderer) Initialize(orthoSize float32) {
	r.orthoSize = orthoSize

	// Load lighting shader
	r.Shader = rl.LoadShader("assets/shaders/lighting.vs", "assets/shaders/lighting.fs")

	// Set shader locations for material maps so raylib knows where to bind them
	locs := unsafe.Slice(r.Shader.Locs, rl.ShaderLocMapCubemap+1)
	locs[rl.ShaderLocMapNormal] = rl.GetShaderLocation(r.Shader, "texture1")

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	rl.SetShaderValue(r.Shader, ambientLoc, r.Ambient[:], rl.ShaderUniformVec4)
}

// shadowLight picks the light the shadow pass renders for: the first
// enabled shadow-casting directional light attached to the scene.
func (r *Renderer) shadowLight(scene *Scene) *Light {
	for _, l := range scene.Lights() {
		if l.Enabled() && l.CastShadows() && l.Type() == Directional {
			return l
		}
	}
	return nil
}

// UpdateLights pushes the scene's light list into the shader uniform array.
func (r *Renderer) UpdateLights(scene *Scene) {
	count := 0
	for _, l := range scene.Lights() {
		if count >= MaxLights {
			break
		}
		if !l.Enabled() {
			continue
		}
		r.uploadLight(count, l)
		count++
	}
	countLoc := rl.GetShaderLocation(r.Shader, "lightCount")
	rl.SetShaderValue(r.Shader, countLoc, []int32{int32(count)}, rl.ShaderUniformInt)
}

func (r *Renderer) uploadLight(index int, l *Light) {
	name := func(field string) int32 {
		return rl.GetShaderLocation(r.Shader, fmt.Sprintf("lights[%d].%s", index, field))
	}

	pos := l.Position()
	dir := l.Direction()

	rl.SetShaderValue(r.Shader, name("type"), []int32{int32(l.Type())}, rl.ShaderUniformInt)
	rl.SetShaderValue(r.Shader, name("position"), []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.Shader, name("direction"), []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.Shader, name("color"), l.ColorFloat(), rl.ShaderUniformVec4)
	rl.SetShaderValue(r.Shader, name("range"), []float32{l.AttenuationEnd()}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.Shader, name("innerCos"), []float32{coneCos(l.InnerConeAngle())}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.Shader, name("outerCos"), []float32{coneCos(l.OuterConeAngle())}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.Shader, name("falloff"), []int32{int32(l.Falloff())}, rl.ShaderUniformInt)
	rl.SetShaderValue(r.Shader, name("mask"), []int32{int32(l.Mask())}, rl.ShaderUniformInt)
}

func coneCos(deg float32) float32 {
	return cos32(deg * rl.Deg2rad)
}

// DrawShadowMap renders the shadow pass when the shadow light's map is
// stale (realtime mode, or an explicit UpdateShadow since the last pass).
func (r *Renderer) DrawShadowMap(scene *Scene) {
	light := r.shadowLight(scene)
	if light == nil || !light.ShadowStale() {
		return
	}

	shadowMap := shadowMapFor(light)
	r.updateLightCamera(light)

	rl.BeginTextureMode(shadowMap.Target)
	rl.ClearBackground(rl.White)

	rl.BeginMode3D(r.lightCamera)

	far := light.ShadowDistance()
	if far > ShadowFar {
		far = ShadowFar
	}
	halfSize := r.lightCamera.Fovy / 2.0
	shadowProj := rl.MatrixOrtho(
		-halfSize, halfSize,
		-halfSize, halfSize,
		ShadowNear, far,
	)
	rl.SetMatrixProjection(shadowProj)

	lightView := rl.GetMatrixModelview()
	lightProj := rl.GetMatrixProjection()

	rl.SetCullFace(0)
	r.drawModels(scene, true)
	rl.SetCullFace(1)

	rl.EndMode3D()
	rl.EndTextureMode()

	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))

	r.MatLightVP = rl.MatrixMultiply(lightView, lightProj)
	light.shadowDirty = false
}

func (r *Renderer) updateLightCamera(light *Light) {
	dir := light.Direction()
	r.lightCamera = rl.Camera3D{
		Position:   rl.Vector3Scale(dir, -light.ShadowDistance()),
		Target:     rl.Vector3Zero(),
		Up:         lightCameraUp(dir),
		Fovy:       r.orthoSize,
		Projection: rl.CameraOrthographic,
	}
}

// DrawWithShadows renders the main lit pass. Must run inside BeginMode3D.
func (r *Renderer) DrawWithShadows(cameraPos rl.Vector3, scene *Scene) {
	r.UpdateLights(scene)

	viewPosLoc := rl.GetShaderLocation(r.Shader, "viewPos")
	rl.SetShaderValue(r.Shader, viewPosLoc, []float32{cameraPos.X, cameraPos.Y, cameraPos.Z}, rl.ShaderUniformVec3)

	light := r.shadowLight(scene)
	hasShadow := int32(0)
	if light != nil && light.shadowMap != nil {
		hasShadow = 1

		lightVPLoc := rl.GetShaderLocation(r.Shader, "matLightVP")
		rl.SetShaderValueMatrix(r.Shader, lightVPLoc, r.MatLightVP)

		biasLoc := rl.GetShaderLocation(r.Shader, "shadowBias")
		rl.SetShaderValue(r.Shader, biasLoc, []float32{light.ShadowBias()}, rl.ShaderUniformFloat)

		normalBiasLoc := rl.GetShaderLocation(r.Shader, "normalOffsetBias")
		rl.SetShaderValue(r.Shader, normalBiasLoc, []float32{light.NormalOffsetBias()}, rl.ShaderUniformFloat)

		pcfLoc := rl.GetShaderLocation(r.Shader, "shadowPCF")
		rl.SetShaderValue(r.Shader, pcfLoc, []int32{int32(light.ShadowTypeValue())}, rl.ShaderUniformInt)

		shadowMapLoc := rl.GetShaderLocation(r.Shader, "shadowMap")
		rl.EnableShader(r.Shader.ID)

		textureSlot := int32(10)
		rl.ActiveTextureSlot(textureSlot)
		rl.EnableTexture(light.shadowMap.Target.Depth.ID)
		rl.SetUniform(shadowMapLoc, []int32{textureSlot}, int32(rl.ShaderUniformInt), 1)
	}
	hasShadowLoc := rl.GetShaderLocation(r.Shader, "hasShadowMap")
	rl.SetShaderValue(r.Shader, hasShadowLoc, []int32{hasShadow}, rl.ShaderUniformInt)

	r.drawModels(scene, false)
}

func (r *Renderer) drawModels(scene *Scene, shadowPass bool) {
	for _, m := range scene.Models() {
		if shadowPass && m.Unlit {
			continue
		}
		m.Draw()
	}
}

func (r *Renderer) Unload(scene *Scene) {
	rl.UnloadShader(r.Shader)
	for _, l := range scene.Lights() {
		if l.shadowMap != nil {
			l.shadowMap.Unload()
			l.shadowMap = nil
		}
	}
	for _, m := range scene.Models() {
		m.Unload()
	}
}

func lightCameraUp(lightDir rl.Vector3) rl.Vector3 {
	if abs32(lightDir.Y) > 0.9 {
		return rl.Vector3{X: 0, Y: 0, Z: 1}
	}
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}
