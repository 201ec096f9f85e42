package world

import (
	"os"
	"path/filepath"
	"testing"

	"lumen3d/internal/components"
	"lumen3d/internal/engine"
	"lumen3d/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `{
  "objects": [
    {
      "name": "Sun",
      "position": [0, 20, 0],
      "rotation": [50, -30, 0],
      "scale": [0, 0, 0],
      "components": [
        {
          "type": "Light",
          "lightType": "directional",
          "intensity": 1.2,
          "castShadows": true,
          "shadowDistance": 60
        }
      ]
    },
    {
      "name": "Lamp",
      "tags": ["lights"],
      "position": [3, 5, -2],
      "rotation": [0, 0, 0],
      "scale": [0, 0, 0],
      "components": [
        {
          "type": "Light",
          "lightType": "spot",
          "range": 15,
          "innerConeAngle": 20,
          "outerConeAngle": 28
        },
        {
          "type": "Orbiter",
          "radius": 6,
          "speed": 45
        }
      ]
    },
    {
      "name": "MainCamera",
      "position": [0, 10, 18],
      "rotation": [-25, 0, 0],
      "scale": [0, 0, 0],
      "components": [
        {"type": "Camera", "fov": 60, "isMain": true}
      ]
    }
  ]
}`

// newHeadlessWorld builds a world without any GPU-touching pieces.
func newHeadlessWorld() *World {
	w := New()
	w.Lights.IndicatorModel = nil
	return w
}

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScene(t *testing.T) {
	w := newHeadlessWorld()
	require.NoError(t, w.LoadScene(writeScene(t, testScene)))
	require.Len(t, w.Scene.GameObjects, 3)

	sun := w.Scene.FindByName("Sun")
	require.NotNil(t, sun)
	assert.Equal(t, float32(20), sun.Transform.Position.Y)
	assert.Equal(t, float32(1), sun.Transform.Scale.X, "zero scale defaults to 1")

	sunLight := engine.GetComponent[*components.Light](sun)
	require.NotNil(t, sunLight)
	assert.Equal(t, render.Directional, sunLight.Type())
	assert.Equal(t, float32(1.2), sunLight.Intensity())
	assert.True(t, sunLight.CastShadows())

	// The loader registered the light: its render object exists, lives in
	// the render scene, and carries the forwarded properties.
	rl := w.Lights.RenderLightFor(sunLight)
	require.NotNil(t, rl)
	assert.True(t, w.RenderScene.ContainsLight(rl))
	assert.Equal(t, float32(60), rl.ShadowDistance())

	lamp := w.Scene.FindByName("Lamp")
	require.NotNil(t, lamp)
	lampLight := engine.GetComponent[*components.Light](lamp)
	require.NotNil(t, lampLight)
	assert.Equal(t, render.Spot, lampLight.Type())
	spotRL := w.Lights.RenderLightFor(lampLight)
	require.NotNil(t, spotRL)
	assert.Equal(t, float32(15), spotRL.AttenuationEnd())
	assert.Equal(t, float32(20), spotRL.InnerConeAngle())
	assert.Equal(t, float32(28), spotRL.OuterConeAngle())

	orb := engine.GetComponent[*components.Orbiter](lamp)
	require.NotNil(t, orb)
	assert.Equal(t, float32(6), orb.Radius)

	cam := w.MainCamera()
	require.NotNil(t, cam)
	assert.Equal(t, float32(60), cam.FOV)
}

func TestLoadSceneUnknownComponentSkipped(t *testing.T) {
	const scene = `{
	  "objects": [
	    {
	      "name": "Thing",
	      "position": [0, 0, 0],
	      "rotation": [0, 0, 0],
	      "scale": [0, 0, 0],
	      "components": [{"type": "Teleporter"}]
	    }
	  ]
	}`

	w := newHeadlessWorld()
	require.NoError(t, w.LoadScene(writeScene(t, scene)))

	thing := w.Scene.FindByName("Thing")
	require.NotNil(t, thing)
	assert.Empty(t, thing.Components())
}

func TestSceneRoundTrip(t *testing.T) {
	w := newHeadlessWorld()
	require.NoError(t, w.LoadScene(writeScene(t, testScene)))

	out := filepath.Join(t.TempDir(), "saved.json")
	require.NoError(t, w.SaveScene(out))

	reloaded := newHeadlessWorld()
	require.NoError(t, reloaded.LoadScene(out))
	require.Len(t, reloaded.Scene.GameObjects, 3)

	lamp := reloaded.Scene.FindByName("Lamp")
	require.NotNil(t, lamp)
	assert.Equal(t, []string{"lights"}, lamp.Tags)

	l := engine.GetComponent[*components.Light](lamp)
	require.NotNil(t, l)
	assert.Equal(t, render.Spot, l.Type())
	assert.Equal(t, float32(15), l.Range())
	assert.Equal(t, float32(20), l.InnerConeAngle())
}

func TestRemoveGameObjectDetachesLight(t *testing.T) {
	w := newHeadlessWorld()
	require.NoError(t, w.LoadScene(writeScene(t, testScene)))

	sun := w.Scene.FindByName("Sun")
	light := engine.GetComponent[*components.Light](sun)
	rl := w.Lights.RenderLightFor(light)
	require.True(t, w.RenderScene.ContainsLight(rl))

	w.RemoveGameObject(sun)
	assert.False(t, w.RenderScene.ContainsLight(rl))
	assert.Nil(t, w.Scene.FindByName("Sun"))
}
