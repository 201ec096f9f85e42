package game

import (
	"testing"

	"lumen3d/internal/components"
	"lumen3d/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewAppliesShadowDefaults(t *testing.T) {
	origRes := components.DefaultShadowResolution
	origDist := components.DefaultShadowDistance
	t.Cleanup(func() {
		components.DefaultShadowResolution = origRes
		components.DefaultShadowDistance = origDist
	})

	cfg := config.Default()
	cfg.Shadow.Resolution = 512
	cfg.Shadow.Distance = 90

	New(cfg)

	l := components.NewLight()
	assert.Equal(t, int32(512), l.ShadowResolution())
	assert.Equal(t, float32(90), l.ShadowDistance())
}
