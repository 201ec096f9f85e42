package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ShadowNear float32 = 1.0
	ShadowFar  float32 = 150.0
)

// ShadowMap is a depth-only framebuffer a shadow-casting light renders into.
type ShadowMap struct {
	Target     rl.RenderTexture2D
	Resolution int32
}

// NewShadowMap creates a framebuffer with only a depth attachment.
// Requires a live GL context.
func NewShadowMap(resolution int32) *ShadowMap {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = resolution
	target.Texture.Height = resolution

	if target.ID > 0 {
		rl.EnableFramebuffer(target.ID)

		target.Depth.ID = rl.LoadTextureDepth(resolution, resolution, false)
		target.Depth.Width = resolution
		target.Depth.Height = resolution
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1

		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

		rl.DisableFramebuffer()
	}

	return &ShadowMap{Target: target, Resolution: resolution}
}

func (s *ShadowMap) Unload() {
	rl.UnloadRenderTexture(s.Target)
}

// shadowMapFor returns the light's shadow map, (re)allocating when missing
// or when the requested resolution changed.
func shadowMapFor(l *Light) *ShadowMap {
	if l.shadowMap != nil && l.shadowMap.Resolution == l.shadowResolution {
		return l.shadowMap
	}
	if l.shadowMap != nil {
		l.shadowMap.Unload()
	}
	l.shadowMap = NewShadowMap(l.shadowResolution)
	return l.shadowMap
}
