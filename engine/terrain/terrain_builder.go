package terrain

import (
	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
)

// GroundBuilderOption is a functional option for configuring a Ground via NewGround.
type GroundBuilderOption func(*ground)

// WithGroundTexture sets the repeating ground texture.
//
// Parameters:
//   - tex: the decoded texture
//
// Returns:
//   - GroundBuilderOption: a function that applies the texture
func WithGroundTexture(tex *common.Texture) GroundBuilderOption {
	return func(g *ground) {
		g.texture = tex
	}
}

// WithGroundFog sets the fog the ground blends to. It should match the grass field's fog so both
// reach the same color at the horizon.
//
// Parameters:
//   - fp: the fog parameters
//
// Returns:
//   - GroundBuilderOption: a function that applies the fog
func WithGroundFog(fp fog.Fog) GroundBuilderOption {
	return func(g *ground) {
		g.fogParams = &fp
	}
}

// WithGroundSize overrides the plane extent.
func WithGroundSize(size float32) GroundBuilderOption {
	return func(g *ground) {
		g.size = size
	}
}

// WithUVRepeat overrides how many times the texture repeats across the plane.
func WithUVRepeat(n float32) GroundBuilderOption {
	return func(g *ground) {
		g.uvRepeat = n
	}
}

// SkyDomeBuilderOption is a functional option for configuring a SkyDome via NewSkyDome.
type SkyDomeBuilderOption func(*skyDome)

// WithSkyTexture sets the sky texture.
//
// Parameters:
//   - tex: the decoded texture
//
// Returns:
//   - SkyDomeBuilderOption: a function that applies the texture
func WithSkyTexture(tex *common.Texture) SkyDomeBuilderOption {
	return func(s *skyDome) {
		s.texture = tex
	}
}

// WithSkyRadius overrides the dome radius.
func WithSkyRadius(radius float32) SkyDomeBuilderOption {
	return func(s *skyDome) {
		s.radius = radius
	}
}
