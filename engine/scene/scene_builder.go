package scene

import (
	"github.com/Carmen-Shannon/oxy-grass/engine/camera"
	"github.com/Carmen-Shannon/oxy-grass/engine/grass"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-grass/engine/terrain"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithCamera sets the scene camera.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.camera = cam
	}
}

// WithGrass sets the grass field.
//
// Parameters:
//   - field: the grass field
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGrass(field grass.Field) SceneBuilderOption {
	return func(s *scene) {
		s.grass = field
	}
}

// WithGround sets the ground plane.
//
// Parameters:
//   - g: the ground plane
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGround(g terrain.Ground) SceneBuilderOption {
	return func(s *scene) {
		s.ground = g
	}
}

// WithSky sets the sky dome.
//
// Parameters:
//   - sky: the sky dome
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSky(sky terrain.SkyDome) SceneBuilderOption {
	return func(s *scene) {
		s.sky = sky
	}
}

// WithOverlays replaces the default fade and glare overlays.
//
// Parameters:
//   - fade: the intro fade overlay
//   - glare: the sun glare overlay
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithOverlays(fade, glare material.Material) SceneBuilderOption {
	return func(s *scene) {
		s.fade = fade
		s.glare = glare
	}
}
