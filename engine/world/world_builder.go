package world

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/camera"
	"github.com/Carmen-Shannon/oxy-grass/engine/input"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
)

// WorldBuilderOption is a functional option for configuring a World.
// Use the With* functions to create options.
type WorldBuilderOption func(w *world)

// WithClock sets the time source, in ms. The default counts wall time from construction.
//
// Parameters:
//   - clock: function returning the current time in ms
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithClock(clock func() float64) WorldBuilderOption {
	return func(w *world) {
		w.clock = clock
	}
}

// WithRenderer sets the renderer DoFrame draws with. Without one the world runs headless.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithRenderer(r scene.Renderer) WorldBuilderOption {
	return func(w *world) {
		w.renderer = r
	}
}

// WithBlades sets the number of grass blades.
//
// Parameters:
//   - n: the blade count
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithBlades(n int) WorldBuilderOption {
	return func(w *world) {
		w.numBlades = n
	}
}

// WithRadius sets the grass patch radius. Fog distances derive from it.
//
// Parameters:
//   - radius: the patch radius
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithRadius(radius float64) WorldBuilderOption {
	return func(w *world) {
		w.radius = radius
	}
}

// WithTextures sets the decoded grass, ground and sky textures.
//
// Parameters:
//   - grassTex: the blade texture
//   - groundTex: the ground texture
//   - skyTex: the sky dome texture
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithTextures(grassTex, groundTex, skyTex *common.Texture) WorldBuilderOption {
	return func(w *world) {
		w.grassTex = grassTex
		w.groundTex = groundTex
		w.skyTex = skyTex
	}
}

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithViewport(width, height int) WorldBuilderOption {
	return func(w *world) {
		w.width = width
		w.height = height
	}
}

// WithObserver registers a function called with a Snapshot after every simulated tick.
// It runs on the ticking goroutine and must not block.
//
// Parameters:
//   - fn: the observer
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithObserver(fn func(Snapshot)) WorldBuilderOption {
	return func(w *world) {
		w.observer = fn
	}
}

// WithRand sets the random source for blade generation.
func WithRand(rng *rand.Rand) WorldBuilderOption {
	return func(w *world) {
		w.rng = rng
	}
}

// WithKeyboard sets the key state the controller reads its intent from.
func WithKeyboard(kb input.Keyboard) WorldBuilderOption {
	return func(w *world) {
		w.keyboard = kb
	}
}

// WithController replaces the default camera controller.
func WithController(c camera.CameraController) WorldBuilderOption {
	return func(w *world) {
		w.controller = c
	}
}
