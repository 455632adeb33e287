package engine

import (
	"github.com/Carmen-Shannon/oxy-grass/engine/profiler"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/window"
	"github.com/Carmen-Shannon/oxy-grass/engine/world"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: a configured Profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose message loop drives the engine.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWorld sets the world advanced each frame.
//
// Parameters:
//   - w: the World to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWorld(w world.World) EngineBuilderOption {
	return func(e *engine) {
		e.world = w
	}
}

// WithRenderer sets the renderer whose targets follow window resizes.
//
// Parameters:
//   - r: the scene renderer the world draws with
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r scene.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}
