package engine

import (
	"errors"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-grass/engine/profiler"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/window"
	"github.com/Carmen-Shannon/oxy-grass/engine/world"
)

// ErrMissingWorld is returned by NewEngine when no world was supplied.
var ErrMissingWorld = errors.New("engine requires a world")

// engine implements the Engine interface.
// Drives the world from the window's message loop on a single thread.
type engine struct {
	quitOnce sync.Once // Ensures the window is only closed once

	window   window.Window
	world    world.World
	renderer scene.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(world.World)

	panicked bool
}

// Engine is the main entry point for the engine.
// It pumps the window message loop and advances the world once per iteration.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running without one
	Window() window.Window

	// World returns the world the engine drives.
	//
	// Returns:
	//   - world.World: the world instance
	World() world.World

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers a function called after every frame.
	//
	// Parameters:
	//   - callback: function receiving the world after it advanced
	SetFrameCallback(callback func(world.World))

	// Frame advances the world by one iteration of the message loop.
	// A panic raised while simulating or drawing is recovered, logged, and stops the engine.
	Frame()

	// Run starts the main loop (blocks until the window closes).
	Run()

	// Quit closes the window, which ends Run.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options and binds the window
// callbacks to the world: key events feed the world's keyboard, losing focus releases every key,
// and resizes reach both the renderer and the camera.
//
// Parameters:
//   - options: functional options for engine configuration (window, world, renderer, profiling)
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrMissingWorld if no world was supplied
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.world == nil {
		return nil, ErrMissingWorld
	}

	if e.window != nil {
		kb := e.world.Keyboard()
		e.window.SetUpdateCallback(e.Frame)
		e.window.SetKeyDownCallback(kb.KeyDown)
		e.window.SetKeyUpCallback(kb.KeyUp)
		e.window.SetFocusLostCallback(kb.Reset)
		e.window.SetResizeCallback(e.resize)
	}

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) World() world.World {
	return e.world
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] no window to run")
		return
	}
	e.window.ProcessMessages()
}

// Quit closes the window to end the message loop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window == nil {
			return
		}
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
	})
}

func (e *engine) Frame() {
	if e.panicked {
		return
	}
	if !e.step() {
		e.panicked = true
		e.Quit()
		return
	}

	if e.frameCallback != nil {
		e.frameCallback(e.world)
	}

	if e.profilingEnabled && e.profiler != nil {
		stats := e.world.Stats()
		e.profiler.Tick(profiler.Counters{
			Clamped:        stats.Clamped,
			Skipped:        stats.Skipped,
			RenderFailures: stats.RenderFailures,
		})
	}
}

// step runs one world frame, reporting false if it panicked.
func (e *engine) step() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			ok = false
		}
	}()
	e.world.DoFrame()
	return true
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimised
		return
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	e.world.Resize(width, height)
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(world.World)) {
	e.frameCallback = callback
}
