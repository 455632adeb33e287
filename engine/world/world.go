// Package world ties the camera controller, the grass field, the terrain and the screen effects
// together and advances them with a clamped timestep, handing the result to a renderer once per tick.
package world

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/camera"
	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
	"github.com/Carmen-Shannon/oxy-grass/engine/grass"
	"github.com/Carmen-Shannon/oxy-grass/engine/input"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/terrain"
)

// MaxTimestep is the longest step a single tick simulates, in ms.
const MaxTimestep = 67.0

// Viewport used when none is supplied.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// ErrMissingTexture is returned by NewWorld when one of the grass, ground or sky textures is absent.
var ErrMissingTexture = errors.New("missing texture")

// FrameTiming records the window of wall time the last simulated tick covered, in ms.
// Start is pinned to End - MaxTimestep when the step was clamped.
type FrameTiming struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Step  float64 `json:"step"`
}

// Stats counts how ticks were handled since construction. The counters are diagnostics read by the
// profiler and are not part of the simulated state: a skipped tick bumps Skipped and changes nothing else.
type Stats struct {
	Frames         uint64 `json:"frames"`
	Clamped        uint64 `json:"clamped"`
	Skipped        uint64 `json:"skipped"`
	RenderFailures uint64 `json:"renderFailures"`
}

// Snapshot is the observable state after a tick.
type Snapshot struct {
	SimTime      float64      `json:"simTime"`
	Frame        FrameTiming  `json:"frame"`
	Mode         string       `json:"mode"`
	Camera       camera.State `json:"camera"`
	Focus        common.Vec2  `json:"focus"`
	Fade         float32      `json:"fade"`
	FadeVisible  bool         `json:"fadeVisible"`
	Glare        float32      `json:"glare"`
	GlareVisible bool         `json:"glareVisible"`
}

// World is the frame orchestrator.
type World interface {
	// DoFrame reads the clock, advances the simulation by the elapsed time (clamped to MaxTimestep)
	// and renders. If no time has elapsed only Stats.Skipped changes.
	DoFrame()

	// Resize updates the camera's aspect ratio and projection. Nothing else changes.
	//
	// Parameters:
	//   - width, height: the new viewport size in pixels
	Resize(width, height int)

	// SimTime returns the total simulated time in ms.
	SimTime() float64

	// LastFrame returns the timing of the most recent simulated tick.
	LastFrame() FrameTiming

	// Stats returns the tick counters.
	Stats() Stats

	// Controller returns the camera controller.
	Controller() camera.CameraController

	// Keyboard returns the key state the controller reads from.
	Keyboard() input.Keyboard

	// Scene returns the composition handed to the renderer.
	Scene() scene.Scene
}

type world struct {
	clock    func() float64
	renderer scene.Renderer
	observer func(Snapshot)
	rng      *rand.Rand

	numBlades int
	radius    float64
	width     int
	height    int

	grassTex  *common.Texture
	groundTex *common.Texture
	skyTex    *common.Texture

	controller camera.CameraController
	keyboard   input.Keyboard
	scene      scene.Scene

	prevT float64
	simT  float64
	last  FrameTiming
	stats Stats
}

var _ World = &world{}

// NewWorld builds the scene, the camera controller and the keyboard binding. The grass, ground and
// sky textures are required.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - World: the world, with its clock reading taken as the previous frame time
//   - error: ErrMissingTexture if a texture is absent, or the grass field's construction error
func NewWorld(options ...WorldBuilderOption) (World, error) {
	w := &world{
		numBlades: grass.DefaultNumBlades,
		radius:    grass.DefaultRadius,
	}
	for _, opt := range options {
		opt(w)
	}

	for _, tex := range []struct {
		name string
		tex  *common.Texture
	}{
		{"grass", w.grassTex},
		{"ground", w.groundTex},
		{"skydome", w.skyTex},
	} {
		if !tex.tex.Loaded() {
			return nil, fmt.Errorf("%w: %s", ErrMissingTexture, tex.name)
		}
	}

	w.width = cmp.Or(w.width, DefaultWidth)
	w.height = cmp.Or(w.height, DefaultHeight)
	if w.clock == nil {
		start := time.Now()
		w.clock = func() float64 {
			return float64(time.Since(start)) / float64(time.Millisecond)
		}
	}

	fogParams := fog.ForRadius(w.radius)
	field, err := grass.NewField(
		grass.WithNumBlades(w.numBlades),
		grass.WithRadius(w.radius),
		grass.WithTexture(w.grassTex),
		grass.WithFog(fogParams),
		grass.WithRand(w.rng),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grass field: %w", err)
	}

	cam := camera.NewCamera(camera.WithAspect(float32(w.width) / float32(w.height)))
	w.scene, err = scene.NewScene(
		scene.WithCamera(cam),
		scene.WithGrass(field),
		scene.WithGround(terrain.NewGround(terrain.WithGroundTexture(w.groundTex), terrain.WithGroundFog(fogParams))),
		scene.WithSky(terrain.NewSkyDome(terrain.WithSkyTexture(w.skyTex))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compose scene: %w", err)
	}

	if w.controller == nil {
		w.controller = camera.NewCameraController()
	}
	if w.keyboard == nil {
		w.keyboard = input.NewKeyboard()
	}
	w.keyboard.OnKeyPress(func(key int) {
		if key == common.KeyEnter {
			w.controller.ToggleAutoPlay()
		}
	})

	w.prevT = w.clock()
	log.Printf("[World] %d blades, patch radius %.0f, fog far %.0f, viewport %dx%d",
		w.numBlades, w.radius, fogParams.Far, w.width, w.height)
	return w, nil
}

func (w *world) DoFrame() {
	cur := w.clock()
	dt := cur - w.prevT
	if dt <= 0 {
		w.stats.Skipped++
		return
	}

	if dt > MaxTimestep {
		dt = MaxTimestep
		w.prevT = cur - MaxTimestep
		w.stats.Clamped++
	}
	w.last = FrameTiming{Start: w.prevT, End: cur, Step: dt}

	w.update(dt)
	w.render()
	w.prevT = cur
	w.stats.Frames++

	if w.observer != nil {
		w.observer(w.snapshot())
	}
}

func (w *world) update(dt float64) {
	if w.simT < IntroFadeDuration {
		opacity, visible := Fade(w.simT, dt)
		w.scene.Fade().SetOpacity(float32(opacity))
		w.scene.Fade().SetVisible(visible)
	}

	w.simT += dt
	t := w.simT * 0.001

	w.controller.Update(dt, w.keyboard.Intent())
	s := w.controller.State()

	w.scene.Sky().SetPosition(s.Pos.X, s.Pos.Y)

	// draw the patch centred one radius ahead of the camera
	w.scene.Grass().Update(t,
		s.Pos.X+math.Cos(s.Yaw)*w.radius,
		s.Pos.Y+math.Sin(s.Yaw)*w.radius,
	)

	// pitch is positive up for the controller but the holder rotates the other way about Y
	w.scene.Camera().SetHolder([3]float64{s.Pos.X, s.Pos.Y, s.Pos.Z}, s.Roll, -s.Pitch, s.Yaw)

	if g, visible := Glare(s.Yaw, s.Pitch); visible {
		w.scene.Glare().SetOpacity(float32(g))
		w.scene.Glare().SetVisible(true)
	} else {
		w.scene.Glare().SetVisible(false)
	}
}

func (w *world) render() {
	if w.renderer == nil {
		return
	}
	if err := w.renderer.Render(w.scene); err != nil {
		if w.stats.RenderFailures == 0 {
			log.Printf("[World] render failed, continuing: %v", err)
		}
		w.stats.RenderFailures++
	}
}

func (w *world) snapshot() Snapshot {
	return Snapshot{
		SimTime:      w.simT,
		Frame:        w.last,
		Mode:         w.controller.Mode().String(),
		Camera:       w.controller.State(),
		Focus:        w.scene.Grass().Focus(),
		Fade:         w.scene.Fade().Opacity(),
		FadeVisible:  w.scene.Fade().Visible(),
		Glare:        w.scene.Glare().Opacity(),
		GlareVisible: w.scene.Glare().Visible(),
	}
}

func (w *world) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width = width
	w.height = height
	w.scene.Camera().Resize(width, height)
}

func (w *world) SimTime() float64 {
	return w.simT
}

func (w *world) LastFrame() FrameTiming {
	return w.last
}

func (w *world) Stats() Stats {
	return w.stats
}

func (w *world) Controller() camera.CameraController {
	return w.controller
}

func (w *world) Keyboard() input.Keyboard {
	return w.keyboard
}

func (w *world) Scene() scene.Scene {
	return w.scene
}
