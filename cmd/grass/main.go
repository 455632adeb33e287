// Command grass opens a window and flies a drone camera over an instanced grass field.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-grass/config"
	"github.com/Carmen-Shannon/oxy-grass/engine"
	"github.com/Carmen-Shannon/oxy-grass/engine/loader"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/telemetry"
	"github.com/Carmen-Shannon/oxy-grass/engine/window"
	"github.com/Carmen-Shannon/oxy-grass/engine/world"
)

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "path to the settings file")
		preset       = flag.String("preset", "", "quality preset (mobile, laptop, desktop, desktop2, gamerig)")
		blades       = flag.Int("blades", 0, "blade count, overriding the preset")
		depth        = flag.Float64("depth", 0, "grass patch radius, overriding the preset")
		width        = flag.Int("width", 0, "window width in pixels")
		height       = flag.Int("height", 0, "window height in pixels")
		telemetryAt  = flag.String("telemetry", "", "serve snapshots over websocket at this address (e.g. localhost:8090)")
		profile      = flag.Bool("profile", false, "log frame statistics once per second")
	)
	flag.Parse()

	// ── Settings ────────────────────────────────────────────────────
	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	settings.Merge(config.Settings{
		Width:     *width,
		Height:    *height,
		Preset:    *preset,
		Blades:    *blades,
		Depth:     *depth,
		Telemetry: *telemetryAt,
		Profile:   *profile,
	})
	quality, err := settings.Quality()
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	// ── Assets ──────────────────────────────────────────────────────
	ld := loader.NewLoader(
		loader.WithProgress(func(f float64) {
			log.Printf("[Loader] %.0f%% loaded", f*100)
		}),
		loader.WithErrorHandler(func(err error) {
			log.Printf("[Loader] %v", err)
		}),
	)
	assets, err := ld.Load(loader.DefaultAssetList(settings.AssetDir))
	ld.Close()
	if err != nil {
		log.Fatalf("failed to load assets from %s: %v", settings.AssetDir, err)
	}

	// ── Window + Renderer ───────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("Grass"),
		window.WithSize(settings.Width, settings.Height),
		window.WithMinSize(480, 270),
	)

	presentMode := renderer.PresentModeVSync
	if !settings.VSyncEnabled() {
		presentMode = renderer.PresentModeUncapped
	}
	msaa := renderer.MSAA4x
	if !settings.AntialiasEnabled() {
		msaa = renderer.MSAAOff
	}
	gpu, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithClearColor(scene.ClearColor),
	)
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}
	sceneRenderer := renderer.NewSceneRenderer(gpu)

	// ── Telemetry ───────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var observer func(world.Snapshot)
	if settings.Telemetry != "" {
		hub := telemetry.NewHub()
		if err := hub.ListenAndServe(ctx, settings.Telemetry); err != nil {
			log.Fatalf("failed to start telemetry: %v", err)
		}
		observer = hub.Publish
	}

	// ── World + Engine ──────────────────────────────────────────────
	w, err := world.NewWorld(
		world.WithRenderer(sceneRenderer),
		world.WithBlades(quality.Blades),
		world.WithRadius(quality.Depth),
		world.WithTextures(
			assets.Textures[loader.TextureGrass],
			assets.Textures[loader.TextureGround],
			assets.Textures[loader.TextureSkyDome],
		),
		world.WithViewport(win.Width(), win.Height()),
		world.WithObserver(observer),
	)
	if err != nil {
		log.Fatalf("failed to create world: %v", err)
	}

	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithWorld(w),
		engine.WithRenderer(sceneRenderer),
		engine.WithProfiling(settings.Profile),
	)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}

	// GLFW windows must be closed from the thread running the message loop
	var interrupted atomic.Bool
	go func() {
		<-ctx.Done()
		interrupted.Store(true)
	}()
	eng.SetFrameCallback(func(world.World) {
		if interrupted.Load() {
			eng.Quit()
		}
	})

	log.Printf("Press ENTER to enable manual camera")
	eng.Run()
}
