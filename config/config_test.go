package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if s != Defaults() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"width": 1920, "preset": "laptop", "telemetry": "localhost:8090", "vsync": false}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 1920 || s.Height != 720 {
		t.Errorf("size = %dx%d, want 1920x720", s.Width, s.Height)
	}
	if s.Preset != "laptop" || s.Telemetry != "localhost:8090" || s.AssetDir != "assets" {
		t.Errorf("settings = %+v", s)
	}
	if s.VSyncEnabled() {
		t.Error("vsync should be disabled by the file")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestQuality(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want Preset
	}{
		{"default", Settings{}, Presets[DefaultPreset]},
		{"mobile", Settings{Preset: "mobile"}, Preset{Blades: 20000, Depth: 50}},
		{"case insensitive", Settings{Preset: "GameRig"}, Preset{Blades: 300000, Depth: 200}},
		{"blade override", Settings{Preset: "laptop", Blades: 1000}, Preset{Blades: 1000, Depth: 65}},
		{"depth override", Settings{Preset: "desktop2", Depth: 30}, Preset{Blades: 150000, Depth: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.Quality()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Quality() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := (Settings{Preset: "toaster"}).Quality(); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetNamesOrderedByBlades(t *testing.T) {
	want := []string{"mobile", "laptop", "desktop", "desktop2", "gamerig"}
	got := PresetNames()
	if len(got) != len(want) {
		t.Fatalf("names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names = %v, want %v", got, want)
			break
		}
	}
}

func TestMergeKeepsZeroFields(t *testing.T) {
	s := Defaults()
	s.Merge(Settings{Blades: 500})
	if s.Blades != 500 || s.Width != 1280 || s.Preset != DefaultPreset {
		t.Errorf("settings = %+v", s)
	}
}

func TestAntialiasDefaultsOn(t *testing.T) {
	s := Defaults()
	if !s.AntialiasEnabled() {
		t.Fatal("antialiasing should default to on")
	}
	off := false
	s.Merge(Settings{Antialias: &off})
	if s.AntialiasEnabled() {
		t.Error("antialias false in the file should turn it off")
	}
	s.Merge(Settings{})
	if s.AntialiasEnabled() {
		t.Error("an empty overlay should keep the previous choice")
	}
}
