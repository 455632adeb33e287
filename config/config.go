// Package config holds the quality presets and the optional settings file cmd/grass starts from.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned when a preset name has no entry in Presets.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a blade count and patch radius pair sized for a class of hardware.
type Preset struct {
	Blades int     `json:"blades"`
	Depth  float64 `json:"depth"`
}

// Presets lists the quality levels by name.
var Presets = map[string]Preset{
	"mobile":   {Blades: 20000, Depth: 50},
	"laptop":   {Blades: 40000, Depth: 65},
	"desktop":  {Blades: 65000, Depth: 85},
	"desktop2": {Blades: 150000, Depth: 120},
	"gamerig":  {Blades: 300000, Depth: 200},
}

// DefaultPreset is used when neither the settings file nor the flags name one.
const DefaultPreset = "desktop"

// Settings is the contents of settings.json. Zero values mean "use the default".
type Settings struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Preset    string  `json:"preset"`
	Blades    int     `json:"blades"`
	Depth     float64 `json:"depth"`
	AssetDir  string  `json:"assetDir"`
	Telemetry string  `json:"telemetry"`
	Profile   bool    `json:"profile"`
	VSync     *bool   `json:"vsync,omitempty"`
	Antialias *bool   `json:"antialias,omitempty"`
}

// Defaults returns the settings used when no file is present.
//
// Returns:
//   - Settings: the default settings
func Defaults() Settings {
	return Settings{
		Width:    1280,
		Height:   720,
		Preset:   DefaultPreset,
		AssetDir: "assets",
	}
}

// Load reads settings from a JSON file over the defaults. A missing file is not an error.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Settings: the defaults overlaid with the file's non-zero fields
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	var file Settings
	if err := json.Unmarshal(data, &file); err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.Merge(file)
	return s, nil
}

// Merge copies every non-zero field of o into s.
//
// Parameters:
//   - o: the overriding settings
func (s *Settings) Merge(o Settings) {
	if o.Width > 0 {
		s.Width = o.Width
	}
	if o.Height > 0 {
		s.Height = o.Height
	}
	if o.Preset != "" {
		s.Preset = o.Preset
	}
	if o.Blades > 0 {
		s.Blades = o.Blades
	}
	if o.Depth > 0 {
		s.Depth = o.Depth
	}
	if o.AssetDir != "" {
		s.AssetDir = o.AssetDir
	}
	if o.Telemetry != "" {
		s.Telemetry = o.Telemetry
	}
	if o.Profile {
		s.Profile = true
	}
	if o.VSync != nil {
		s.VSync = o.VSync
	}
	if o.Antialias != nil {
		s.Antialias = o.Antialias
	}
}

// Quality resolves the blade count and patch radius: the named preset, with explicit
// Blades and Depth taking precedence.
//
// Returns:
//   - Preset: the resolved values
//   - error: ErrUnknownPreset if the preset name is not in Presets
func (s Settings) Quality() (Preset, error) {
	name := s.Preset
	if name == "" {
		name = DefaultPreset
	}
	p, ok := Presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	if s.Blades > 0 {
		p.Blades = s.Blades
	}
	if s.Depth > 0 {
		p.Depth = s.Depth
	}
	return p, nil
}

// VSyncEnabled reports whether presentation should wait for vertical sync. Defaults to true.
func (s Settings) VSyncEnabled() bool {
	return s.VSync == nil || *s.VSync
}

// AntialiasEnabled reports whether the main pass renders multisampled. Defaults to true.
// Thin blades alias badly without it, so only very weak GPUs should turn it off.
func (s Settings) AntialiasEnabled() bool {
	return s.Antialias == nil || *s.Antialias
}

// PresetNames returns the preset names ordered by blade count.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].Blades < Presets[names[j]].Blades
	})
	return names
}
