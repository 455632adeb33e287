package window

import "testing"

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	if w.title != "Grass" || w.width != 1280 || w.height != 720 {
		t.Errorf("defaults = %q %dx%d", w.title, w.width, w.height)
	}
	if w.minWidth < 1 || w.minHeight < 1 {
		t.Errorf("min size %dx%d allows a collapsed window", w.minWidth, w.minHeight)
	}
}

func TestWindowOptions(t *testing.T) {
	tests := []struct {
		name                string
		opts                []WindowBuilderOption
		width, height       int
		minWidth, minHeight int
	}{
		{"size", []WindowBuilderOption{WithSize(1920, 1080)}, 1920, 1080, 320, 240},
		{"zero size keeps default", []WindowBuilderOption{WithSize(0, 900)}, 1280, 900, 320, 240},
		{"min size", []WindowBuilderOption{WithMinSize(480, 270)}, 1280, 720, 480, 270},
		{"min size floors at one", []WindowBuilderOption{WithMinSize(0, -5)}, 1280, 720, 1, 1},
		{"last wins", []WindowBuilderOption{WithSize(800, 600), WithSize(1024, 768)}, 1024, 768, 320, 240},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newEngineWindow(tc.opts...)
			if w.width != tc.width || w.height != tc.height {
				t.Errorf("size = %dx%d, want %dx%d", w.width, w.height, tc.width, tc.height)
			}
			if w.minWidth != tc.minWidth || w.minHeight != tc.minHeight {
				t.Errorf("min = %dx%d, want %dx%d", w.minWidth, w.minHeight, tc.minWidth, tc.minHeight)
			}
		})
	}
	if w := newEngineWindow(WithTitle("Field")); w.title != "Field" {
		t.Errorf("title = %q", w.title)
	}
}
