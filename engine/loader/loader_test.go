package loader

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"grass.jpg", "ground.jpg", "skydome.jpg"} {
		// the decoder sniffs the format, so png bytes behind a .jpg name are fine
		if err := os.WriteFile(filepath.Join(dir, name), encodePNG(t, 4, 2), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadDefaultAssets(t *testing.T) {
	dir := writeAssets(t)

	var progress []float64
	l := NewLoader(WithWorkers(2), WithProgress(func(p float64) { progress = append(progress, p) }))
	defer l.Close()
	assets, err := l.Load(DefaultAssetList(dir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, name := range []string{TextureGrass, TextureGround, TextureSkyDome} {
		tex := assets.Textures[name]
		if !tex.Loaded() || tex.Width != 4 || tex.Height != 2 || len(tex.Pixels) != 4*2*4 {
			t.Errorf("%s = %+v", name, tex)
		}
		if l.Get(name) != tex {
			t.Errorf("%s not cached", name)
		}
	}

	if len(progress) != 3 || progress[2] != 1 {
		t.Errorf("progress = %v, want three steps ending at 1", progress)
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] <= progress[i-1] {
			t.Errorf("progress not increasing: %v", progress)
		}
	}
}

func TestLoadReportsEveryFailure(t *testing.T) {
	dir := writeAssets(t)
	list := DefaultAssetList(dir)
	list.Textures = append(list.Textures,
		AssetDescription{Name: "missing", Path: filepath.Join(dir, "nope.jpg")},
		AssetDescription{Name: "garbage", Data: []byte("not an image")},
	)

	var reported []error
	l := NewLoader(WithErrorHandler(func(err error) { reported = append(reported, err) }))
	defer l.Close()
	assets, err := l.Load(list)
	if assets != nil {
		t.Error("Load returned assets despite failures")
	}
	if !errors.Is(err, ErrAssetFailed) {
		t.Fatalf("err = %v, want ErrAssetFailed", err)
	}
	if len(reported) != 2 {
		t.Errorf("error handler called %d times, want 2", len(reported))
	}
	if l.Get(TextureGrass) != nil {
		t.Error("a failed load populated the cache")
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := writeAssets(t)
	l := NewLoader()
	defer l.Close()
	first, err := l.Load(DefaultAssetList(dir))
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(filepath.Join(dir, "grass.jpg")); err != nil {
		t.Fatal(err)
	}
	second, err := l.Load(DefaultAssetList(dir))
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if second.Textures[TextureGrass] != first.Textures[TextureGrass] {
		t.Error("second load did not reuse the cached texture")
	}
	if len(l.Textures()) != 3 {
		t.Errorf("cache holds %d textures, want 3", len(l.Textures()))
	}
}

func TestLoadEmptyList(t *testing.T) {
	l := NewLoader()
	defer l.Close()
	assets, err := l.Load(AssetList{})
	if err != nil || len(assets.Textures) != 0 {
		t.Errorf("Load(empty) = %+v, %v", assets, err)
	}
}
