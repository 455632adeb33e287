// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
// This is primarily used in the BindGroupProvider to stage texture data before creating the GPU texture and bind group.
type TextureStagingData struct {
	// Pixels is the RGBA pixel data, 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range.
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// RepeatSampler returns linear filtering with repeat addressing, which every textured surface in the field uses.
//
// Returns:
//   - *SamplerStagingData: the sampler configuration
func RepeatSampler() *SamplerStagingData {
	return &SamplerStagingData{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}

// Texture is an image asset that can be decoded into RGBA pixels for GPU upload.
// For in-memory images the Data field holds the encoded bytes; otherwise Path points at a file on disk.
type Texture struct {
	// Name identifies the texture (e.g. "grass", "ground", "skydome").
	Name string

	// Path is the file path of the encoded image (empty for in-memory data).
	Path string

	// Data contains encoded image bytes (PNG, JPEG, BMP, TIFF or WebP).
	Data []byte

	// Width is the texture width in pixels (populated after Decode).
	Width int

	// Height is the texture height in pixels (populated after Decode).
	Height int

	// Pixels holds the decoded RGBA data (populated after Decode).
	Pixels []byte
}

// Decode decodes the texture to raw RGBA pixel data and caches the result on the texture.
// Uses either Data bytes or loads from Path on disk.
// Supports PNG, JPEG, BMP, TIFF and WebP.
// Reference: https://pkg.go.dev/image
//
// Returns:
//   - error: error if decoding fails
func (t *Texture) Decode() error {
	if t == nil {
		return fmt.Errorf("texture is nil")
	}

	var img image.Image
	var err error

	if len(t.Data) > 0 {
		img, _, err = image.Decode(bytes.NewReader(t.Data))
		if err != nil {
			return fmt.Errorf("failed to decode image %s: %w", t.Name, err)
		}
	} else if t.Path != "" {
		file, fileErr := os.Open(t.Path)
		if fileErr != nil {
			return fmt.Errorf("failed to open texture file %s: %w", t.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return fmt.Errorf("failed to decode texture file %s: %w", t.Path, err)
		}
	} else {
		return fmt.Errorf("texture %s has neither data nor path", t.Name)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	t.Width = bounds.Dx()
	t.Height = bounds.Dy()
	t.Pixels = rgba.Pix
	return nil
}

// Loaded reports whether the texture has decoded pixel data.
func (t *Texture) Loaded() bool {
	return t != nil && len(t.Pixels) > 0 && t.Width > 0 && t.Height > 0
}

// StagingData returns the decoded pixels in the form expected by a bind group provider.
//
// Returns:
//   - *TextureStagingData: the staging data, or nil if the texture has not been decoded
func (t *Texture) StagingData() *TextureStagingData {
	if !t.Loaded() {
		return nil
	}
	return &TextureStagingData{
		Pixels: t.Pixels,
		Width:  uint32(t.Width),
		Height: uint32(t.Height),
	}
}
