// Package fog holds the two-stage distance fog shared by the grass field and the ground plane.
// Surfaces first blend toward the grass fog color, then toward the atmosphere color, so
// ground and grass reach the same tint at the horizon.
package fog

import (
	"encoding/binary"
	"math"
	"unsafe"
)

var (
	// DefaultColor is the atmosphere fog color.
	DefaultColor = [3]float32{0.92, 0.94, 0.98}

	// DefaultGrassColor is the near "grass fog" color that ground and grass blend to first.
	DefaultGrassColor = [3]float32{0.46, 0.56, 0.38}
)

const (
	// DefaultNear is the distance where both fog stages begin.
	DefaultNear = 1.0

	// farScale and grassFarScale derive fog distances from the grass patch radius.
	farScale      = 10.0
	grassFarScale = 2.0
)

// Fog describes the fog parameters shared by every fogged surface in the field.
type Fog struct {
	// Color is the atmosphere fog color.
	Color [3]float32

	// Near is the depth at which both fog stages start.
	Near float32

	// Far is the depth at which the atmosphere fog is complete.
	Far float32

	// GrassColor is the color of the first fog stage.
	GrassColor [3]float32

	// GrassFar is the depth at which the grass fog stage is complete.
	GrassFar float32
}

// ForRadius returns the fog used for a grass patch of the given radius:
// the atmosphere fog ends at ten radii and the grass fog at two.
//
// Parameters:
//   - radius: the grass patch radius (half the patch width)
//
// Returns:
//   - Fog: the fog parameters
func ForRadius(radius float64) Fog {
	return Fog{
		Color:      DefaultColor,
		Near:       DefaultNear,
		Far:        float32(radius * farScale),
		GrassColor: DefaultGrassColor,
		GrassFar:   float32(radius * grassFarScale),
	}
}

// Factor returns the blend weights of the two fog stages at the given depth, mirroring the
// smoothstep ramps applied in the fragment shaders.
//
// Parameters:
//   - depth: view-space distance to the fragment
//
// Returns:
//   - grass: weight of the grass fog stage in [0, 1]
//   - atmosphere: weight of the atmosphere stage in [0, 1]
func (f Fog) Factor(depth float32) (grass, atmosphere float32) {
	return smoothstep(f.Near, f.GrassFar, depth), smoothstep(f.Near, f.Far, depth)
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	t = float32(math.Min(math.Max(float64(t), 0), 1))
	return t * t * (3 - 2*t)
}

// GPUFogParams is the GPU-aligned fog block appended to fogged surface uniforms.
// Matches the WGSL FogParams struct layout exactly.
// Size: 48 bytes (three vec4<f32> slots, std140 aligned).
type GPUFogParams struct {
	Color      [3]float32 // offset  0: atmosphere fog color
	Near       float32    // offset 12: fog start distance
	GrassColor [3]float32 // offset 16: grass fog color
	Far        float32    // offset 28: atmosphere fog end distance
	GrassFar   float32    // offset 32: grass fog end distance
	_pad       [3]float32 // offset 36: padding to 48 bytes
}

// GPU converts the fog to its GPU uniform representation.
//
// Returns:
//   - GPUFogParams: the uniform block
func (f Fog) GPU() GPUFogParams {
	return GPUFogParams{
		Color:      f.Color,
		Near:       f.Near,
		GrassColor: f.GrassColor,
		Far:        f.Far,
		GrassFar:   f.GrassFar,
	}
}

// Size returns the size of the GPUFogParams struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUFogParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFogParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUFogParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.MarshalTo(buf)
	return buf
}

// MarshalTo writes the fog block into dst, which must be at least 48 bytes long.
//
// Parameters:
//   - dst: destination buffer
func (g *GPUFogParams) MarshalTo(dst []byte) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(g.Color[i]))
		binary.LittleEndian.PutUint32(dst[16+i*4:], math.Float32bits(g.GrassColor[i]))
	}
	binary.LittleEndian.PutUint32(dst[12:], math.Float32bits(g.Near))
	binary.LittleEndian.PutUint32(dst[28:], math.Float32bits(g.Far))
	binary.LittleEndian.PutUint32(dst[32:], math.Float32bits(g.GrassFar))
	for i := range 3 {
		binary.LittleEndian.PutUint32(dst[36+i*4:], 0)
	}
}
