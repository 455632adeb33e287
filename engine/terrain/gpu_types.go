package terrain

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
)

// GPUSurfaceParams is the GPU-aligned uniform block shared by the ground and sky pipelines.
// Matches the WGSL SurfaceParams struct layout exactly.
// Size: 128 bytes (std140 aligned).
type GPUSurfaceParams struct {
	Model    [16]float32      // offset   0: model-to-world matrix
	UVRepeat [2]float32       // offset  64: texture repeat count on each axis
	Fogged   float32          // offset  72: 1 applies the two-stage fog, 0 draws the texture unfogged
	_pad     float32          // offset  76: padding to a vec4 boundary
	Fog      fog.GPUFogParams // offset  80: shared two-stage fog (48 bytes)
}

// Size returns the size of the GPUSurfaceParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (128)
func (g *GPUSurfaceParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSurfaceParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload
func (g *GPUSurfaceParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(g.UVRepeat[0]))
	binary.LittleEndian.PutUint32(buf[68:], math.Float32bits(g.UVRepeat[1]))
	binary.LittleEndian.PutUint32(buf[72:], math.Float32bits(g.Fogged))
	g.Fog.MarshalTo(buf[80:])
	return buf
}
