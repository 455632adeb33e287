// Package grass generates the instanced grass field: per-blade shape and offset attributes that
// never change after construction, the blade topology shared by every instance, and the small
// set of uniforms (time and focus) that animate and tile the field each frame.
package grass

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
)

// ErrNoBlades is returned by NewField when the requested blade count is not positive.
var ErrNoBlades = errors.New("grass field requires at least one blade")

const (
	// DefaultNumBlades is the blade count used when WithNumBlades is not supplied.
	DefaultNumBlades = 40000

	// DefaultRadius is the field radius used when WithRadius is not supplied.
	DefaultRadius = 65.0

	minWidth    = 0.15
	widthRange  = 0.075
	minHeight   = 2.0
	heightRange = 2.0
	maxLean     = 0.7
	minCurve    = 0.2
	curveRange  = 0.8
)

// Shape holds the static shape attributes of one blade.
type Shape struct {
	Width  float64
	Height float64
	Lean   float64
	Curve  float64
}

// Offset holds the static placement of one blade relative to its tile.
type Offset struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

// Field is an instanced grass field. Blade attributes and topology are generated once;
// Update only moves the time and focus uniforms.
type Field interface {
	// NumBlades returns the number of blade instances in the field.
	//
	// Returns:
	//   - int: the blade count
	NumBlades() int

	// Radius returns the field radius.
	//
	// Returns:
	//   - float64: the radius
	Radius() float64

	// PatchSize returns the width of one repeating tile, twice the radius.
	//
	// Returns:
	//   - float64: the patch size
	PatchSize() float64

	// Shapes returns a copy of every blade's shape attributes.
	//
	// Returns:
	//   - []Shape: one entry per blade
	Shapes() []Shape

	// Offsets returns a copy of every blade's offset attributes.
	//
	// Returns:
	//   - []Offset: one entry per blade
	Offsets() []Offset

	// VIndex returns a copy of the per-vertex index stream shared by every blade.
	//
	// Returns:
	//   - []float32: 2*BladeVerts entries
	VIndex() []float32

	// Indices returns a copy of the triangle index list shared by every blade.
	//
	// Returns:
	//   - []uint32: BladeIndices entries
	Indices() []uint32

	// ShapeBuffer returns the shape attributes packed as vec4<f32> instance data.
	//
	// Returns:
	//   - []byte: NumBlades*16 bytes
	ShapeBuffer() []byte

	// OffsetBuffer returns the offset attributes packed as vec4<f32> instance data.
	//
	// Returns:
	//   - []byte: NumBlades*16 bytes
	OffsetBuffer() []byte

	// Update advances the animation time and moves the focus point the tiles are centred on.
	//
	// Parameters:
	//   - t: animation time in seconds
	//   - focusX, focusY: the new focus point
	Update(t, focusX, focusY float64)

	// Time returns the animation time set by the last Update.
	Time() float64

	// Focus returns the focus point set by the last Update.
	Focus() common.Vec2

	// Texture returns the blade texture.
	Texture() *common.Texture

	// Fog returns the fog parameters the field is drawn with.
	Fog() fog.Fog

	// Uniform returns the current GPU uniform block for the grass pipeline.
	//
	// Returns:
	//   - GPUGrassParams: the uniform block
	Uniform() GPUGrassParams
}

type field struct {
	numBlades int
	radius    float64
	texture   *common.Texture
	fogParams *fog.Fog
	rng       *rand.Rand

	shapes  []Shape
	offsets []Offset
	vindex  []float32
	indices []uint32

	time  float64
	focus common.Vec2
}

var _ Field = &field{}

// NewField creates a grass field and generates the attributes of every blade.
//
// Parameters:
//   - opts: variadic list of FieldBuilderOption functions to configure the field
//
// Returns:
//   - Field: the generated field
//   - error: ErrNoBlades if the blade count is not positive
func NewField(opts ...FieldBuilderOption) (Field, error) {
	f := &field{
		numBlades: DefaultNumBlades,
		radius:    DefaultRadius,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.numBlades <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoBlades, f.numBlades)
	}
	if f.radius <= 0 {
		return nil, fmt.Errorf("grass field radius must be positive, got %v", f.radius)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if f.fogParams == nil {
		fp := fog.ForRadius(f.radius)
		f.fogParams = &fp
	}

	f.vindex = newVIndex()
	f.indices = newIndices()
	f.generate()

	log.Printf("[Grass] generated %d blades, radius %.1f, patch %.1f", f.numBlades, f.radius, f.PatchSize())
	return f, nil
}

func (f *field) generate() {
	f.shapes = make([]Shape, f.numBlades)
	f.offsets = make([]Offset, f.numBlades)
	for i := range f.numBlades {
		f.shapes[i] = Shape{
			Width:  minWidth + f.rng.Float64()*widthRange,
			Height: minHeight + math.Pow(f.rng.Float64(), 4)*heightRange,
			Lean:   f.rng.Float64() * maxLean,
			Curve:  minCurve + f.rng.Float64()*curveRange,
		}
		f.offsets[i] = Offset{
			X:        common.NRand(f.rng) * f.radius,
			Y:        common.NRand(f.rng) * f.radius,
			Z:        0,
			Rotation: common.PI2 * f.rng.Float64(),
		}
	}
}

func (f *field) NumBlades() int {
	return f.numBlades
}

func (f *field) Radius() float64 {
	return f.radius
}

func (f *field) PatchSize() float64 {
	return f.radius * 2
}

func (f *field) Shapes() []Shape {
	out := make([]Shape, len(f.shapes))
	copy(out, f.shapes)
	return out
}

func (f *field) Offsets() []Offset {
	out := make([]Offset, len(f.offsets))
	copy(out, f.offsets)
	return out
}

func (f *field) VIndex() []float32 {
	out := make([]float32, len(f.vindex))
	copy(out, f.vindex)
	return out
}

func (f *field) Indices() []uint32 {
	out := make([]uint32, len(f.indices))
	copy(out, f.indices)
	return out
}

func (f *field) ShapeBuffer() []byte {
	v := make([][4]float32, len(f.shapes))
	for i, s := range f.shapes {
		v[i] = GPUBladeShape{float32(s.Width), float32(s.Height), float32(s.Lean), float32(s.Curve)}
	}
	return marshalVec4s(v)
}

func (f *field) OffsetBuffer() []byte {
	v := make([][4]float32, len(f.offsets))
	for i, o := range f.offsets {
		v[i] = GPUBladeOffset{float32(o.X), float32(o.Y), float32(o.Z), float32(o.Rotation)}
	}
	return marshalVec4s(v)
}

func (f *field) Update(t, focusX, focusY float64) {
	f.time = t
	f.focus = common.Vec2{X: focusX, Y: focusY}
}

func (f *field) Time() float64 {
	return f.time
}

func (f *field) Focus() common.Vec2 {
	return f.focus
}

func (f *field) Texture() *common.Texture {
	return f.texture
}

func (f *field) Fog() fog.Fog {
	return *f.fogParams
}

func (f *field) Uniform() GPUGrassParams {
	return GPUGrassParams{
		DrawPos:   [2]float32{float32(f.focus.X), float32(f.focus.Y)},
		PatchSize: float32(f.PatchSize()),
		Time:      float32(f.time),
		Fog:       f.fogParams.GPU(),
	}
}
