package material

// BlendMode selects how an overlay is composited onto the frame.
type BlendMode int

const (
	// BlendAlpha mixes the overlay color over the frame by its opacity.
	BlendAlpha BlendMode = iota
	// BlendAdditive adds the overlay color scaled by its opacity, blowing out the colors underneath.
	BlendAdditive
)

// String returns the blend mode name.
func (b BlendMode) String() string {
	if b == BlendAdditive {
		return "additive"
	}
	return "alpha"
}

// material is the implementation of the Material interface.
type material struct {
	name    string
	color   [3]float32
	opacity float32
	visible bool
	blend   BlendMode
}

// Material is a flat-color, camera-attached overlay material. Overlays ignore depth and fog and
// are drawn after every scene surface.
//
// Color and blend mode are fixed at construction; opacity and visibility change every frame.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Color retrieves the RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the color
	Color() [3]float32

	// Opacity retrieves the current opacity in [0, 1].
	//
	// Returns:
	//   - float32: the opacity
	Opacity() float32

	// SetOpacity sets the opacity. Values are clamped to [0, 1].
	//
	// Parameters:
	//   - opacity: the new opacity
	SetOpacity(opacity float32)

	// Visible reports whether the overlay is drawn at all.
	Visible() bool

	// SetVisible shows or hides the overlay.
	SetVisible(visible bool)

	// Blend returns the blend mode.
	Blend() BlendMode

	// Uniform returns the GPU uniform block: RGB color with opacity in alpha.
	//
	// Returns:
	//   - GPUOverlayParams: the uniform block
	Uniform() GPUOverlayParams
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults to an opaque, visible white alpha-blended overlay.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		color:   [3]float32{1, 1, 1},
		opacity: 1,
		visible: true,
		blend:   BlendAlpha,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Color() [3]float32 {
	return m.color
}

func (m *material) Opacity() float32 {
	return m.opacity
}

func (m *material) SetOpacity(opacity float32) {
	m.opacity = min(max(opacity, 0), 1)
}

func (m *material) Visible() bool {
	return m.visible
}

func (m *material) SetVisible(visible bool) {
	m.visible = visible
}

func (m *material) Blend() BlendMode {
	return m.blend
}

func (m *material) Uniform() GPUOverlayParams {
	return GPUOverlayParams{
		OverlayColor: [4]float32{m.color[0], m.color[1], m.color[2], m.opacity},
	}
}

// HexColor converts a 0xRRGGBB value to an RGB triple in [0, 1].
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - [3]float32: the RGB color
func HexColor(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
	}
}
