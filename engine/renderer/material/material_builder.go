package material

// MaterialBuilderOption is a functional option for configuring a Material via NewMaterial.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the Material.
//
// Parameters:
//   - name: the material identifier
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor is an option builder that sets the RGB color of the Material.
//
// Parameters:
//   - color: the RGB color in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.color = color
	}
}

// WithOpacity is an option builder that sets the starting opacity of the Material.
//
// Parameters:
//   - opacity: the opacity in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = min(max(opacity, 0), 1)
	}
}

// WithVisible is an option builder that sets whether the Material starts visible.
//
// Parameters:
//   - visible: the starting visibility
//
// Returns:
//   - MaterialBuilderOption: a function that applies the visibility option to a material
func WithVisible(visible bool) MaterialBuilderOption {
	return func(m *material) {
		m.visible = visible
	}
}

// WithBlend is an option builder that sets the blend mode of the Material.
//
// Parameters:
//   - blend: BlendAlpha or BlendAdditive
//
// Returns:
//   - MaterialBuilderOption: a function that applies the blend option to a material
func WithBlend(blend BlendMode) MaterialBuilderOption {
	return func(m *material) {
		m.blend = blend
	}
}
