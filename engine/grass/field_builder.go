package grass

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
)

// FieldBuilderOption is a functional option for configuring a Field via NewField.
type FieldBuilderOption func(*field)

// WithNumBlades sets the number of blade instances. It is fixed for the lifetime of the field.
//
// Parameters:
//   - n: the blade count, must be positive
//
// Returns:
//   - FieldBuilderOption: a function that applies the blade count
func WithNumBlades(n int) FieldBuilderOption {
	return func(f *field) {
		f.numBlades = n
	}
}

// WithRadius sets the field radius. Blades are scattered in [-radius, radius] on both axes.
//
// Parameters:
//   - radius: the field radius
//
// Returns:
//   - FieldBuilderOption: a function that applies the radius
func WithRadius(radius float64) FieldBuilderOption {
	return func(f *field) {
		f.radius = radius
	}
}

// WithTexture sets the blade texture.
//
// Parameters:
//   - tex: the decoded blade texture
//
// Returns:
//   - FieldBuilderOption: a function that applies the texture
func WithTexture(tex *common.Texture) FieldBuilderOption {
	return func(f *field) {
		f.texture = tex
	}
}

// WithFog overrides the fog derived from the radius.
//
// Parameters:
//   - fp: the fog parameters
//
// Returns:
//   - FieldBuilderOption: a function that applies the fog
func WithFog(fp fog.Fog) FieldBuilderOption {
	return func(f *field) {
		f.fogParams = &fp
	}
}

// WithRand sets the random source used to generate blade attributes.
func WithRand(rng *rand.Rand) FieldBuilderOption {
	return func(f *field) {
		f.rng = rng
	}
}
