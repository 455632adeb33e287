package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets the number of goroutines decoding textures.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = n
	}
}

// WithProgress sets the function called with the loaded fraction after each asset decodes.
// Calls are serialized.
//
// Parameters:
//   - fn: the progress callback, receiving a value in (0, 1]
//
// Returns:
//   - LoaderBuilderOption: a function that applies the callback to a loader
func WithProgress(fn func(float64)) LoaderBuilderOption {
	return func(l *loader) {
		l.onProgress = fn
	}
}

// WithErrorHandler sets the function called for each asset that fails. Calls are serialized.
//
// Parameters:
//   - fn: the error callback
//
// Returns:
//   - LoaderBuilderOption: a function that applies the callback to a loader
func WithErrorHandler(fn func(error)) LoaderBuilderOption {
	return func(l *loader) {
		l.onError = fn
	}
}
