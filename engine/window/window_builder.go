package window

// WindowBuilderOption configures a window before it is created. Later options override earlier ones.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the title bar text.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the requested client area size. On high-DPI displays the framebuffer
// reported by Width and Height can be larger than what was asked for.
// Non-positive values keep the default for that axis.
//
// Parameters:
//   - width: requested width in screen coordinates
//   - height: requested height in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithMinSize stops the user from shrinking the window below width x height.
// A collapsed window would hand the camera a zero or NaN aspect ratio.
//
// Parameters:
//   - width: smallest allowed width, at least 1
//   - height: smallest allowed height, at least 1
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = max(width, 1)
		w.minHeight = max(height, 1)
	}
}
