package camera

// CameraControllerBuilderOption is a functional option for configuring a CameraController.
type CameraControllerBuilderOption func(*controllerImpl)

// WithMode sets the starting mode.
//
// Parameters:
//   - mode: ModeAutoplay or ModeManual
//
// Returns:
//   - CameraControllerBuilderOption: a function that sets the starting mode
func WithMode(mode Mode) CameraControllerBuilderOption {
	return func(c *controllerImpl) {
		c.mode = mode
	}
}

// WithState sets the starting state.
//
// Parameters:
//   - s: the starting state
//
// Returns:
//   - CameraControllerBuilderOption: a function that sets the starting state
func WithState(s State) CameraControllerBuilderOption {
	return func(c *controllerImpl) {
		c.state = s
	}
}

// WithToggleListener registers a function called after every ToggleAutoPlay with the new mode.
//
// Parameters:
//   - fn: the listener
//
// Returns:
//   - CameraControllerBuilderOption: a function that registers the listener
func WithToggleListener(fn func(Mode)) CameraControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onToggle = append(c.onToggle, fn)
	}
}
