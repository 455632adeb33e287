package common

// Key codes used by the flight controls. The values follow the GLFW key
// table, which uses ASCII for printable keys, so the window layer can pass
// its raw codes straight through.
const (
	KeyW     = 87  // climb
	KeyS     = 83  // descend
	KeyEnter = 257 // toggle the profiler
)

// Arrow keys steer the drone.
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)
