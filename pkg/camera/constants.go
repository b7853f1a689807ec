package camera

// Default orientation
const (
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0
)

// Constraints
const (
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Tour defaults
const (
	DefaultTourSpeed = 0.4
	// tourLookAhead is how far along the current segment the tour camera looks.
	tourLookAhead = 0.05
)
