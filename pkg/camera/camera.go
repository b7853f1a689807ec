package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction selects a movement axis relative to the camera.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Projection defaults
const (
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 500.0

	DefaultMouseSensitivity = 0.08
)

// Camera implements a first-person camera for navigation
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	orientation Orientation

	// Mouse state
	sensitivity float32
	lastX       float64
	lastY       float64
	firstMouse  bool

	// Projection
	fov        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position facing the default heading
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		orientation: DefaultOrientation(),
		sensitivity: DefaultMouseSensitivity,
		firstMouse:  true,
		fov:         DefaultFOV,
		width:       1024,
		height:      768,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// NewCameraLookingAt creates a camera at position looking toward target.
func NewCameraLookingAt(position, target mgl32.Vec3) *Camera {
	camera := NewCamera(position)
	camera.LookAt(target)
	return camera
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	c.front, c.right, c.up = c.orientation.Basis()
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	height := c.height
	if height == 0 {
		height = 1
	}
	aspect := float32(c.width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, DefaultNear, DefaultFar)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// Move translates the camera along its front or right vector. The camera has
// no notion of time, so distance is usually speed*deltaTime.
func (c *Camera) Move(direction Direction, distance float32) {
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(distance))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(distance))
	case Right:
		c.position = c.position.Add(c.right.Mul(distance))
	case Left:
		c.position = c.position.Sub(c.right.Mul(distance))
	}
}

// Rotate accumulates pitch and yaw deltas (degrees) and rebuilds the basis.
func (c *Camera) Rotate(pitchDelta, yawDelta float32) {
	c.orientation.Accumulate(pitchDelta, yawDelta)
	c.updateCameraVectors()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the accumulated yaw and pitch
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.orientation.Yaw, c.orientation.Pitch
}

// LookAt turns the camera toward target. The derived angles become the
// base that later Rotate calls accumulate onto.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	c.orientation = orientationFromDirection(direction)
	c.updateCameraVectors()
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// HandleMouseMovement turns cursor motion into a rotation
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos-c.lastX) * c.sensitivity
	yoffset := float32(c.lastY-ypos) * c.sensitivity // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	c.Rotate(yoffset, xoffset)
}

// ResetMouseState resets the first-mouse flag for smooth camera control
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}

// SetMouseSensitivity sets the degrees of rotation per pixel of cursor motion
func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}
