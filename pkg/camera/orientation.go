// Package camera implements a first-person camera driven by accumulated yaw/pitch
// angles, plus a scripted tour that flies the camera along a loop of waypoints.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up reference used to derive the camera basis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Orientation holds accumulated Euler angles in degrees.
// Rotation is relative: every call to Accumulate adds to the stored angles.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// DefaultOrientation returns the heading along world -Z.
func DefaultOrientation() Orientation {
	return Orientation{Yaw: DefaultYaw, Pitch: DefaultPitch}
}

// Accumulate adds the deltas and clamps pitch afterwards, so repeated extreme
// input can never push it past the limits.
func (o *Orientation) Accumulate(pitchDelta, yawDelta float32) {
	o.Pitch += pitchDelta
	o.Yaw += yawDelta
	o.Pitch = mgl32.Clamp(o.Pitch, MinPitch, MaxPitch)
}

// Basis returns the unit front, right and up vectors for the stored angles.
func (o Orientation) Basis() (front, right, up mgl32.Vec3) {
	yaw := mgl32.DegToRad(o.Yaw)
	pitch := mgl32.DegToRad(o.Pitch)

	front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()

	right = front.Cross(WorldUp).Normalize()
	up = right.Cross(front).Normalize()
	return front, right, up
}

// orientationFromDirection recovers yaw/pitch from a direction vector.
func orientationFromDirection(dir mgl32.Vec3) Orientation {
	dir = dir.Normalize()
	o := Orientation{
		Yaw:   mgl32.RadToDeg(math32.Atan2(dir.Z(), dir.X())),
		Pitch: mgl32.RadToDeg(math32.Asin(mgl32.Clamp(dir.Y(), -1, 1))),
	}
	o.Pitch = mgl32.Clamp(o.Pitch, MinPitch, MaxPitch)
	return o
}
