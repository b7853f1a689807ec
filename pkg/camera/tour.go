package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Tour flies a camera around a closed loop of waypoints at constant
// parametric speed per segment.
type Tour struct {
	points []mgl32.Vec3
	speed  float32

	index int
	t     float32
}

// NewTour creates a tour over points. A speed <= 0 uses DefaultTourSpeed.
func NewTour(points []mgl32.Vec3, speed float32) *Tour {
	if speed <= 0 {
		speed = DefaultTourSpeed
	}
	return &Tour{
		points: append([]mgl32.Vec3(nil), points...),
		speed:  speed,
	}
}

// Reset rewinds the tour to the first waypoint.
func (t *Tour) Reset() {
	t.index = 0
	t.t = 0
}

// Start returns the first waypoint, or false if the tour is empty.
func (t *Tour) Start() (mgl32.Vec3, bool) {
	if len(t.points) == 0 {
		return mgl32.Vec3{}, false
	}
	return t.points[0], true
}

// Segment returns the current segment index and parameter.
func (t *Tour) Segment() (int, float32) {
	return t.index, t.t
}

// Advance moves along the loop by deltaTime and returns the new camera
// position and view matrix. With fewer than two waypoints ok is false.
func (t *Tour) Advance(deltaTime float32) (position mgl32.Vec3, view mgl32.Mat4, ok bool) {
	if len(t.points) < 2 {
		return mgl32.Vec3{}, mgl32.Ident4(), false
	}

	t.t += deltaTime * t.speed
	if t.t >= 1 {
		t.t = 0
		t.index = (t.index + 1) % len(t.points)
	}

	p0 := t.points[t.index]
	p1 := t.points[(t.index+1)%len(t.points)]

	position = lerp(p0, p1, t.t)
	target := lerp(p0, p1, min(t.t+tourLookAhead, 1))
	view = mgl32.LookAtV(position, target, WorldUp)
	return position, view, true
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
