package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind names a procedural mesh.
type MeshKind string

const (
	MeshCube  MeshKind = "cube"
	MeshPlane MeshKind = "plane"
)

// Valid reports whether k is a known mesh.
func (k MeshKind) Valid() bool {
	return k == MeshCube || k == MeshPlane
}

// Edit limits for selected objects.
const (
	RotateSpeed = 60.0 // degrees per second
	ScaleSpeed  = 0.6  // per second
	MinScale    = 0.05
)

// Object is the runtime state of a placed drawable.
type Object struct {
	Name     string
	Mesh     MeshKind
	Size     mgl32.Vec3
	Color    mgl32.Vec3
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    float32
	Bob      *BobConfig
}

func newObject(c ObjectConfig) *Object {
	o := &Object{
		Name:     c.Name,
		Mesh:     c.Mesh,
		Size:     c.Size,
		Color:    c.Color,
		Position: c.Position,
		Rotation: c.Rotation,
		Scale:    c.Scale,
	}
	if c.Bob != nil {
		bob := *c.Bob
		o.Bob = &bob
	}
	if o.Size == (mgl32.Vec3{}) {
		o.Size = mgl32.Vec3{1, 1, 1}
	}
	return o
}

// ComposeModelMatrix builds translate * rotY * rotX * rotZ * scale with
// rotation in degrees.
func ComposeModelMatrix(position, rotationDeg mgl32.Vec3, scale float32) mgl32.Mat4 {
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y())))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X())))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z())))
	return m.Mul4(mgl32.Scale3D(scale, scale, scale))
}

// Animated returns position and rotation at time t, including the bob.
func (o *Object) Animated(t float32) (position, rotation mgl32.Vec3) {
	position, rotation = o.Position, o.Rotation
	if o.Bob != nil {
		position[1] += o.Bob.Height * math32.Sin(t*o.Bob.Frequency)
		rotation[1] += o.Bob.Sway * math32.Sin(t*o.Bob.SwayFrequency)
	}
	return position, rotation
}

// Model returns the object's model matrix at time t. Size is applied
// before the uniform scale so it stays out of the editable transform.
func (o *Object) Model(t float32) mgl32.Mat4 {
	position, rotation := o.Animated(t)
	m := ComposeModelMatrix(position, rotation, o.Scale)
	return m.Mul4(mgl32.Scale3D(o.Size.X(), o.Size.Y(), o.Size.Z()))
}

// Rotate turns the object around Y.
func (o *Object) Rotate(degrees float32) {
	o.Rotation[1] += degrees
}

// Grow changes the uniform scale, never going below MinScale.
func (o *Object) Grow(delta float32) {
	o.Scale = max(MinScale, o.Scale+delta)
}
