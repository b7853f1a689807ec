package collision

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is added to every push-out so the corrected sphere does not
// re-penetrate from floating-point equality at the boundary.
const Epsilon = 0.001

// degenerateDistance is the center-to-surface distance below which the
// center counts as inside the box.
const degenerateDistance = 1e-6

var (
	// ErrInvertedBound is returned when the play area cannot hold the sphere.
	ErrInvertedBound = errors.New("collision: bound smaller than the collision sphere")
	// ErrInvalidBox is returned for a box whose min corner exceeds its max.
	ErrInvalidBox = errors.New("collision: box min exceeds max")
	// ErrInvalidRadius is returned for a negative radius.
	ErrInvalidRadius = errors.New("collision: negative radius")
)

// Positioner is anything with a readable and writable position, typically
// the camera.
type Positioner interface {
	Position() mgl32.Vec3
	SetPosition(mgl32.Vec3)
}

// Resolver corrects a sphere position against a bound and a fixed, ordered
// list of boxes.
type Resolver struct {
	bound  Bound
	radius float32
	boxes  []AABB
}

// NewResolver validates the configuration and returns a resolver.
func NewResolver(bound Bound, radius float32, boxes []AABB) (*Resolver, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if bound.MaxX-bound.MinX < 2*radius {
		return nil, fmt.Errorf("%w: x range [%v, %v] radius %v", ErrInvertedBound, bound.MinX, bound.MaxX, radius)
	}
	if bound.MaxZ-bound.MinZ < 2*radius {
		return nil, fmt.Errorf("%w: z range [%v, %v] radius %v", ErrInvertedBound, bound.MinZ, bound.MaxZ, radius)
	}
	if bound.Floor > bound.Ceiling {
		return nil, fmt.Errorf("%w: floor %v above ceiling %v", ErrInvertedBound, bound.Floor, bound.Ceiling)
	}
	for i, b := range boxes {
		if !b.Valid() {
			return nil, fmt.Errorf("%w: box %d %v", ErrInvalidBox, i, b)
		}
	}

	return &Resolver{
		bound:  bound,
		radius: radius,
		boxes:  append([]AABB(nil), boxes...),
	}, nil
}

// Radius returns the collision sphere radius.
func (r *Resolver) Radius() float32 {
	return r.radius
}

// Bound returns the play area.
func (r *Resolver) Bound() Bound {
	return r.bound
}

// Boxes returns a copy of the obstacle list in resolution order.
func (r *Resolver) Boxes() []AABB {
	return append([]AABB(nil), r.boxes...)
}

// Resolve clamps p into the bound, then pushes it out of each box in list
// order. Each box sees the position already corrected by the ones before it,
// so a rare multi-box overlap may take more than one frame to settle.
// A box push never moves the result outside the bound: the clamp runs again
// after the last box.
func (r *Resolver) Resolve(p mgl32.Vec3) mgl32.Vec3 {
	p = r.bound.Clamp(p, r.radius)

	for _, b := range r.boxes {
		if b.Intersects(p, r.radius) {
			p = ResolveSphere(p, r.radius, b)
		}
	}
	return r.bound.Clamp(p, r.radius)
}

// Apply reads the position of target, resolves it and writes it back.
// It returns the corrected position.
func (r *Resolver) Apply(target Positioner) mgl32.Vec3 {
	p := r.Resolve(target.Position())
	target.SetPosition(p)
	return p
}

// ResolveSphere pushes a sphere at c with radius out of box b. The caller
// is expected to have checked b.Intersects first.
func ResolveSphere(c mgl32.Vec3, radius float32, b AABB) mgl32.Vec3 {
	closest := b.ClosestPoint(c)
	delta := c.Sub(closest)
	dist := delta.Len()

	if dist < degenerateDistance {
		axis, sign := shallowestFace(c, b)
		c[axis] += sign * (radius + Epsilon)
		return c
	}

	n := delta.Mul(1 / dist)
	return c.Add(n.Mul(radius - dist + Epsilon))
}

// shallowestFace picks the face with the smallest penetration depth for a
// center inside the box. Ties keep the earliest of -X, +X, -Y, +Y, -Z, +Z.
func shallowestFace(c mgl32.Vec3, b AABB) (axis int, sign float32) {
	depths := [6]float32{
		c[0] - b.Min[0], // -X
		b.Max[0] - c[0], // +X
		c[1] - b.Min[1], // -Y
		b.Max[1] - c[1], // +Y
		c[2] - b.Min[2], // -Z
		b.Max[2] - c[2], // +Z
	}

	best := 0
	m := depths[0]
	for i := 1; i < len(depths); i++ {
		if depths[i] < m {
			m = depths[i]
			best = i
		}
	}

	sign = 1
	if best%2 == 0 {
		sign = -1
	}
	return best / 2, sign
}

// Penetration returns how deep a sphere at c overlaps b, or zero.
func Penetration(c mgl32.Vec3, radius float32, b AABB) float32 {
	d := c.Sub(b.ClosestPoint(c)).Len()
	return math32.Max(0, radius-d)
}
