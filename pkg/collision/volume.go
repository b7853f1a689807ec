// Package collision keeps a spherical camera body inside the play area and
// out of static axis-aligned obstacles using purely positional correction.
package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned box obstacle.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB returns a box spanning the two corners in any order.
func NewAABB(a, b mgl32.Vec3) AABB {
	return AABB{
		Min: mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])},
		Max: mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])},
	}
}

// Valid reports whether Min <= Max on every axis.
func (b AABB) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the box midpoint.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent on each axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// ClosestPoint returns the point of the box nearest to p.
func (b AABB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl32.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl32.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p mgl32.Vec3) bool {
	return b.ClosestPoint(p) == p
}

// Intersects reports whether a sphere at center with radius overlaps the box.
func (b AABB) Intersects(center mgl32.Vec3, radius float32) bool {
	d := center.Sub(b.ClosestPoint(center))
	return d.Dot(d) < radius*radius
}

func (b AABB) String() string {
	return fmt.Sprintf("AABB{min=%v max=%v}", b.Min, b.Max)
}

// Bound is the outer extent of navigable space: a rectangle on the XZ plane
// plus floor and ceiling heights.
type Bound struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
	Floor      float32
	Ceiling    float32
}

// Clamp saturates p so that a sphere of radius stays inside the bound
// horizontally and its center stays between floor and ceiling.
func (b Bound) Clamp(p mgl32.Vec3, radius float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p[0], b.MinX+radius, b.MaxX-radius),
		mgl32.Clamp(p[1], b.Floor, b.Ceiling),
		mgl32.Clamp(p[2], b.MinZ+radius, b.MaxZ-radius),
	}
}

// Center returns the middle of the bound at the given height.
func (b Bound) Center(y float32) mgl32.Vec3 {
	return mgl32.Vec3{0.5 * (b.MinX + b.MaxX), y, 0.5 * (b.MinZ + b.MaxZ)}
}
