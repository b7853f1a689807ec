package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DirectionalLight is the shadow-casting sun. Direction is the way the light
// travels, from the sun toward the scene.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
}

// ShadowSettings configures the orthographic light frustum.
type ShadowSettings struct {
	HalfExtent float32
	Near       float32
	Far        float32
	// Distance pulls the light eye back from Center along -Direction.
	Distance float32
	Center   mgl32.Vec3
}

// DefaultShadowSettings returns the stock frustum centered on center.
func DefaultShadowSettings(center mgl32.Vec3) ShadowSettings {
	return ShadowSettings{
		HalfExtent: DefaultShadowHalfExtent,
		Near:       DefaultShadowNear,
		Far:        DefaultShadowFar,
		Distance:   DefaultShadowDistance,
		Center:     center,
	}
}

// LightPosition returns the eye used for the light view.
func (s ShadowSettings) LightPosition(direction mgl32.Vec3) mgl32.Vec3 {
	return s.Center.Sub(direction.Mul(s.Distance))
}

// LightSpaceMatrix returns projection x view as seen from the light.
func LightSpaceMatrix(light DirectionalLight, s ShadowSettings) mgl32.Mat4 {
	projection := mgl32.Ortho(-s.HalfExtent, s.HalfExtent, -s.HalfExtent, s.HalfExtent, s.Near, s.Far)
	up := mgl32.Vec3{0, 1, 0}
	dir := light.Direction.Normalize()
	if 1-abs(dir.Dot(up)) < 1e-4 {
		// looking straight down the up axis; any horizontal up works
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(s.LightPosition(dir), s.Center, up)
	return projection.Mul4(view)
}

// PointLight is the supplementary lamp light. The shader receives the
// midpoint of the two lamp positions.
type PointLight struct {
	A, B  mgl32.Vec3
	Color mgl32.Vec3
}

// Position returns the midpoint of the two lamps.
func (l PointLight) Position() mgl32.Vec3 {
	return l.A.Add(l.B).Mul(0.5)
}

// Fog is a distance fog that fades in horizontally around a center.
type Fog struct {
	Color       mgl32.Vec3
	Density     float32
	CenterXZ    mgl32.Vec2
	InnerRadius float32
	OuterRadius float32
}

// Lighting groups the static lighting configuration of a scene.
type Lighting struct {
	Sun    DirectionalLight
	Lamps  PointLight
	Fog    Fog
	Shadow ShadowSettings
	// Emitters are uploaded to the particle program in EmitterUniforms order.
	Emitters []mgl32.Vec3
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
