// Package scene describes the garden: what is drawn, where the camera may
// go and how it is lit. A Config is loaded from TOML and turned into the
// collision, lighting and camera values the viewer wires together.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the whole scene description as stored on disk.
type Config struct {
	Camera    CameraConfig    `toml:"camera"`
	Collision CollisionConfig `toml:"collision"`
	Lighting  LightingConfig  `toml:"lighting"`
	Fog       FogConfig       `toml:"fog"`
	Shadow    ShadowConfig    `toml:"shadow"`
	Sky       SkyConfig       `toml:"sky"`
	Particles ParticleConfig  `toml:"particles"`
	Tour      TourConfig      `toml:"tour"`
	Objects   []ObjectConfig  `toml:"objects"`
}

// CameraConfig places the player camera.
type CameraConfig struct {
	Position    mgl32.Vec3 `toml:"position"`
	Target      mgl32.Vec3 `toml:"target"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
}

// BoundConfig is the walkable area.
type BoundConfig struct {
	MinX    float32 `toml:"min_x"`
	MaxX    float32 `toml:"max_x"`
	MinZ    float32 `toml:"min_z"`
	MaxZ    float32 `toml:"max_z"`
	Floor   float32 `toml:"floor"`
	Ceiling float32 `toml:"ceiling"`
}

// BoxConfig is one solid obstacle.
type BoxConfig struct {
	Name string     `toml:"name"`
	Min  mgl32.Vec3 `toml:"min"`
	Max  mgl32.Vec3 `toml:"max"`
}

// CollisionConfig holds the player sphere and everything it collides with.
type CollisionConfig struct {
	Radius float32     `toml:"radius"`
	Bound  BoundConfig `toml:"bound"`
	Boxes  []BoxConfig `toml:"boxes"`
}

// LightingConfig holds the sun and the lamp pair.
type LightingConfig struct {
	// Direction is the way sunlight travels.
	Direction mgl32.Vec3 `toml:"direction"`
	Color     mgl32.Vec3 `toml:"color"`

	LampA     mgl32.Vec3 `toml:"lamp_a"`
	LampB     mgl32.Vec3 `toml:"lamp_b"`
	LampColor mgl32.Vec3 `toml:"lamp_color"`
}

// FogConfig is the horizontal distance fog.
type FogConfig struct {
	Color       mgl32.Vec3 `toml:"color"`
	Density     float32    `toml:"density"`
	CenterXZ    mgl32.Vec2 `toml:"center_xz"`
	InnerRadius float32    `toml:"inner_radius"`
	OuterRadius float32    `toml:"outer_radius"`
}

// ShadowConfig sizes the shadow map and the light frustum. The frustum is
// centered on the bound at CenterY.
type ShadowConfig struct {
	MapSize    int     `toml:"map_size"`
	HalfExtent float32 `toml:"half_extent"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
	Distance   float32 `toml:"distance"`
	CenterY    float32 `toml:"center_y"`
}

// SkyConfig lists cubemap faces in +X, -X, +Y, -Y, +Z, -Z order.
type SkyConfig struct {
	Faces [6]string `toml:"faces"`
	// FaceSize is the edge every face is resampled to. Zero keeps the size
	// of the first face.
	FaceSize int `toml:"face_size"`
}

// ParticleConfig controls the falling petals.
type ParticleConfig struct {
	Count    int          `toml:"count"`
	Seed     int64        `toml:"seed"`
	Emitters []mgl32.Vec3 `toml:"emitters"`
}

// TourConfig is the presentation loop.
type TourConfig struct {
	Speed  float32      `toml:"speed"`
	Points []mgl32.Vec3 `toml:"points"`
}

// BobConfig animates an object with a vertical bob and a yaw sway.
type BobConfig struct {
	Height        float32 `toml:"height"`
	Frequency     float32 `toml:"frequency"`
	Sway          float32 `toml:"sway"`
	SwayFrequency float32 `toml:"sway_frequency"`
}

// ObjectConfig is one drawable. Rotation is in degrees.
type ObjectConfig struct {
	Name     string     `toml:"name"`
	Mesh     MeshKind   `toml:"mesh"`
	Size     mgl32.Vec3 `toml:"size"`
	Color    mgl32.Vec3 `toml:"color"`
	Position mgl32.Vec3 `toml:"position"`
	Rotation mgl32.Vec3 `toml:"rotation"`
	Scale    float32    `toml:"scale"`
	Bob      *BobConfig `toml:"bob,omitempty"`
}
