// Package particles generates the falling-petal point cloud and keeps its
// animation clock. Motion itself happens in the vertex shader.
package particles

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCount is the number of petals in the garden.
const DefaultCount = 600

// TimeScale slows the shader clock relative to wall time.
const TimeScale = 0.6

// Spawn volume around each emitter, in world units.
const (
	spreadXZ = 6.0
	spreadY  = 1.2
)

// Cloud is the CPU-side petal data: a local offset and a phase seed in
// [0, 1) per petal.
type Cloud struct {
	Offsets []mgl32.Vec3
	Seeds   []float32
}

// Len returns the number of petals.
func (c Cloud) Len() int {
	return len(c.Offsets)
}

// Generate builds count petals from a deterministic seed. Offsets span
// ±3 on x and z and 0 to 1.2 on y.
func Generate(count int, seed int64) Cloud {
	if count < 0 {
		count = 0
	}
	rng := rand.New(rand.NewSource(seed))

	cloud := Cloud{
		Offsets: make([]mgl32.Vec3, count),
		Seeds:   make([]float32, count),
	}
	for i := range count {
		cloud.Offsets[i] = mgl32.Vec3{
			(rng.Float32() - 0.5) * spreadXZ,
			rng.Float32() * spreadY,
			(rng.Float32() - 0.5) * spreadXZ,
		}
		cloud.Seeds[i] = rng.Float32()
	}
	return cloud
}

// System owns the petal cloud and the accumulated shader time.
type System struct {
	cloud  Cloud
	time   float32
	paused bool
}

// NewSystem creates a system for cloud with the clock at zero.
func NewSystem(cloud Cloud) *System {
	return &System{cloud: cloud}
}

// Cloud returns the petal data for upload.
func (s *System) Cloud() Cloud {
	return s.cloud
}

// Advance moves the clock by deltaTime scaled by TimeScale and returns the
// new value.
func (s *System) Advance(deltaTime float32) float32 {
	if !s.paused && deltaTime > 0 {
		s.time += deltaTime * TimeScale
	}
	return s.time
}

// Time returns the accumulated shader time.
func (s *System) Time() float32 {
	return s.time
}

// SetPaused freezes or resumes the clock.
func (s *System) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether the clock is frozen.
func (s *System) Paused() bool {
	return s.paused
}
