package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-garden/pkg/camera"
	"github.com/leterax/go-garden/pkg/collision"
	"github.com/leterax/go-garden/pkg/render"
)

var (
	// ErrUnknownMesh is returned for an object whose mesh kind is not built in.
	ErrUnknownMesh = errors.New("scene: unknown mesh")
	// ErrInvalidScale is returned for a non-positive object scale.
	ErrInvalidScale = errors.New("scene: scale must be positive")
	// ErrInvalidShadow is returned for an unusable shadow configuration.
	ErrInvalidShadow = errors.New("scene: invalid shadow settings")
	// ErrInvalidLight is returned when the sun has no direction.
	ErrInvalidLight = errors.New("scene: light direction must be non-zero")
	// ErrTooManyEmitters is returned when more emitters are configured than
	// the particle program accepts.
	ErrTooManyEmitters = errors.New("scene: too many particle emitters")
)

// Validate checks the configuration. Collision problems wrap the
// collision package's sentinel errors.
func (c Config) Validate() error {
	if _, err := c.Resolver(); err != nil {
		return err
	}
	s := c.Shadow
	if s.MapSize <= 0 || s.HalfExtent <= 0 || s.Near >= s.Far {
		return fmt.Errorf("%w: %+v", ErrInvalidShadow, s)
	}
	if c.Lighting.Direction.Len() < 1e-6 {
		return fmt.Errorf("%w: %v", ErrInvalidLight, c.Lighting.Direction)
	}
	if len(c.Particles.Emitters) > len(render.EmitterUniforms) {
		return fmt.Errorf("%w: %d > %d", ErrTooManyEmitters, len(c.Particles.Emitters), len(render.EmitterUniforms))
	}
	for _, o := range c.Objects {
		if !o.Mesh.Valid() {
			return fmt.Errorf("object %q: %w %q", o.Name, ErrUnknownMesh, o.Mesh)
		}
		if o.Scale <= 0 {
			return fmt.Errorf("object %q: %w", o.Name, ErrInvalidScale)
		}
	}
	return nil
}

// Bound converts the walkable area.
func (c Config) Bound() collision.Bound {
	b := c.Collision.Bound
	return collision.Bound{
		MinX:    b.MinX,
		MaxX:    b.MaxX,
		MinZ:    b.MinZ,
		MaxZ:    b.MaxZ,
		Floor:   b.Floor,
		Ceiling: b.Ceiling,
	}
}

// Resolver builds the collision resolver for the player sphere.
func (c Config) Resolver() (*collision.Resolver, error) {
	boxes := make([]collision.AABB, 0, len(c.Collision.Boxes))
	for _, b := range c.Collision.Boxes {
		boxes = append(boxes, collision.AABB{Min: b.Min, Max: b.Max})
	}
	r, err := collision.NewResolver(c.Bound(), c.Collision.Radius, boxes)
	if err != nil {
		return nil, fmt.Errorf("collision config: %w", err)
	}
	return r, nil
}

// SceneLighting converts the lighting, fog and shadow sections.
func (c Config) SceneLighting() render.Lighting {
	l := c.Lighting
	s := c.Shadow
	return render.Lighting{
		Sun: render.DirectionalLight{
			Direction: l.Direction,
			Color:     l.Color,
		},
		Lamps: render.PointLight{
			A:     l.LampA,
			B:     l.LampB,
			Color: l.LampColor,
		},
		Fog: render.Fog{
			Color:       c.Fog.Color,
			Density:     c.Fog.Density,
			CenterXZ:    c.Fog.CenterXZ,
			InnerRadius: c.Fog.InnerRadius,
			OuterRadius: c.Fog.OuterRadius,
		},
		Shadow: render.ShadowSettings{
			HalfExtent: s.HalfExtent,
			Near:       s.Near,
			Far:        s.Far,
			Distance:   s.Distance,
			Center:     c.Bound().Center(s.CenterY),
		},
		Emitters: append([]mgl32.Vec3(nil), c.Particles.Emitters...),
	}
}

// NewTour builds the presentation tour.
func (c Config) NewTour() *camera.Tour {
	return camera.NewTour(c.Tour.Points, c.Tour.Speed)
}

// NewCamera places the player camera looking at its target.
func (c Config) NewCamera() *camera.Camera {
	cam := camera.NewCameraLookingAt(c.Camera.Position, c.Camera.Target)
	if c.Camera.Sensitivity > 0 {
		cam.SetMouseSensitivity(c.Camera.Sensitivity)
	}
	return cam
}

// Scene is the mutable runtime copy of the configured objects plus the
// current selection.
type Scene struct {
	objects  []*Object
	selected int
}

// New creates the runtime scene. The first object starts selected.
func New(c Config) *Scene {
	s := &Scene{}
	for _, oc := range c.Objects {
		s.objects = append(s.objects, newObject(oc))
	}
	return s
}

// Objects returns the objects in draw order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Select makes the object at index the target of edits. It returns false
// and keeps the selection when index is out of range.
func (s *Scene) Select(index int) bool {
	if index < 0 || index >= len(s.objects) {
		return false
	}
	s.selected = index
	return true
}

// Selected returns the selected object, or nil for an empty scene.
func (s *Scene) Selected() *Object {
	if len(s.objects) == 0 {
		return nil
	}
	return s.objects[s.selected]
}

// RotateSelected turns the selection by direction*RotateSpeed*deltaTime.
func (s *Scene) RotateSelected(direction, deltaTime float32) {
	if o := s.Selected(); o != nil {
		o.Rotate(direction * RotateSpeed * deltaTime)
	}
}

// ScaleSelected grows or shrinks the selection by direction*ScaleSpeed*deltaTime.
func (s *Scene) ScaleSelected(direction, deltaTime float32) {
	if o := s.Selected(); o != nil {
		o.Grow(direction * ScaleSpeed * deltaTime)
	}
}
