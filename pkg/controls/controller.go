package controls

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-garden/pkg/camera"
	"github.com/leterax/go-garden/pkg/collision"
	"github.com/leterax/go-garden/pkg/particles"
	"github.com/leterax/go-garden/pkg/render"
	"github.com/leterax/go-garden/pkg/scene"
)

// DefaultMoveSpeed is the walking speed in units per second.
const DefaultMoveSpeed = 2.5

// Controller owns the interactive state of the viewer.
type Controller struct {
	camera   *camera.Camera
	resolver *collision.Resolver
	scene    *scene.Scene
	tour     *camera.Tour
	petals   *particles.System
	logger   *slog.Logger

	moveSpeed float32
	toggles   render.Toggles
	touring   bool
	tourView  mgl32.Mat4
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for toggle and probe records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithMoveSpeed sets the walking speed. Non-positive values are ignored.
func WithMoveSpeed(speed float32) Option {
	return func(c *Controller) {
		if speed > 0 {
			c.moveSpeed = speed
		}
	}
}

// WithPetals lets TogglePetals freeze and resume the petal animation.
func WithPetals(petals *particles.System) Option {
	return func(c *Controller) {
		c.petals = petals
	}
}

// NewController wires the camera to its collision resolver, the editable
// scene and the presentation tour. Any of resolver, scn and tour may be nil.
func NewController(cam *camera.Camera, resolver *collision.Resolver, scn *scene.Scene, tour *camera.Tour, opts ...Option) *Controller {
	c := &Controller{
		camera:    cam,
		resolver:  resolver,
		scene:     scn,
		tour:      tour,
		logger:    slog.Default(),
		moveSpeed: DefaultMoveSpeed,
		toggles:   render.DefaultToggles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Toggles returns the current render options.
func (c *Controller) Toggles() render.Toggles {
	return c.toggles
}

// Touring reports whether the presentation tour drives the camera.
func (c *Controller) Touring() bool {
	return c.touring
}

// Camera returns the player camera.
func (c *Controller) Camera() *camera.Camera {
	return c.camera
}

// Press handles a one-shot action. Held actions are ignored here.
func (c *Controller) Press(a Action) Effect {
	switch a {
	case Quit:
		return EffectQuit
	case ToggleFullscreen:
		return EffectFullscreen

	case SolidMode:
		c.setMode(render.Solid)
	case WireframeMode:
		c.setMode(render.Wireframe)
	case PointsMode:
		c.setMode(render.Points)

	case ToggleShadows:
		c.toggles.Shadows = !c.toggles.Shadows
		c.logger.Info("toggle", "shadows", c.toggles.Shadows)
	case ToggleDirectionalLight:
		c.toggles.DirectionalLight = !c.toggles.DirectionalLight
		c.logger.Info("toggle", "directional_light", c.toggles.DirectionalLight)
	case ToggleLamps:
		c.toggles.Lamps = !c.toggles.Lamps
		c.logger.Info("toggle", "lamps", c.toggles.Lamps)
	case ToggleTour:
		c.setTouring(!c.touring)
	case TogglePetals:
		if c.petals != nil {
			c.petals.SetPaused(!c.petals.Paused())
			c.logger.Info("toggle", "petals", !c.petals.Paused())
		}

	case SelectFirst:
		c.selectObject(0)
	case SelectSecond:
		c.selectObject(1)

	case ProbeCamera:
		yaw, pitch := c.camera.Orientation()
		c.logger.Info("camera probe", "position", c.camera.Position(), "yaw", yaw, "pitch", pitch)
	case LogSpawnPosition:
		c.logger.Info("spawn position", "position", c.camera.Position())
	}
	return EffectNone
}

func (c *Controller) setMode(mode render.RenderMode) {
	c.toggles.Mode = mode
	c.logger.Info("render mode", "mode", mode)
}

func (c *Controller) selectObject(index int) {
	if c.scene == nil || !c.scene.Select(index) {
		return
	}
	c.logger.Info("selected", "object", c.scene.Selected().Name)
}

func (c *Controller) setTouring(on bool) {
	if c.tour == nil {
		return
	}
	c.touring = on
	c.tour.Reset()
	c.tourView = mgl32.Mat4{}
	if on {
		if start, ok := c.tour.Start(); ok {
			c.camera.SetPosition(start)
		}
	}
	c.logger.Info("toggle", "tour", on)
}

// Look applies cursor motion to the camera.
func (c *Controller) Look(xpos, ypos float64) {
	c.camera.HandleMouseMovement(xpos, ypos)
}

// Update advances one frame. held reports whether an action's key is down.
// In tour mode the tour places the camera and collision is skipped;
// otherwise the camera walks and is then corrected against the scene.
func (c *Controller) Update(deltaTime float32, held func(Action) bool) {
	for _, a := range HeldActions {
		if held(a) {
			c.hold(a, deltaTime)
		}
	}

	if c.touring {
		if pos, view, ok := c.tour.Advance(deltaTime); ok {
			c.camera.SetPosition(pos)
			c.tourView = view
		}
		return
	}

	if c.resolver != nil {
		c.resolver.Apply(c.camera)
	}
}

func (c *Controller) hold(a Action, deltaTime float32) {
	step := c.moveSpeed * deltaTime
	switch a {
	case MoveForward, MoveBackward, MoveLeft, MoveRight:
		if !c.touring {
			c.camera.Move(moveDirections[a], step)
		}
	case RotateSelectedLeft:
		c.editScene(func(s *scene.Scene) { s.RotateSelected(-1, deltaTime) })
	case RotateSelectedRight:
		c.editScene(func(s *scene.Scene) { s.RotateSelected(1, deltaTime) })
	case ShrinkSelected:
		c.editScene(func(s *scene.Scene) { s.ScaleSelected(-1, deltaTime) })
	case GrowSelected:
		c.editScene(func(s *scene.Scene) { s.ScaleSelected(1, deltaTime) })
	}
}

func (c *Controller) editScene(edit func(*scene.Scene)) {
	if c.scene != nil {
		edit(c.scene)
	}
}

var moveDirections = map[Action]camera.Direction{
	MoveForward:  camera.Forward,
	MoveBackward: camera.Backward,
	MoveLeft:     camera.Left,
	MoveRight:    camera.Right,
}

// View returns the view matrix for this frame: the tour's look-ahead view
// while touring, the camera's own view otherwise.
func (c *Controller) View() mgl32.Mat4 {
	if c.touring && c.tourView != (mgl32.Mat4{}) {
		return c.tourView
	}
	return c.camera.ViewMatrix()
}
