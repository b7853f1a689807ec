// Package viewer runs the interactive garden: it opens the window, builds
// GPU resources from a scene description and drives the frame loop.
package viewer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-garden/internal/cubemap"
	"github.com/leterax/go-garden/internal/openglhelper"
	"github.com/leterax/go-garden/pkg/controls"
	"github.com/leterax/go-garden/pkg/particles"
	"github.com/leterax/go-garden/pkg/render"
	"github.com/leterax/go-garden/pkg/scene"
)

// ClearColor is the window background behind the sky.
var ClearColor = mgl32.Vec4{0.7, 0.7, 0.7, 1.0}

// Options configures a Viewer.
type Options struct {
	Width, Height int
	Title         string
	VSync         bool
	// ShaderDir overrides the built-in shader sources.
	ShaderDir string
	Scene     scene.Config
	Logger    *slog.Logger
}

// Viewer owns the window, the GPU resources and the frame loop.
type Viewer struct {
	window *openglhelper.Window
	logger *slog.Logger

	controller *controls.Controller
	scene      *scene.Scene
	particles  *particles.System
	pipeline   *render.Pipeline

	shaders []*openglhelper.Shader
	meshes  map[*scene.Object]*openglhelper.Mesh
	extra   []*openglhelper.Mesh

	shadowFB    *openglhelper.Framebuffer
	shadowDepth *openglhelper.Texture
	sky         *openglhelper.Texture

	lastFrameTime float64
	totalTime     float32
}

// New opens the window and builds everything the scene needs. The
// configuration is expected to be validated.
func New(opts Options) (*Viewer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Scene

	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, err
	}

	window, err := openglhelper.NewWindow(opts.Width, opts.Height, opts.Title, opts.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v := &Viewer{
		window: window,
		logger: logger,
		scene:  scene.New(cfg),
		meshes: make(map[*scene.Object]*openglhelper.Mesh),
	}

	cam := cfg.NewCamera()
	width, height := window.Size()
	cam.UpdateProjectionMatrix(width, height)

	v.particles = particles.NewSystem(particles.Generate(cfg.Particles.Count, cfg.Particles.Seed))
	v.controller = controls.NewController(cam, resolver, v.scene, cfg.NewTour(),
		controls.WithLogger(logger),
		controls.WithMoveSpeed(cfg.Camera.Speed),
		controls.WithPetals(v.particles))

	if err := v.initPipeline(opts.ShaderDir, cfg); err != nil {
		v.Cleanup()
		return nil, err
	}

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(v.keyCallback)
	glfwWindow.SetCursorPosCallback(v.cursorPosCallback)
	glfwWindow.SetFramebufferSizeCallback(v.framebufferSizeCallback)
	window.SetMouseCaptured(true)
	window.SetClearColor(ClearColor)

	return v, nil
}

func (v *Viewer) initPipeline(shaderDir string, cfg scene.Config) error {
	fsys, err := shaderFS(shaderDir)
	if err != nil {
		return fmt.Errorf("shader sources: %w", err)
	}

	var programs render.Programs
	for _, p := range []struct {
		name string
		dst  *render.Program
	}{
		{depthShader, &programs.Depth},
		{sceneShader, &programs.Scene},
		{skyShader, &programs.Sky},
		{petalShader, &programs.Particle},
	} {
		shader, err := openglhelper.LoadShader(fsys, p.name)
		if err != nil {
			return fmt.Errorf("failed to load shader: %w", err)
		}
		v.shaders = append(v.shaders, shader)
		*p.dst = shader
	}

	v.shadowFB, v.shadowDepth, err = openglhelper.NewShadowFramebuffer(cfg.Shadow.MapSize)
	if err != nil {
		return err
	}

	v.pipeline, err = render.NewPipeline(openglhelper.Device{}, programs,
		render.ShadowTarget{Framebuffer: v.shadowFB, Depth: v.shadowDepth},
		cfg.SceneLighting())
	if err != nil {
		return err
	}

	for _, obj := range v.scene.Objects() {
		mesh := newObjectMesh(obj.Mesh).WithColor(obj.Color)
		v.meshes[obj] = mesh
	}

	v.initSky(cfg.Sky)

	cloud := v.particles.Cloud()
	if cloud.Len() > 0 {
		petals := openglhelper.NewPointCloud(cloud.Offsets, cloud.Seeds)
		v.extra = append(v.extra, petals)
		v.pipeline.SetParticles(petals)
	}

	v.logger.Info("scene ready",
		"objects", len(v.scene.Objects()),
		"colliders", len(cfg.Collision.Boxes),
		"petals", cloud.Len(),
		"shadow_map", cfg.Shadow.MapSize)
	return nil
}

// initSky attaches the sky when its faces load. A missing sky only leaves
// the clear color behind the scene.
func (v *Viewer) initSky(cfg scene.SkyConfig) {
	faces, err := cubemap.Load(cfg.Faces, cfg.FaceSize)
	if err != nil {
		v.logger.Warn("sky disabled", "err", err)
		return
	}
	v.sky = openglhelper.NewCubemap(faces)
	box := openglhelper.NewSkyboxCube()
	v.extra = append(v.extra, box)
	v.pipeline.SetSky(&render.Sky{Mesh: box, Cubemap: v.sky})
}

func newObjectMesh(kind scene.MeshKind) *openglhelper.Mesh {
	if kind == scene.MeshPlane {
		return openglhelper.NewPlane()
	}
	return openglhelper.NewCube()
}

// Run drives the frame loop until the window is asked to close.
func (v *Viewer) Run() {
	v.lastFrameTime = v.window.Time()

	for !v.window.ShouldClose() {
		now := v.window.Time()
		deltaTime := float32(now - v.lastFrameTime)
		v.lastFrameTime = now
		v.totalTime += deltaTime

		v.controller.Update(deltaTime, v.held)
		v.particles.Advance(deltaTime)

		v.render()

		v.window.SwapBuffers()
		v.window.PollEvents()
	}

	v.Cleanup()
}

func (v *Viewer) held(a controls.Action) bool {
	key, ok := heldKeys[a]
	return ok && v.window.IsKeyPressed(key)
}

func (v *Viewer) render() {
	cam := v.controller.Camera()
	width, height := v.window.Size()

	objects := make([]render.Object, 0, len(v.scene.Objects()))
	for _, obj := range v.scene.Objects() {
		objects = append(objects, render.Object{
			Name:  obj.Name,
			Model: obj.Model(v.totalTime),
			Mesh:  v.meshes[obj],
		})
	}

	v.pipeline.Render(render.FrameConfig{
		Toggles:        v.controller.Toggles(),
		View:           v.controller.View(),
		Projection:     cam.ProjectionMatrix(),
		CameraPos:      cam.Position(),
		ViewportWidth:  width,
		ViewportHeight: height,
		ParticleTime:   v.particles.Time(),
		Objects:        objects,
	})
}

// Cleanup frees all GPU resources and closes the window.
func (v *Viewer) Cleanup() {
	for _, m := range v.meshes {
		m.Delete()
	}
	for _, m := range v.extra {
		m.Delete()
	}
	for _, s := range v.shaders {
		s.Delete()
	}
	if v.shadowFB != nil {
		v.shadowFB.Delete()
	}
	if v.shadowDepth != nil {
		v.shadowDepth.Delete()
	}
	if v.sky != nil {
		v.sky.Delete()
	}
	v.window.Close()
}

func (v *Viewer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	a, ok := pressKeys[key]
	if !ok {
		return
	}
	switch v.controller.Press(a) {
	case controls.EffectQuit:
		v.window.SetShouldClose(true)
	case controls.EffectFullscreen:
		v.window.ToggleFullscreen()
		v.controller.Camera().ResetMouseState()
	}
}

func (v *Viewer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if v.window.IsMouseCaptured() {
		v.controller.Look(xpos, ypos)
	}
}

func (v *Viewer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	v.window.OnResize(width, height)
	v.controller.Camera().UpdateProjectionMatrix(width, height)
	v.logger.Info("window resized", "width", width, "height", height)
}
