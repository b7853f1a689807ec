package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	mouseCaptured bool

	// windowed geometry restored when leaving fullscreen
	fullscreen              bool
	savedX, savedY          int
	savedWidth, savedHeight int
}

// NewWindow creates a GLFW window with a 4.6 core context and the global
// GL state the viewer relies on: depth test, back-face culling, sRGB
// output and shader-controlled point size.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	slog.Info("opengl context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()

	return &Window{
		glfwWindow: glfwWindow,
		width:      fbWidth,
		height:     fbHeight,
	}, nil
}

// SetClearColor sets the color used when the default target is cleared
func (w *Window) SetClearColor(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose asks the frame loop to stop
func (w *Window) SetShouldClose(close bool) {
	w.glfwWindow.SetShouldClose(close)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Time returns seconds since GLFW was initialised
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// IsKeyPressed reports whether key is currently held
func (w *Window) IsKeyPressed(key glfw.Key) bool {
	return w.glfwWindow.GetKey(key) == glfw.Press
}

// OnResize records a new framebuffer size
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}

// ToggleFullscreen switches between windowed mode and the primary monitor.
func (w *Window) ToggleFullscreen() {
	if w.fullscreen {
		w.glfwWindow.SetMonitor(nil, w.savedX, w.savedY, w.savedWidth, w.savedHeight, glfw.DontCare)
		w.fullscreen = false
		slog.Info("fullscreen", "enabled", false)
		return
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		slog.Warn("fullscreen unavailable: no primary monitor")
		return
	}
	mode := monitor.GetVideoMode()

	w.savedX, w.savedY = w.glfwWindow.GetPos()
	w.savedWidth, w.savedHeight = w.glfwWindow.GetSize()
	w.glfwWindow.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.fullscreen = true
	slog.Info("fullscreen", "enabled", true, "width", mode.Width, "height", mode.Height)
}
