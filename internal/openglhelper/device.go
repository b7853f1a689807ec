package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/go-garden/pkg/render"
)

var _ render.Device = Device{}

// Device issues the render package's state changes as GL calls.
type Device struct{}

// BindFramebuffer binds fb, or the window when fb is nil.
func (Device) BindFramebuffer(fb render.Framebuffer) {
	if fb == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.Handle())
}

// Viewport sets the viewport from the origin.
func (Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the selected buffers.
func (Device) Clear(mask render.ClearMask) {
	var bits uint32
	if mask&render.ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&render.ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// PolygonMode sets front and back rasterisation.
func (Device) PolygonMode(mode render.RenderMode) {
	switch mode {
	case render.Wireframe:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case render.Points:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// DepthFunc sets the depth comparison.
func (Device) DepthFunc(fn render.DepthFunc) {
	if fn == render.DepthLessEqual {
		gl.DepthFunc(gl.LEQUAL)
		return
	}
	gl.DepthFunc(gl.LESS)
}

// DepthMask enables or disables depth writes.
func (Device) DepthMask(write bool) {
	gl.DepthMask(write)
}

// Blend toggles standard alpha blending.
func (Device) Blend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		return
	}
	gl.Disable(gl.BLEND)
}

// BindTexture binds tex on unit, or clears the unit when tex is nil.
func (Device) BindTexture(unit int, target render.TextureTarget, tex render.Texture) {
	glTarget := uint32(gl.TEXTURE_2D)
	if target == render.TextureCube {
		glTarget = gl.TEXTURE_CUBE_MAP
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	var id uint32
	if tex != nil {
		id = tex.Handle()
	}
	gl.BindTexture(glTarget, id)
}
