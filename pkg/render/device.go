// Package render drives the per-frame pass sequence of the viewer: a depth-only
// shadow pass, a lit color pass that samples it, a sky backdrop and a blended
// particle overlay. It only talks to the graphics device through the small
// interfaces declared here, so the pass logic can be exercised without a GL context.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderMode selects how color-pass polygons are rasterised.
type RenderMode int

const (
	Solid RenderMode = iota
	Wireframe
	Points
)

// String returns the mode name.
func (m RenderMode) String() string {
	switch m {
	case Solid:
		return "solid"
	case Wireframe:
		return "wireframe"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// DepthFunc is the depth comparison used by the device.
type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

// ClearMask selects buffers to clear.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
)

// TextureTarget is the kind of texture bound to a unit.
type TextureTarget int

const (
	Texture2D TextureTarget = iota
	TextureCube
)

// Texture is a device texture.
type Texture interface {
	Handle() uint32
}

// Framebuffer is an off-screen render target.
type Framebuffer interface {
	Handle() uint32
	Size() (width, height int)
}

// Program is a linked shader program with uniforms addressed by name.
type Program interface {
	Use()
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, vec mgl32.Vec2)
	SetVec3(name string, vec mgl32.Vec3)
	SetMat3(name string, mat mgl32.Mat3)
	SetMat4(name string, mat mgl32.Mat4)
}

// Drawable is GPU-resident geometry. Draw issues the draw call with the
// given program already bound; implementations may upload their own
// material uniforms first.
type Drawable interface {
	Draw(p Program)
}

// Device is the fixed-function state the pipeline touches.
type Device interface {
	// BindFramebuffer binds fb, or the default target when fb is nil.
	BindFramebuffer(fb Framebuffer)
	Viewport(width, height int)
	Clear(mask ClearMask)
	PolygonMode(mode RenderMode)
	DepthFunc(fn DepthFunc)
	DepthMask(write bool)
	Blend(enabled bool)
	// BindTexture binds tex to unit, or unbinds the unit when tex is nil.
	BindTexture(unit int, target TextureTarget, tex Texture)
}
