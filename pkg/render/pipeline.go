package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMissingProgram is returned when a required program is not supplied.
var ErrMissingProgram = errors.New("render: missing program")

// Object is one independently positioned piece of scene geometry.
type Object struct {
	Name  string
	Model mgl32.Mat4
	Mesh  Drawable
}

// Toggles are the user-switchable render options. They only affect the color pass.
type Toggles struct {
	Mode             RenderMode
	Shadows          bool
	DirectionalLight bool
	Lamps            bool
}

// DefaultToggles returns everything on in solid mode.
func DefaultToggles() Toggles {
	return Toggles{Mode: Solid, Shadows: true, DirectionalLight: true, Lamps: true}
}

// ShadowsSampled reports whether the color pass may read the shadow map.
// Without the sun there is nothing to cast shadows.
func (t Toggles) ShadowsSampled() bool {
	return t.Shadows && t.DirectionalLight
}

// FrameConfig is the snapshot of everything that varies per frame.
type FrameConfig struct {
	Toggles Toggles

	View       mgl32.Mat4
	Projection mgl32.Mat4
	CameraPos  mgl32.Vec3

	ViewportWidth  int
	ViewportHeight int

	// ParticleTime is accumulated by the particle system, not by the pipeline.
	ParticleTime float32

	Objects []Object
}

// FrameResult reports what a frame used.
type FrameResult struct {
	LightSpace     mgl32.Mat4
	ShadowsSampled bool
}

// Programs holds the shader programs for each pass.
type Programs struct {
	Depth    Program
	Scene    Program
	Sky      Program
	Particle Program
}

// ShadowTarget is the depth-only render target and its depth texture.
type ShadowTarget struct {
	Framebuffer Framebuffer
	Depth       Texture
}

// Sky is the backdrop cube and its cubemap.
type Sky struct {
	Mesh    Drawable
	Cubemap Texture
}

// Pipeline renders one frame as shadow pass, color pass, sky pass and
// particle pass, in that order.
type Pipeline struct {
	device   Device
	programs Programs
	shadow   ShadowTarget
	lighting Lighting

	sky       *Sky
	particles Drawable

	lightSpace mgl32.Mat4
}

// NewPipeline creates a pipeline. The depth and scene programs are required;
// sky and particle passes are skipped until their geometry is attached.
func NewPipeline(device Device, programs Programs, shadow ShadowTarget, lighting Lighting) (*Pipeline, error) {
	if programs.Depth == nil || programs.Scene == nil {
		return nil, ErrMissingProgram
	}
	return &Pipeline{
		device:   device,
		programs: programs,
		shadow:   shadow,
		lighting: lighting,
	}, nil
}

// SetSky attaches the sky backdrop. It needs Programs.Sky.
func (p *Pipeline) SetSky(sky *Sky) {
	p.sky = sky
}

// SetParticles attaches the particle geometry. It needs Programs.Particle.
func (p *Pipeline) SetParticles(d Drawable) {
	p.particles = d
}

// Lighting returns the static lighting configuration.
func (p *Pipeline) Lighting() Lighting {
	return p.lighting
}

// LightSpace returns the light-space transform of the last rendered frame.
func (p *Pipeline) LightSpace() mgl32.Mat4 {
	return p.lightSpace
}

// Render draws one frame. The light-space transform is computed once and the
// same value feeds both the shadow and color passes.
func (p *Pipeline) Render(frame FrameConfig) FrameResult {
	p.lightSpace = LightSpaceMatrix(p.lighting.Sun, p.lighting.Shadow)
	lightSpace := p.lightSpace

	p.shadowPass(frame, lightSpace)
	p.colorPass(frame, lightSpace)
	p.skyPass(frame)
	p.particlePass(frame)

	return FrameResult{
		LightSpace:     lightSpace,
		ShadowsSampled: frame.Toggles.ShadowsSampled(),
	}
}

// shadowPass renders scene depth from the light into the shadow target.
func (p *Pipeline) shadowPass(frame FrameConfig, lightSpace mgl32.Mat4) {
	d := p.device

	width, height := p.shadow.Framebuffer.Size()
	d.PolygonMode(Solid)
	d.Viewport(width, height)
	d.BindFramebuffer(p.shadow.Framebuffer)
	d.Clear(ClearDepth)

	depth := p.programs.Depth
	depth.Use()
	depth.SetMat4(UniformLightSpace, lightSpace)

	for _, obj := range frame.Objects {
		depth.SetMat4(UniformModel, obj.Model)
		obj.Mesh.Draw(depth)
	}

	d.BindFramebuffer(nil)
}

// colorPass renders lit, shadowed geometry into the default target.
func (p *Pipeline) colorPass(frame FrameConfig, lightSpace mgl32.Mat4) {
	d := p.device
	toggles := frame.Toggles

	d.Viewport(frame.ViewportWidth, frame.ViewportHeight)
	d.Clear(ClearColor | ClearDepth)
	d.PolygonMode(toggles.Mode)

	scene := p.programs.Scene
	scene.Use()

	scene.SetMat4(UniformView, frame.View)
	scene.SetMat4(UniformProjection, frame.Projection)
	scene.SetVec3(UniformCameraPos, frame.CameraPos)
	scene.SetMat4(UniformLightSpace, lightSpace)

	sun := p.lighting.Sun
	scene.SetVec3(UniformLightDir, sun.Direction.Normalize())
	scene.SetVec3(UniformLightColor, sun.Color)
	scene.SetBool(UniformUseDirectional, toggles.DirectionalLight)

	lamps := p.lighting.Lamps
	if toggles.Lamps {
		scene.SetVec3(UniformLampPos, lamps.Position())
		scene.SetVec3(UniformLampColor, lamps.Color)
	} else {
		scene.SetVec3(UniformLampPos, zeroVec3)
		scene.SetVec3(UniformLampColor, zeroVec3)
	}

	fog := p.lighting.Fog
	scene.SetVec3(UniformFogColor, fog.Color)
	scene.SetFloat(UniformFogDensity, fog.Density)
	scene.SetVec2(UniformFogCenterXZ, fog.CenterXZ)
	scene.SetFloat(UniformFogInnerRadius, fog.InnerRadius)
	scene.SetFloat(UniformFogOuterRadius, fog.OuterRadius)

	sampled := toggles.ShadowsSampled()
	scene.SetBool(UniformUseShadows, sampled)
	scene.SetInt(UniformShadowMap, ShadowTextureUnit)
	if sampled {
		d.BindTexture(ShadowTextureUnit, Texture2D, p.shadow.Depth)
	} else {
		d.BindTexture(ShadowTextureUnit, Texture2D, nil)
	}

	for _, obj := range frame.Objects {
		scene.SetMat4(UniformModel, obj.Model)
		scene.SetMat3(UniformNormalMatrix, NormalMatrix(frame.View, obj.Model))
		obj.Mesh.Draw(scene)
	}

	d.PolygonMode(Solid)
}

// skyPass draws the backdrop behind everything already in the depth buffer.
func (p *Pipeline) skyPass(frame FrameConfig) {
	if p.sky == nil || p.programs.Sky == nil {
		return
	}
	d := p.device

	d.DepthFunc(DepthLessEqual)
	d.DepthMask(false)

	sky := p.programs.Sky
	sky.Use()
	sky.SetMat4(UniformView, RotationOnly(frame.View))
	sky.SetMat4(UniformProjection, frame.Projection)
	sky.SetInt(UniformSkybox, SkyTextureUnit)

	d.BindTexture(SkyTextureUnit, TextureCube, p.sky.Cubemap)
	p.sky.Mesh.Draw(sky)

	d.DepthMask(true)
	d.DepthFunc(DepthLess)
}

// particlePass blends the particles over the frame without writing depth.
func (p *Pipeline) particlePass(frame FrameConfig) {
	if p.particles == nil || p.programs.Particle == nil {
		return
	}
	d := p.device

	prog := p.programs.Particle
	prog.Use()
	prog.SetFloat(UniformTime, frame.ParticleTime)
	prog.SetMat4(UniformView, frame.View)
	prog.SetMat4(UniformProjection, frame.Projection)
	for i, pos := range p.lighting.Emitters {
		if i >= len(EmitterUniforms) {
			break
		}
		prog.SetVec3(EmitterUniforms[i], pos)
	}

	d.Blend(true)
	d.DepthMask(false)

	p.particles.Draw(prog)

	d.DepthMask(true)
	d.Blend(false)
}

// RotationOnly strips the translation from a view matrix so geometry drawn
// with it appears infinitely far away.
func RotationOnly(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of view*model.
func NormalMatrix(view, model mgl32.Mat4) mgl32.Mat3 {
	return view.Mul4(model).Inv().Transpose().Mat3()
}
