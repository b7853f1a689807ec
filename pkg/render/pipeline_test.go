package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	rec      *recorder
	device   *fakeDevice
	depth    *fakeProgram
	scene    *fakeProgram
	sky      *fakeProgram
	particle *fakeProgram
	shadow   ShadowTarget
	pipeline *Pipeline
}

func testLighting() Lighting {
	return Lighting{
		Sun: DirectionalLight{
			Direction: mgl32.Vec3{0.5, -0.6, -0.6}.Normalize(),
			Color:     mgl32.Vec3{1, 0.75, 0.55},
		},
		Lamps: PointLight{
			A:     mgl32.Vec3{6.5167, 2.00031, 7.46291},
			B:     mgl32.Vec3{13.4391, 2.00031, 9.7713},
			Color: mgl32.Vec3{3.2, 2.4, 1.6},
		},
		Fog: Fog{
			Color:       mgl32.Vec3{0.78, 0.80, 0.83},
			Density:     0.045,
			InnerRadius: 12,
			OuterRadius: 16,
		},
		Shadow:   DefaultShadowSettings(mgl32.Vec3{5.75, 1.5, 8.08}),
		Emitters: []mgl32.Vec3{{15.55, 7.8, 3.64}, {-0.71, 7.8, 13.82}, {15.28, 7.8, 16.12}},
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rec := &recorder{}
	h := &harness{
		rec:      rec,
		device:   newFakeDevice(rec),
		depth:    newFakeProgram("depth", rec),
		scene:    newFakeProgram("scene", rec),
		sky:      newFakeProgram("sky", rec),
		particle: newFakeProgram("particle", rec),
		shadow: ShadowTarget{
			Framebuffer: &fakeFramebuffer{id: 7, width: ShadowMapSize, height: ShadowMapSize},
			Depth:       &fakeTexture{id: 11},
		},
	}

	p, err := NewPipeline(h.device, Programs{Depth: h.depth, Scene: h.scene, Sky: h.sky, Particle: h.particle}, h.shadow, testLighting())
	require.NoError(t, err)
	p.SetSky(&Sky{Mesh: &fakeMesh{name: "skybox", rec: rec}, Cubemap: &fakeTexture{id: 21}})
	p.SetParticles(&fakeMesh{name: "petals", rec: rec})
	h.pipeline = p
	return h
}

func testFrame(rec *recorder, toggles Toggles) FrameConfig {
	view := mgl32.LookAtV(mgl32.Vec3{2, 2, 8}, mgl32.Vec3{3, 1, 7}, mgl32.Vec3{0, 1, 0})
	return FrameConfig{
		Toggles:        toggles,
		View:           view,
		Projection:     mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 500),
		CameraPos:      mgl32.Vec3{2, 2, 8},
		ViewportWidth:  1024,
		ViewportHeight: 768,
		ParticleTime:   1.5,
		Objects: []Object{
			{Name: "garden", Model: mgl32.Scale3D(0.03, 0.03, 0.03), Mesh: &fakeMesh{name: "garden", rec: rec}},
			{Name: "pug", Model: mgl32.Translate3D(3.4, 0.8, 6.9), Mesh: &fakeMesh{name: "pug", rec: rec}},
		},
	}
}

func TestNewPipelineRequiresPrograms(t *testing.T) {
	rec := &recorder{}
	_, err := NewPipeline(newFakeDevice(rec), Programs{Scene: newFakeProgram("scene", rec)}, ShadowTarget{}, Lighting{})
	assert.ErrorIs(t, err, ErrMissingProgram)

	_, err = NewPipeline(newFakeDevice(rec), Programs{Depth: newFakeProgram("depth", rec)}, ShadowTarget{}, Lighting{})
	assert.ErrorIs(t, err, ErrMissingProgram)
}

func TestLightSpaceIsSharedBetweenPasses(t *testing.T) {
	h := newHarness(t)
	result := h.pipeline.Render(testFrame(h.rec, DefaultToggles()))

	require.Len(t, h.depth.history[UniformLightSpace], 1, "computed once per frame")
	require.Len(t, h.scene.history[UniformLightSpace], 1)

	shadowUsed := h.depth.values[UniformLightSpace].(mgl32.Mat4)
	colorUsed := h.scene.values[UniformLightSpace].(mgl32.Mat4)
	assert.Equal(t, shadowUsed, colorUsed, "bit-identical across passes")
	assert.Equal(t, result.LightSpace, shadowUsed)
	assert.Equal(t, result.LightSpace, h.pipeline.LightSpace())
	assert.Equal(t, LightSpaceMatrix(testLighting().Sun, testLighting().Shadow), result.LightSpace)
}

func TestPassOrder(t *testing.T) {
	h := newHarness(t)
	h.pipeline.Render(testFrame(h.rec, DefaultToggles()))

	bindShadow := h.rec.index("framebuffer 7")
	depthGarden := h.rec.index("draw garden with depth")
	depthPug := h.rec.index("draw pug with depth")
	unbind := h.rec.index("framebuffer 0")
	sceneGarden := h.rec.index("draw garden with scene")
	scenePug := h.rec.index("draw pug with scene")
	sky := h.rec.index("draw skybox with sky")
	petals := h.rec.index("draw petals with particle")

	for name, i := range map[string]int{
		"bind shadow": bindShadow, "depth garden": depthGarden, "depth pug": depthPug, "unbind": unbind,
		"scene garden": sceneGarden, "scene pug": scenePug, "sky": sky, "petals": petals,
	} {
		require.GreaterOrEqual(t, i, 0, "missing event %q in %v", name, h.rec.events)
	}

	assert.Less(t, bindShadow, depthGarden)
	assert.Less(t, depthGarden, depthPug)
	assert.Less(t, depthPug, unbind)
	assert.Less(t, unbind, sceneGarden)
	assert.Less(t, sceneGarden, scenePug)
	assert.Less(t, scenePug, sky, "sky after opaque geometry")
	assert.Less(t, sky, petals, "particles last")

	assert.Less(t, h.rec.index("viewport 2048x2048"), depthGarden)
	assert.Less(t, unbind, h.rec.index("viewport 1024x768"))
	assert.Equal(t, uint32(0), h.device.framebuffer, "default target restored")
}

func TestShadowSamplingToggles(t *testing.T) {
	testCases := []struct {
		name        string
		shadows     bool
		directional bool
		sampled     bool
	}{
		{name: "both on", shadows: true, directional: true, sampled: true},
		{name: "shadows off", shadows: false, directional: true, sampled: false},
		{name: "sun off", shadows: true, directional: false, sampled: false},
		{name: "both off", shadows: false, directional: false, sampled: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			toggles := DefaultToggles()
			toggles.Shadows = tc.shadows
			toggles.DirectionalLight = tc.directional

			result := h.pipeline.Render(testFrame(h.rec, toggles))

			assert.Equal(t, tc.sampled, result.ShadowsSampled)
			assert.Equal(t, tc.sampled, h.scene.values[UniformUseShadows])
			assert.Equal(t, tc.directional, h.scene.values[UniformUseDirectional])
			assert.Equal(t, int32(ShadowTextureUnit), h.scene.values[UniformShadowMap])

			want := uint32(0)
			if tc.sampled {
				want = h.shadow.Depth.Handle()
			}
			assert.Equal(t, want, h.device.textures[ShadowTextureUnit])

			// The depth pass always runs; toggles only change the color pass.
			assert.GreaterOrEqual(t, h.rec.index("draw garden with depth"), 0)
			assert.Len(t, h.depth.history[UniformLightSpace], 1)
		})
	}
}

func TestLampToggle(t *testing.T) {
	lighting := testLighting()

	h := newHarness(t)
	h.pipeline.Render(testFrame(h.rec, DefaultToggles()))
	assert.Equal(t, lighting.Lamps.Position(), h.scene.values[UniformLampPos])
	assert.Equal(t, lighting.Lamps.Color, h.scene.values[UniformLampColor])

	toggles := DefaultToggles()
	toggles.Lamps = false
	h = newHarness(t)
	h.pipeline.Render(testFrame(h.rec, toggles))
	assert.Equal(t, mgl32.Vec3{}, h.scene.values[UniformLampPos])
	assert.Equal(t, mgl32.Vec3{}, h.scene.values[UniformLampColor])
}

func TestLampMidpoint(t *testing.T) {
	l := PointLight{A: mgl32.Vec3{0, 2, 0}, B: mgl32.Vec3{4, 2, 8}}
	assert.Equal(t, mgl32.Vec3{2, 2, 4}, l.Position())
}

func TestColorPassUniforms(t *testing.T) {
	h := newHarness(t)
	frame := testFrame(h.rec, DefaultToggles())
	h.pipeline.Render(frame)

	lighting := testLighting()
	assert.Equal(t, frame.View, h.scene.values[UniformView])
	assert.Equal(t, frame.Projection, h.scene.values[UniformProjection])
	assert.Equal(t, frame.CameraPos, h.scene.values[UniformCameraPos])
	assert.Equal(t, lighting.Sun.Color, h.scene.values[UniformLightColor])
	assert.Equal(t, lighting.Fog.Color, h.scene.values[UniformFogColor])
	assert.Equal(t, lighting.Fog.Density, h.scene.values[UniformFogDensity])
	assert.Equal(t, lighting.Fog.CenterXZ, h.scene.values[UniformFogCenterXZ])
	assert.Equal(t, lighting.Fog.InnerRadius, h.scene.values[UniformFogInnerRadius])
	assert.Equal(t, lighting.Fog.OuterRadius, h.scene.values[UniformFogOuterRadius])

	models := h.scene.history[UniformModel]
	require.Len(t, models, 2)
	assert.Equal(t, frame.Objects[0].Model, models[0])
	assert.Equal(t, frame.Objects[1].Model, models[1])

	normals := h.scene.history[UniformNormalMatrix]
	require.Len(t, normals, 2)
	assert.Equal(t, NormalMatrix(frame.View, frame.Objects[1].Model), normals[1])

	// depth pass only receives the model and light-space transforms
	assert.NotContains(t, h.depth.values, UniformView)
	assert.NotContains(t, h.depth.values, UniformNormalMatrix)
}

func TestRenderModeOnlyAffectsColorPass(t *testing.T) {
	for _, mode := range []RenderMode{Solid, Wireframe, Points} {
		t.Run(mode.String(), func(t *testing.T) {
			h := newHarness(t)
			toggles := DefaultToggles()
			toggles.Mode = mode
			h.pipeline.Render(testFrame(h.rec, toggles))

			set := h.rec.index("polygon " + mode.String())
			require.GreaterOrEqual(t, set, 0)
			firstDepthDraw := h.rec.index("draw garden with depth")
			sceneDraw := h.rec.index("draw garden with scene")
			sky := h.rec.index("draw skybox with sky")

			// solid before the depth pass, mode for the scene, solid again for the sky
			assert.Less(t, h.rec.index("polygon solid"), firstDepthDraw)
			modeSet := h.rec.lastIndex("polygon " + mode.String())
			if mode != Solid {
				assert.Less(t, firstDepthDraw, modeSet)
			}
			assert.Less(t, h.rec.lastIndex("polygon "+mode.String()), sky)
			assert.Less(t, sceneDraw, h.rec.lastIndex("polygon solid"))
			assert.Less(t, h.rec.lastIndex("polygon solid"), sky)
			assert.Equal(t, Solid, h.device.mode)
		})
	}
}

func TestSkyPassRestoresDepthState(t *testing.T) {
	h := newHarness(t)
	frame := testFrame(h.rec, DefaultToggles())
	h.pipeline.Render(frame)

	lequal := h.rec.index("depthfunc 1")
	sky := h.rec.index("draw skybox with sky")
	less := h.rec.lastIndex("depthfunc 0")
	require.GreaterOrEqual(t, lequal, 0)
	assert.Less(t, lequal, sky)
	assert.Less(t, sky, less)
	assert.Equal(t, DepthLess, h.device.depthFunc)
	assert.True(t, h.device.depthMask)

	view := h.sky.values[UniformView].(mgl32.Mat4)
	assert.Equal(t, mgl32.Vec3{}, view.Col(3).Vec3(), "translation stripped")
	assert.Equal(t, frame.View.Mat3(), view.Mat3(), "rotation kept")
	assert.Equal(t, uint32(21), h.device.textures[SkyTextureUnit])
}

func TestParticlePassBlendsWithoutDepthWrites(t *testing.T) {
	h := newHarness(t)
	h.pipeline.Render(testFrame(h.rec, DefaultToggles()))

	petals := h.rec.index("draw petals with particle")
	blendOn := h.rec.index("blend true")
	maskOff := h.rec.lastIndex("depthmask false")
	require.GreaterOrEqual(t, blendOn, 0)
	assert.Less(t, blendOn, petals)
	assert.Less(t, maskOff, petals)
	assert.Less(t, petals, h.rec.lastIndex("depthmask true"))
	assert.Less(t, petals, h.rec.lastIndex("blend false"))

	assert.False(t, h.device.blend)
	assert.True(t, h.device.depthMask)
	assert.Equal(t, float32(1.5), h.particle.values[UniformTime])
	assert.Equal(t, testLighting().Emitters[2], h.particle.values["treePosC"])
}

func TestOptionalPassesSkipped(t *testing.T) {
	rec := &recorder{}
	device := newFakeDevice(rec)
	p, err := NewPipeline(device, Programs{Depth: newFakeProgram("depth", rec), Scene: newFakeProgram("scene", rec)},
		ShadowTarget{Framebuffer: &fakeFramebuffer{id: 1, width: 16, height: 16}, Depth: &fakeTexture{id: 2}}, testLighting())
	require.NoError(t, err)

	p.Render(testFrame(rec, DefaultToggles()))
	assert.Equal(t, -1, rec.index("depthfunc 1"))
	assert.Equal(t, -1, rec.index("blend true"))
}

func TestLightSpaceMatrixMapsCenter(t *testing.T) {
	lighting := testLighting()
	m := LightSpaceMatrix(lighting.Sun, lighting.Shadow)

	// The scene center sits on the light axis, Distance in front of the eye.
	c := m.Mul4x1(lighting.Shadow.Center.Vec4(1))
	assert.InDelta(t, 0, c.X(), 1e-4)
	assert.InDelta(t, 0, c.Y(), 1e-4)

	s := lighting.Shadow
	wantZ := (2*s.Distance - s.Far - s.Near) / (s.Far - s.Near)
	assert.InDelta(t, wantZ, c.Z(), 1e-4)

	eye := s.LightPosition(lighting.Sun.Direction)
	assert.True(t, eye.ApproxEqualThreshold(s.Center.Sub(lighting.Sun.Direction.Mul(s.Distance)), 1e-5))
}

func TestLightSpaceMatrixVerticalLight(t *testing.T) {
	sun := DirectionalLight{Direction: mgl32.Vec3{0, -1, 0}}
	m := LightSpaceMatrix(sun, DefaultShadowSettings(mgl32.Vec3{}))
	for _, v := range m {
		assert.False(t, math32.IsNaN(v), "no NaN for a light along the up axis")
	}
}

func TestRotationOnly(t *testing.T) {
	view := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(0.7))
	r := RotationOnly(view)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, r.Col(3))
	assert.Equal(t, view.Mat3(), r.Mat3())
}

func TestNormalMatrixUniformScale(t *testing.T) {
	model := mgl32.Scale3D(2, 2, 2)
	n := NormalMatrix(mgl32.Ident4(), model)
	for i := range 3 {
		assert.InDelta(t, 0.5, n.At(i, i), 1e-6)
	}
	assert.InDelta(t, 0, n.At(0, 1), 1e-6)
}
