package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Shadow defaults
const (
	ShadowMapSize = 2048

	DefaultShadowHalfExtent = 30.0
	DefaultShadowNear       = 1.0
	DefaultShadowFar        = 60.0
	DefaultShadowDistance   = 25.0
)

// Texture units
const (
	SkyTextureUnit    = 0
	ShadowTextureUnit = 3
)

// Uniform names shared with the GLSL sources.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformNormalMatrix = "normalMatrix"
	UniformCameraPos    = "cameraPos"
	UniformLightSpace   = "lightSpaceMatrix"
	UniformShadowMap    = "shadowMap"
	UniformUseShadows   = "useShadows"

	UniformLightDir       = "lightDir"
	UniformLightColor     = "lightColor"
	UniformUseDirectional = "useDirectionalLight"
	UniformLampPos        = "lightPos2"
	UniformLampColor      = "lightColor2"

	UniformFogColor       = "fogColor"
	UniformFogDensity     = "fogDensity"
	UniformFogCenterXZ    = "fogCenterXZ"
	UniformFogInnerRadius = "fogInnerRadius"
	UniformFogOuterRadius = "fogOuterRadius"

	UniformSkybox = "skybox"
	UniformTime   = "uTime"
)

// EmitterUniforms names the particle emitter position uniforms in order.
var EmitterUniforms = []string{"treePosA", "treePosB", "treePosC"}

var zeroVec3 = mgl32.Vec3{}
