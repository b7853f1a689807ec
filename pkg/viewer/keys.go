package viewer

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-garden/pkg/controls"
)

// heldKeys are polled every frame.
var heldKeys = map[controls.Action]glfw.Key{
	controls.MoveForward:         glfw.KeyW,
	controls.MoveBackward:        glfw.KeyS,
	controls.MoveLeft:            glfw.KeyA,
	controls.MoveRight:           glfw.KeyD,
	controls.RotateSelectedLeft:  glfw.KeyQ,
	controls.RotateSelectedRight: glfw.KeyE,
	controls.ShrinkSelected:      glfw.KeyZ,
	controls.GrowSelected:        glfw.KeyX,
}

// pressKeys fire once on key press.
var pressKeys = map[glfw.Key]controls.Action{
	glfw.KeyEscape: controls.Quit,
	glfw.KeySpace:  controls.TogglePetals,
	glfw.KeyF1:     controls.SolidMode,
	glfw.KeyF2:     controls.WireframeMode,
	glfw.KeyF3:     controls.PointsMode,
	glfw.KeyO:      controls.ToggleShadows,
	glfw.KeyK:      controls.ToggleDirectionalLight,
	glfw.KeyL:      controls.ToggleLamps,
	glfw.KeyP:      controls.ToggleTour,
	glfw.Key1:      controls.SelectFirst,
	glfw.Key2:      controls.SelectSecond,
	glfw.KeyC:      controls.ProbeCamera,
	glfw.KeyEnter:  controls.LogSpawnPosition,
	glfw.KeyF11:    controls.ToggleFullscreen,
}
