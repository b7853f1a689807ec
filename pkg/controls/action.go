// Package controls turns abstract input actions into camera movement,
// object edits and render toggles. It knows nothing about the windowing
// system; the viewer maps keys to actions.
package controls

// Action is something the user can ask for.
type Action int

// Held actions act every frame while their key is down.
const (
	ActionNone Action = iota

	MoveForward
	MoveBackward
	MoveLeft
	MoveRight
	RotateSelectedLeft
	RotateSelectedRight
	ShrinkSelected
	GrowSelected

	// Pressed actions fire once per key press.
	Quit
	SolidMode
	WireframeMode
	PointsMode
	ToggleShadows
	ToggleDirectionalLight
	ToggleLamps
	ToggleTour
	TogglePetals
	SelectFirst
	SelectSecond
	ProbeCamera
	LogSpawnPosition
	ToggleFullscreen
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	MoveForward:            "move-forward",
	MoveBackward:           "move-backward",
	MoveLeft:               "move-left",
	MoveRight:              "move-right",
	RotateSelectedLeft:     "rotate-selected-left",
	RotateSelectedRight:    "rotate-selected-right",
	ShrinkSelected:         "shrink-selected",
	GrowSelected:           "grow-selected",
	Quit:                   "quit",
	SolidMode:              "solid-mode",
	WireframeMode:          "wireframe-mode",
	PointsMode:             "points-mode",
	ToggleShadows:          "toggle-shadows",
	ToggleDirectionalLight: "toggle-directional-light",
	ToggleLamps:            "toggle-lamps",
	ToggleTour:             "toggle-tour",
	TogglePetals:           "toggle-petals",
	SelectFirst:            "select-first",
	SelectSecond:           "select-second",
	ProbeCamera:            "probe-camera",
	LogSpawnPosition:       "log-spawn-position",
	ToggleFullscreen:       "toggle-fullscreen",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// HeldActions lists the actions polled every frame, in application order.
var HeldActions = []Action{
	MoveForward, MoveBackward, MoveLeft, MoveRight,
	RotateSelectedLeft, RotateSelectedRight, ShrinkSelected, GrowSelected,
}

// Effect is a request the controller cannot fulfil itself.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectFullscreen
)
