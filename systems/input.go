package systems

import (
	"github.com/automoto/motionfx/components"
	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// PointerFrame is the pointer as polled in one frame, in viewport px.
type PointerFrame struct {
	X, Y   float64
	Inside bool
	Down   bool
}

// UpdateInput polls keyboard, gamepad, mouse and touch and dispatches the
// pointer changes as platform events. Must run before UpdateScroll and
// UpdateFrame.
func UpdateInput(ecs *ecs.ECS) {
	rt := GetRuntime(ecs)
	input := GetInput(ecs)
	if rt == nil || input == nil {
		return
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pollActions(input, gamepadIDs)
	input.AnalogY = analogScroll(gamepadIDs)

	prev := PointerFrame{X: input.PointerX, Y: input.PointerY, Inside: input.PointerInside, Down: input.PointerDown}
	cur := pollPointer(rt.Screen.W, rt.Screen.H)
	input.Touching = len(touchIDs) > 0

	input.PointerX, input.PointerY = cur.X, cur.Y
	input.PointerInside, input.PointerDown = cur.Inside, cur.Down

	for _, ev := range PointerEvents(prev, cur, rt.Viewport.Metrics()) {
		rt.Events.Dispatch(ev)
	}
}

func pollActions(input *components.InputData, gamepads []ebiten.GamepadID) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// analogScroll returns the strongest left stick vertical deflection past
// the deadzone, or 0.
func analogScroll(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	var best float64
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if (v < -deadzone || v > deadzone) && abs(v) > abs(best) {
			best = v
		}
	}
	return best
}

// pollPointer reads the first touch if any, otherwise the mouse.
func pollPointer(w, h float64) PointerFrame {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerFrame{X: float64(x), Y: float64(y), Inside: true, Down: true}
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	inside := ebiten.IsFocused() && fx >= 0 && fy >= 0 && fx < w && fy < h
	return PointerFrame{
		X:      fx,
		Y:      fy,
		Inside: inside,
		Down:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// PointerEvents derives the events between two polled frames, in the
// order a browser would raise them: enter, move, down/up, leave.
func PointerEvents(prev, cur PointerFrame, m platform.Metrics) []platform.Event {
	var out []platform.Event
	ev := func(kind platform.EventKind) {
		out = append(out, platform.Event{Kind: kind, X: cur.X, Y: cur.Y, Metrics: m})
	}

	if cur.Inside && !prev.Inside {
		ev(platform.PointerEnter)
	}
	if cur.Inside && (cur.X != prev.X || cur.Y != prev.Y || !prev.Inside) {
		ev(platform.PointerMove)
	}
	if cur.Inside && cur.Down && !prev.Down {
		ev(platform.PointerDown)
	}
	if cur.Down != prev.Down && !cur.Down {
		ev(platform.PointerUp)
	}
	if !cur.Inside && prev.Inside {
		ev(platform.PointerLeave)
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var cursorMode = ebiten.CursorModeVisible

// UpdateCursorMode hides the system cursor while the custom one is mounted.
func UpdateCursorMode(ecs *ecs.ECS) {
	mode := ebiten.CursorModeVisible
	if _, ok := components.Cursor.First(ecs.World); ok && cfg.Cursor.HideSystem {
		mode = ebiten.CursorModeHidden
	}
	SetCursorMode(mode)
}

// SetCursorMode changes the system cursor mode if it differs.
func SetCursorMode(mode ebiten.CursorModeType) {
	if mode == cursorMode {
		return
	}
	cursorMode = mode
	ebiten.SetCursorMode(mode)
}
