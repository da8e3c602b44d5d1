package systems

import (
	"strings"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/shared/gamemath"
	"github.com/automoto/tileworld/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateSimulation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := components.Input.First(ecs.World)
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Axis = [2]float64{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	x, y, stickID, moved := getAnalogStickState(gamepadIDs)
	if moved {
		input.Axis = [2]float64{x, y}
		input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || x < 0
		input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || x > 0
		input.Current[cfg.ActionMenuUp] = input.Current[cfg.ActionMenuUp] || y < 0
		input.Current[cfg.ActionMenuDown] = input.Current[cfg.ActionMenuDown] || y > 0
		gamepadUsed = true
		activeGamepadID = stickID
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	// Keys still held from the previous scene must not count as presses.
	if !existed {
		input.Previous = input.Current
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left stick of the first gamepad pushed past
// the deadzone. Axes inside the deadzone read as zero.
func getAnalogStickState(gamepads []ebiten.GamepadID) (x, y float64, gpID ebiten.GamepadID, moved bool) {
	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := applyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		v := applyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		if h != 0 || v != 0 {
			return h, v, id, true
		}
	}
	return 0, 0, 0, false
}

func applyDeadzone(v float64) float64 {
	return gamemath.SnapToZero(v, cfg.Input.AnalogDeadzone)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// SimInput turns this frame's actions into the intent for the next tick.
// Q and E pick upgrades while the level-up menu is open and spawn actors
// when the rules allow manual spawns.
func SimInput(input *components.InputData, sim *core.Sim) core.Input {
	var in core.Input

	in.Move = moveAxis(input)
	in.Attack = GetAction(input, cfg.ActionAttack).Pressed
	in.Pause = GetAction(input, cfg.ActionPause).JustPressed
	in.Finish = GetAction(input, cfg.ActionFinish).JustPressed

	switch {
	case sim.Upgrading:
		if GetAction(input, cfg.ActionUpgradeHealth).JustPressed {
			in.Upgrade = core.UpgradeHealth
		} else if GetAction(input, cfg.ActionUpgradeRange).JustPressed {
			in.Upgrade = core.UpgradeRange
		}
	case sim.Rules.ManualSpawns:
		in.SpawnEnemy = GetAction(input, cfg.ActionSpawnEnemy).JustPressed
		in.SpawnKnight = GetAction(input, cfg.ActionSpawnKnight).JustPressed
	}
	return in
}

// moveAxis prefers the analog stick and falls back to the digital
// directions.
func moveAxis(input *components.InputData) geom.Vec2 {
	if input.Axis != [2]float64{} {
		return geom.Vec2{X: input.Axis[0], Y: input.Axis[1]}
	}
	var m geom.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		m.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		m.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		m.Y--
	}
	if input.Current[cfg.ActionMoveDown] {
		m.Y++
	}
	return m
}
