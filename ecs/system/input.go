package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
)

type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionRespawn
)

// Bindings maps each action to keys and one standard gamepad button.
type Bindings struct {
	Keys    map[Action][]ebiten.Key
	Buttons map[Action]ebiten.StandardGamepadButton
	// stick values inside the deadzone are treated as centered
	StickDeadzone float64
}

func DefaultBindings() Bindings {
	return Bindings{
		Keys: map[Action][]ebiten.Key{
			ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
			ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
			ActionJump:    {ebiten.KeySpace, ebiten.KeyW},
			ActionRespawn: {ebiten.KeyR},
		},
		Buttons: map[Action]ebiten.StandardGamepadButton{
			ActionLeft:    ebiten.StandardGamepadButtonLeftLeft,
			ActionRight:   ebiten.StandardGamepadButtonLeftRight,
			ActionJump:    ebiten.StandardGamepadButtonRightBottom,
			ActionRespawn: ebiten.StandardGamepadButtonCenterRight,
		},
		StickDeadzone: 0.2,
	}
}

// InputSource answers action queries for the current tick.
type InputSource interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
	// Stick is the horizontal analog value in [-1, 1], 0 when centered.
	Stick() float64
}

// InputSystem samples the source once per tick and copies the result to
// every Input component.
type InputSystem struct {
	src InputSource
}

func NewInputSystem() *InputSystem {
	return &InputSystem{src: &ebitenInput{bindings: DefaultBindings()}}
}

func NewInputSystemFrom(src InputSource) *InputSystem {
	return &InputSystem{src: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.src == nil {
		return
	}
	sample := readInput(i.src)
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = sample
	})
}

func readInput(src InputSource) component.Input {
	var in component.Input
	if src.Pressed(ActionLeft) {
		in.MoveX--
	}
	if src.Pressed(ActionRight) {
		in.MoveX++
	}
	if stick := src.Stick(); stick != 0 {
		in.MoveX = stick
	}
	in.Jump = src.Pressed(ActionJump)
	in.JumpPressed = src.JustPressed(ActionJump)
	in.Respawn = src.JustPressed(ActionRespawn)
	return in
}

// ebitenInput reads the keyboard and the first connected gamepad.
type ebitenInput struct {
	bindings Bindings
}

func (e *ebitenInput) gamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func (e *ebitenInput) Pressed(a Action) bool {
	for _, k := range e.bindings.Keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	id, ok := e.gamepad()
	if !ok {
		return false
	}
	btn, bound := e.bindings.Buttons[a]
	return bound && ebiten.IsStandardGamepadButtonPressed(id, btn)
}

func (e *ebitenInput) JustPressed(a Action) bool {
	for _, k := range e.bindings.Keys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	id, ok := e.gamepad()
	if !ok {
		return false
	}
	btn, bound := e.bindings.Buttons[a]
	return bound && inpututil.IsStandardGamepadButtonJustPressed(id, btn)
}

func (e *ebitenInput) Stick() float64 {
	id, ok := e.gamepad()
	if !ok {
		return 0
	}
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if math.Abs(x) <= e.bindings.StickDeadzone {
		return 0
	}
	return x
}
