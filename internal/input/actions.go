// Package input holds host-neutral input actions. A host writes raw values into
// the actions; scripts enable them, read them and subscribe to button presses.
// Disabled actions read as zero and never fire.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Callback is invoked when a button action is performed.
type Callback func(action *ButtonAction)

type action struct {
	Name    string
	enabled bool
}

func (a *action) Enable()       { a.enabled = true }
func (a *action) Disable()      { a.enabled = false }
func (a *action) Enabled() bool { return a.enabled }

// Vector2Action is a two-axis value such as a stick or WASD composite.
type Vector2Action struct {
	action
	value mgl32.Vec2
}

func NewVector2Action(name string) *Vector2Action {
	return &Vector2Action{action: action{Name: name}}
}

// Set stores the raw value written by the host.
func (a *Vector2Action) Set(v mgl32.Vec2) {
	a.value = v
}

func (a *Vector2Action) ReadValue() mgl32.Vec2 {
	if !a.enabled {
		return mgl32.Vec2{}
	}
	return a.value
}

// ValueAction is a single analog axis, e.g. a trigger used for sprint.
type ValueAction struct {
	action
	value float32
}

func NewValueAction(name string) *ValueAction {
	return &ValueAction{action: action{Name: name}}
}

func (a *ValueAction) Set(v float32) {
	a.value = v
}

func (a *ValueAction) ReadValue() float32 {
	if !a.enabled {
		return 0
	}
	return a.value
}

// ButtonAction fires its performed callbacks on each press while enabled.
type ButtonAction struct {
	action
	held      bool
	nextID    int
	performed map[int]Callback
	order     []int
}

func NewButtonAction(name string) *ButtonAction {
	return &ButtonAction{
		action:    action{Name: name},
		performed: make(map[int]Callback),
	}
}

// OnPerformed subscribes fn and returns the function that removes it.
func (a *ButtonAction) OnPerformed(fn Callback) (unsubscribe func()) {
	id := a.nextID
	a.nextID++
	a.performed[id] = fn
	a.order = append(a.order, id)
	return func() {
		delete(a.performed, id)
		for i, v := range a.order {
			if v == id {
				a.order = append(a.order[:i], a.order[i+1:]...)
				break
			}
		}
	}
}

// Press marks the button held and fires performed callbacks once per press.
// Pressing an already held button does nothing.
func (a *ButtonAction) Press() {
	if a.held {
		return
	}
	a.held = true
	if !a.enabled {
		return
	}
	for _, id := range append([]int(nil), a.order...) {
		if fn, ok := a.performed[id]; ok {
			fn(a)
		}
	}
}

func (a *ButtonAction) Release() {
	a.held = false
}

// ReadValue is 1 while held and enabled, 0 otherwise.
func (a *ButtonAction) ReadValue() float32 {
	if a.enabled && a.held {
		return 1
	}
	return 0
}

// Subscribers returns the number of performed callbacks.
func (a *ButtonAction) Subscribers() int {
	return len(a.performed)
}

// Actions is the set of actions the player locomotion reads.
type Actions struct {
	Move   *Vector2Action
	Jump   *ButtonAction
	Sprint *ValueAction
}

func NewActions() *Actions {
	return &Actions{
		Move:   NewVector2Action("Move"),
		Jump:   NewButtonAction("Jump"),
		Sprint: NewValueAction("Sprint"),
	}
}

// EnableAll enables every assigned action.
func (a *Actions) EnableAll() {
	if a.Move != nil {
		a.Move.Enable()
	}
	if a.Jump != nil {
		a.Jump.Enable()
	}
	if a.Sprint != nil {
		a.Sprint.Enable()
	}
}

// DisableAll disables every assigned action.
func (a *Actions) DisableAll() {
	if a.Move != nil {
		a.Move.Disable()
	}
	if a.Jump != nil {
		a.Jump.Disable()
	}
	if a.Sprint != nil {
		a.Sprint.Disable()
	}
}
