package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDisabledActionsReadZero(t *testing.T) {
	actions := NewActions()
	actions.Move.Set(mgl32.Vec2{1, 0})
	actions.Sprint.Set(1)
	actions.Jump.Press()

	if actions.Move.ReadValue() != (mgl32.Vec2{}) {
		t.Errorf("Expected zero move while disabled, got %v", actions.Move.ReadValue())
	}
	if actions.Sprint.ReadValue() != 0 {
		t.Errorf("Expected zero sprint while disabled, got %f", actions.Sprint.ReadValue())
	}
	if actions.Jump.ReadValue() != 0 {
		t.Errorf("Expected zero jump while disabled, got %f", actions.Jump.ReadValue())
	}
}

func TestEnableAll(t *testing.T) {
	actions := NewActions()
	actions.EnableAll()
	actions.Move.Set(mgl32.Vec2{0.5, -1})
	actions.Sprint.Set(0.75)

	if actions.Move.ReadValue() != (mgl32.Vec2{0.5, -1}) {
		t.Errorf("Expected (0.5,-1), got %v", actions.Move.ReadValue())
	}
	if actions.Sprint.ReadValue() != 0.75 {
		t.Errorf("Expected 0.75, got %f", actions.Sprint.ReadValue())
	}

	actions.DisableAll()
	if actions.Move.Enabled() || actions.Jump.Enabled() || actions.Sprint.Enabled() {
		t.Error("Expected every action disabled")
	}
}

func TestButtonPerformedOncePerPress(t *testing.T) {
	jump := NewButtonAction("Jump")
	jump.Enable()
	calls := 0
	jump.OnPerformed(func(*ButtonAction) { calls++ })

	jump.Press()
	jump.Press()
	if calls != 1 {
		t.Errorf("Expected 1 call while held, got %d", calls)
	}

	jump.Release()
	jump.Press()
	if calls != 2 {
		t.Errorf("Expected 2 calls after a second press, got %d", calls)
	}
}

func TestButtonUnsubscribe(t *testing.T) {
	jump := NewButtonAction("Jump")
	jump.Enable()
	first, second := 0, 0
	unsubscribe := jump.OnPerformed(func(*ButtonAction) { first++ })
	jump.OnPerformed(func(*ButtonAction) { second++ })

	unsubscribe()
	jump.Press()

	if first != 0 || second != 1 {
		t.Errorf("Expected only the remaining subscriber to fire, got first=%d second=%d", first, second)
	}
	if jump.Subscribers() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", jump.Subscribers())
	}
}

func TestButtonDisabledDoesNotFire(t *testing.T) {
	jump := NewButtonAction("Jump")
	calls := 0
	jump.OnPerformed(func(*ButtonAction) { calls++ })

	jump.Press()

	if calls != 0 {
		t.Errorf("Expected no calls while disabled, got %d", calls)
	}
}
