package scripts

import (
	"math"
	"testing"

	"Locomotion/internal/behaviour"
	"Locomotion/internal/body"
	"Locomotion/internal/input"
	"Locomotion/internal/locomotion"
	"Locomotion/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const frameDelta = float32(0.02)

type testScene struct {
	manager *behaviour.BehaviourManager
	player  *behaviour.GameObject
	camera  *behaviour.GameObject
	script  *PlayerLocomotion
	actions *input.Actions
}

func newTestScene(withCamera bool) *testScene {
	scene := behaviour.NewComponentManager()
	actions := input.NewActions()

	player := behaviour.NewGameObject("Player")
	script := NewPlayerLocomotion(locomotion.DefaultConfig(), actions,
		body.NewCharacterBody(body.FlatGround{}, mgl32.Vec3{}))
	player.AddComponent(script)
	scene.RegisterGameObject(player)

	var camera *behaviour.GameObject
	if withCamera {
		camera = behaviour.NewGameObject("Camera")
		camera.Transform.SetPosition(mgl32.Vec3{0, 20, 0})
		camera.AddComponent(behaviour.NewCameraComponent(true))
		scene.RegisterGameObject(camera)
	}

	return &testScene{
		manager: behaviour.NewBehaviourManager(scene, frameDelta),
		player:  player,
		camera:  camera,
		script:  script,
		actions: actions,
	}
}

func (s *testScene) run(frames int) {
	for i := 0; i < frames; i++ {
		s.manager.Frame(frameDelta)
	}
}

func TestPlayerLocomotionWalksForward(t *testing.T) {
	s := newTestScene(true)
	s.actions.Move.Set(mgl32.Vec2{0, 1})

	s.run(50)

	pos := s.player.Transform.Position
	if pos.Z() <= 1 {
		t.Errorf("Expected the player to move forward, got %v", pos)
	}
	if math.Abs(float64(pos.X())) > 1e-4 || pos.Y() != 0 {
		t.Errorf("Expected to stay on the Z axis at ground level, got %v", pos)
	}
	if !s.script.Body.IsGrounded() {
		t.Error("Expected the body to be grounded")
	}
	if yaw := s.player.Transform.Yaw(); yaw > 0.1 && yaw < 359.9 {
		t.Errorf("Expected yaw near 0, got %f", yaw)
	}
}

func TestPlayerLocomotionTurnsTowardMove(t *testing.T) {
	s := newTestScene(true)
	s.actions.Move.Set(mgl32.Vec2{1, 0})

	s.run(100)

	if yaw := s.player.Transform.Yaw(); math.Abs(float64(yaw-90)) > 0.5 {
		t.Errorf("Expected yaw near 90, got %f", yaw)
	}
	if s.player.Transform.Position.X() <= 1 {
		t.Errorf("Expected movement along +X, got %v", s.player.Transform.Position)
	}
}

func TestPlayerLocomotionSprint(t *testing.T) {
	s := newTestScene(true)
	s.actions.Move.Set(mgl32.Vec2{0, 1})
	s.actions.Sprint.Set(1)

	s.run(150)

	if speed := s.script.Controller().State().CurrentSpeed; math.Abs(float64(speed-7)) > 0.01 {
		t.Errorf("Expected sprint speed near 7, got %f", speed)
	}
}

func TestPlayerLocomotionJump(t *testing.T) {
	s := newTestScene(true)
	s.run(5)

	s.actions.Jump.Press()
	s.actions.Jump.Release()
	s.run(10)

	if s.player.Transform.Position.Y() <= 0 {
		t.Errorf("Expected the player in the air, got %v", s.player.Transform.Position)
	}
	if s.script.Body.IsGrounded() {
		t.Error("Expected the body to be airborne")
	}

	s.run(100)

	if s.player.Transform.Position.Y() != 0 || !s.script.Body.IsGrounded() {
		t.Errorf("Expected the player to land, got %v", s.player.Transform.Position)
	}
	if s.script.Controller().State().JumpRequested {
		t.Error("Expected the jump latch to be consumed")
	}
}

func TestPlayerLocomotionCameraFollows(t *testing.T) {
	s := newTestScene(true)
	s.actions.Move.Set(mgl32.Vec2{0, 1})

	s.run(100)

	if s.script.CameraTransform != s.camera.Transform {
		t.Fatal("Expected the main camera to be picked up in Start")
	}
	player := s.player.Transform.Position
	cam := s.camera.Transform.Position
	if math.Abs(float64(cam.Z()-player.Z())) > 1.5 {
		t.Errorf("Expected the camera to trail closely, camera %v player %v", cam, player)
	}
	if math.Abs(float64(cam.Y()-20)) > 0.01 {
		t.Errorf("Expected the camera at height 20, got %f", cam.Y())
	}
	if s.camera.Transform.EulerAngles != (mgl32.Vec3{90, 0, 0}) {
		t.Errorf("Expected camera euler (90,0,0), got %v", s.camera.Transform.EulerAngles)
	}
}

func TestPlayerLocomotionWithoutCamera(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger.SetLogger(zap.New(core))
	defer logger.SetLogger(nil)

	s := newTestScene(false)
	s.actions.Move.Set(mgl32.Vec2{0, 1})
	s.run(10)

	if s.script.CameraTransform != nil {
		t.Error("Expected no camera")
	}
	if logs.FilterMessage("No camera found, camera follow disabled").Len() != 1 {
		t.Errorf("Expected one camera warning, got %d", logs.Len())
	}
	if s.player.Transform.Position.Z() <= 0 {
		t.Error("Expected movement without a camera")
	}
}

func TestPlayerLocomotionDisableUnsubscribes(t *testing.T) {
	s := newTestScene(true)
	if s.actions.Jump.Subscribers() != 1 {
		t.Fatalf("Expected 1 jump subscriber after enable, got %d", s.actions.Jump.Subscribers())
	}

	s.player.SetComponentEnabled(s.script, false)

	if s.actions.Jump.Subscribers() != 0 {
		t.Errorf("Expected no subscribers after disable, got %d", s.actions.Jump.Subscribers())
	}
	if s.actions.Move.Enabled() {
		t.Error("Expected actions disabled")
	}

	s.player.SetComponentEnabled(s.script, true)

	if s.actions.Jump.Subscribers() != 1 || !s.actions.Move.Enabled() {
		t.Error("Expected re-enable to resubscribe")
	}
}

func TestPlayerLocomotionFromRegistry(t *testing.T) {
	comp := behaviour.CreateScript("PlayerLocomotion")
	script, ok := comp.(*PlayerLocomotion)
	if !ok {
		t.Fatalf("Expected *PlayerLocomotion, got %T", comp)
	}

	scene := behaviour.NewComponentManager()
	player := behaviour.NewGameObject("Player")
	player.Transform.SetPosition(mgl32.Vec3{3, 5, 0})
	player.AddComponent(script)
	scene.RegisterGameObject(player)
	scene.UpdateAll(frameDelta)

	if script.Body == nil {
		t.Fatal("Expected Start to create a body")
	}
	if player.Transform.Position != (mgl32.Vec3{3, 5, 0}) {
		t.Errorf("Expected the body at the object position, got %v", player.Transform.Position)
	}
}

func TestPlayerLocomotionTeleport(t *testing.T) {
	s := newTestScene(true)
	s.run(1)

	s.script.Teleport(mgl32.Vec3{10, 0, -4})

	if s.player.Transform.Position != (mgl32.Vec3{10, 0, -4}) || s.script.Body.Position != (mgl32.Vec3{10, 0, -4}) {
		t.Errorf("Expected both transform and body at the target, got %v / %v",
			s.player.Transform.Position, s.script.Body.Position)
	}
}

func TestPlayerLocomotionIsScriptComponent(t *testing.T) {
	s := newTestScene(false)

	found := s.player.GetComponent(behaviour.OfType(behaviour.ComponentTypeScript))

	if found != s.script {
		t.Errorf("Expected the locomotion script, got %v", found)
	}
	if name := behaviour.GetComponentTypeName(found); name != "PlayerLocomotion" {
		t.Errorf("Expected type name PlayerLocomotion, got %s", name)
	}
}
