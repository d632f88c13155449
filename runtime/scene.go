package main

import (
	"fmt"

	"Locomotion/internal/behaviour"
	"Locomotion/internal/body"
	"Locomotion/internal/config"
	"Locomotion/internal/input"
	"Locomotion/internal/logger"
	"Locomotion/internal/scenario"
	"Locomotion/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type scene struct {
	player  *behaviour.GameObject
	camera  *behaviour.GameObject
	script  *scripts.PlayerLocomotion
	actions *input.Actions
}

func newGround(world config.WorldConfig) body.Ground {
	if world.Ground == "perlin" {
		return body.NewPerlinGround(world.GroundHeight, world.Amplitude, world.NoiseScale, world.Seed)
	}
	return body.FlatGround{Height: world.GroundHeight}
}

// defaultPlayerScript is the registered script driving the player.
const defaultPlayerScript = "PlayerLocomotion"

// buildScene registers the player and a main camera with cm. The player script
// comes from the script registry and must be a locomotion script.
func buildScene(cm *behaviour.ComponentManager, cfg *config.Config, scriptName string) (*scene, error) {
	comp := behaviour.CreateScript(scriptName)
	if comp == nil {
		return nil, fmt.Errorf("player script %q is not registered (available: %v)", scriptName, behaviour.GetAvailableScripts())
	}
	script, ok := comp.(*scripts.PlayerLocomotion)
	if !ok {
		return nil, fmt.Errorf("player script %q is a %s, not a locomotion script", scriptName, behaviour.GetComponentTypeName(comp))
	}

	actions := input.NewActions()
	spawn := mgl32.Vec3(cfg.World.Spawn)
	script.Config = cfg.ToLocomotion()
	script.Actions = actions
	script.Body = body.NewCharacterBody(newGround(cfg.World), spawn)

	player := behaviour.NewGameObject("Player")
	player.Tag = "Player"
	player.Transform.SetPosition(spawn)
	player.AddComponent(script)
	cm.RegisterGameObject(player)

	camera := behaviour.NewGameObject("Main Camera")
	camera.Transform.SetPosition(mgl32.Vec3(cfg.World.CameraStart))
	camera.AddComponent(behaviour.NewCameraComponent(true))
	cm.RegisterGameObject(camera)

	for _, comp := range player.Components {
		logger.Log.Debug("Component attached",
			zap.String("object", player.Name),
			zap.String("type", behaviour.GetComponentTypeName(comp)),
			zap.String("category", string(behaviour.GetComponentCategory(comp))))
	}
	logger.Log.Info("Scene ready",
		zap.String("ground", cfg.World.Ground),
		zap.Float32s("spawn", cfg.World.Spawn[:]),
		zap.Bool("top_down_camera", cfg.Locomotion.UseTopDownCamera))

	return &scene{player: player, camera: camera, script: script, actions: actions}, nil
}

func (s *scene) logPose(msg string, frame uint64) {
	pos := s.player.Transform.Position
	cam := s.camera.Transform.Position
	state := s.script.Controller().State()
	logger.Log.Info(msg,
		zap.Uint64("frame", frame),
		zap.Float32s("position", pos[:]),
		zap.Float32("yaw", s.player.Transform.Yaw()),
		zap.Float32("speed", state.CurrentSpeed),
		zap.Float32("vertical_velocity", state.VerticalVelocity),
		zap.Bool("grounded", s.script.Body.IsGrounded()),
		zap.Float32s("camera", cam[:]))
}

func defaultScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name: "default",
		Segments: []scenario.Segment{
			{Name: "idle", Frames: 30},
			{Name: "walk forward", Frames: 120, Move: [2]float32{0, 1}},
			{Name: "jump", Frames: 90, Move: [2]float32{0, 1}, Jump: true},
			{Name: "sprint right", Frames: 120, Move: [2]float32{1, 0}, Sprint: 1},
			{Name: "stop", Frames: 60},
		},
	}
}
