package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Locomotion/internal/locomotion"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type LocomotionConfig struct {
	WalkSpeed          float32    `yaml:"walk_speed" json:"walk_speed"`
	SprintSpeed        float32    `yaml:"sprint_speed" json:"sprint_speed"`
	RotationSmoothTime float32    `yaml:"rotation_smooth_time" json:"rotation_smooth_time"`
	Acceleration       float32    `yaml:"acceleration" json:"acceleration"`
	JumpHeight         float32    `yaml:"jump_height" json:"jump_height"`
	Gravity            float32    `yaml:"gravity" json:"gravity"`
	UseTopDownCamera   bool       `yaml:"use_top_down_camera" json:"use_top_down_camera"`
	CameraHeight       float32    `yaml:"camera_height" json:"camera_height"`
	CameraSmoothTime   float32    `yaml:"camera_smooth_time" json:"camera_smooth_time"`
	CameraPitch        float32    `yaml:"camera_pitch" json:"camera_pitch"`
	CameraOffset       [3]float32 `yaml:"camera_offset" json:"camera_offset"`
}

type EngineConfig struct {
	TargetFPS     int     `yaml:"target_fps" json:"target_fps"`
	FixedTimestep float32 `yaml:"fixed_timestep" json:"fixed_timestep"`
}

type WorldConfig struct {
	Ground       string     `yaml:"ground" json:"ground"` // "flat" or "perlin"
	GroundHeight float32    `yaml:"ground_height" json:"ground_height"`
	Amplitude    float32    `yaml:"amplitude" json:"amplitude"`
	NoiseScale   float32    `yaml:"noise_scale" json:"noise_scale"`
	Seed         int64      `yaml:"seed" json:"seed"`
	Spawn        [3]float32 `yaml:"spawn" json:"spawn"`
	CameraStart  [3]float32 `yaml:"camera_start" json:"camera_start"`
}

type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

type Config struct {
	Locomotion LocomotionConfig `yaml:"locomotion" json:"locomotion"`
	Engine     EngineConfig     `yaml:"engine" json:"engine"`
	World      WorldConfig      `yaml:"world" json:"world"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	loco := locomotion.DefaultConfig()
	return &Config{
		Locomotion: LocomotionConfig{
			WalkSpeed:          loco.WalkSpeed,
			SprintSpeed:        loco.SprintSpeed,
			RotationSmoothTime: loco.RotationSmoothTime,
			Acceleration:       loco.Acceleration,
			JumpHeight:         loco.JumpHeight,
			Gravity:            loco.Gravity,
			UseTopDownCamera:   loco.UseTopDownCamera,
			CameraHeight:       loco.CameraHeight,
			CameraSmoothTime:   loco.CameraSmoothTime,
			CameraPitch:        loco.CameraPitch,
			CameraOffset:       loco.CameraOffset,
		},
		Engine: EngineConfig{
			TargetFPS:     144,
			FixedTimestep: 0.02,
		},
		World: WorldConfig{
			Ground:      "flat",
			Amplitude:   2,
			NoiseScale:  0.05,
			Seed:        1,
			CameraStart: [3]float32{0, 20, 0},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML or JSON file (by extension) over the defaults. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if isJSON(path) {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration in the format implied by the extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ToLocomotion converts the file section into the controller configuration.
func (c *Config) ToLocomotion() locomotion.Config {
	l := c.Locomotion
	return locomotion.Config{
		WalkSpeed:          l.WalkSpeed,
		SprintSpeed:        l.SprintSpeed,
		RotationSmoothTime: l.RotationSmoothTime,
		Acceleration:       l.Acceleration,
		JumpHeight:         l.JumpHeight,
		Gravity:            l.Gravity,
		UseTopDownCamera:   l.UseTopDownCamera,
		CameraHeight:       l.CameraHeight,
		CameraSmoothTime:   l.CameraSmoothTime,
		CameraPitch:        l.CameraPitch,
		CameraOffset:       mgl32.Vec3(l.CameraOffset),
	}
}

// Warnings lists values that break the controller's preconditions. They are
// reported, not rejected: the controller runs with whatever it is given.
func (c *Config) Warnings() []string {
	var warnings []string
	l := c.Locomotion
	if l.RotationSmoothTime <= 0 {
		warnings = append(warnings, fmt.Sprintf("rotation_smooth_time %v is not positive", l.RotationSmoothTime))
	}
	if l.CameraSmoothTime <= 0 {
		warnings = append(warnings, fmt.Sprintf("camera_smooth_time %v is not positive", l.CameraSmoothTime))
	}
	if l.JumpHeight*-2*l.Gravity < 0 {
		warnings = append(warnings, fmt.Sprintf("jump_height %v with gravity %v cannot produce a jump", l.JumpHeight, l.Gravity))
	}
	if l.WalkSpeed < 0 || l.SprintSpeed < 0 {
		warnings = append(warnings, fmt.Sprintf("negative speeds walk=%v sprint=%v", l.WalkSpeed, l.SprintSpeed))
	}
	if l.Acceleration <= 0 {
		warnings = append(warnings, fmt.Sprintf("acceleration %v is not positive", l.Acceleration))
	}
	switch c.World.Ground {
	case "flat", "perlin":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown ground %q, using flat", c.World.Ground))
	}
	return warnings
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
