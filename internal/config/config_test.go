package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultMatchesControllerDefaults(t *testing.T) {
	cfg := Default().ToLocomotion()

	if cfg.WalkSpeed != 4 || cfg.SprintSpeed != 7 || cfg.Gravity != -9.81 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if len(Default().Warnings()) != 0 {
		t.Errorf("Expected no warnings for defaults, got %v", Default().Warnings())
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml overrides",
			file: "game.yaml",
			content: `locomotion:
  walk_speed: 5
  use_top_down_camera: false
  camera_offset: [1, 0, -3]
world:
  ground: perlin
  seed: 99
logging:
  level: debug
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Locomotion.WalkSpeed != 5 {
					t.Errorf("Expected walk_speed 5, got %f", cfg.Locomotion.WalkSpeed)
				}
				if cfg.Locomotion.SprintSpeed != 7 {
					t.Errorf("Expected sprint_speed default 7, got %f", cfg.Locomotion.SprintSpeed)
				}
				if cfg.Locomotion.UseTopDownCamera {
					t.Error("Expected use_top_down_camera false")
				}
				if cfg.ToLocomotion().CameraOffset != (mgl32.Vec3{1, 0, -3}) {
					t.Errorf("Expected offset (1,0,-3), got %v", cfg.ToLocomotion().CameraOffset)
				}
				if cfg.World.Ground != "perlin" || cfg.World.Seed != 99 {
					t.Errorf("Unexpected world section: %+v", cfg.World)
				}
				if cfg.Logging.Level != "debug" {
					t.Errorf("Expected level debug, got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:    "json overrides",
			file:    "game.json",
			content: `{"locomotion": {"jump_height": 3}, "engine": {"target_fps": 60}}`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Locomotion.JumpHeight != 3 {
					t.Errorf("Expected jump_height 3, got %f", cfg.Locomotion.JumpHeight)
				}
				if cfg.Engine.TargetFPS != 60 {
					t.Errorf("Expected target_fps 60, got %d", cfg.Engine.TargetFPS)
				}
				if cfg.Engine.FixedTimestep != 0.02 {
					t.Errorf("Expected fixed_timestep default 0.02, got %f", cfg.Engine.FixedTimestep)
				}
			},
		},
		{
			name:    "invalid yaml",
			file:    "broken.yaml",
			content: "locomotion: [unclosed",
			wantErr: true,
		},
		{
			name:    "invalid json",
			file:    "broken.json",
			content: "{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			cfg, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.json"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := Default()
		cfg.Locomotion.CameraPitch = 60
		cfg.World.Spawn = [3]float32{1, 2, 3}

		if err := cfg.Save(path); err != nil {
			t.Fatalf("%s: Save() error = %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: Load() error = %v", name, err)
		}
		if loaded.Locomotion.CameraPitch != 60 || loaded.World.Spawn != ([3]float32{1, 2, 3}) {
			t.Errorf("%s: values lost on round trip: %+v", name, loaded)
		}
	}
}

func TestWarnings(t *testing.T) {
	cfg := Default()
	cfg.Locomotion.RotationSmoothTime = 0
	cfg.Locomotion.CameraSmoothTime = -1
	cfg.Locomotion.Gravity = 9.81
	cfg.World.Ground = "lava"

	warnings := cfg.Warnings()

	if len(warnings) != 4 {
		t.Fatalf("Expected 4 warnings, got %d: %v", len(warnings), warnings)
	}
	joined := strings.Join(warnings, "\n")
	for _, want := range []string{"rotation_smooth_time", "camera_smooth_time", "cannot produce a jump", "unknown ground"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected a warning mentioning %q, got %v", want, warnings)
		}
	}
}
