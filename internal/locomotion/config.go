package locomotion

import "github.com/go-gl/mathgl/mgl32"

const (
	// GroundStickVelocity is what a falling vertical velocity is reset to while grounded.
	GroundStickVelocity float32 = -2

	// DeadZone is the minimum normalized input length that turns and moves the body.
	DeadZone float32 = 0.01

	// SprintAxisThreshold is the analog value above which sprint counts as held.
	SprintAxisThreshold float32 = 0.5
)

// Config is fixed for the lifetime of a Controller. Smoothing times must be
// positive and JumpHeight*Gravity must not be positive; neither is checked here.
type Config struct {
	WalkSpeed          float32
	SprintSpeed        float32
	RotationSmoothTime float32
	Acceleration       float32
	JumpHeight         float32
	Gravity            float32

	// Top-down camera follow
	UseTopDownCamera bool
	CameraHeight     float32
	CameraSmoothTime float32
	CameraPitch      float32 // degrees, 90 looks straight down
	CameraOffset     mgl32.Vec3
}

func DefaultConfig() Config {
	return Config{
		WalkSpeed:          4,
		SprintSpeed:        7,
		RotationSmoothTime: 0.12,
		Acceleration:       10,
		JumpHeight:         1.5,
		Gravity:            -9.81,
		UseTopDownCamera:   true,
		CameraHeight:       20,
		CameraSmoothTime:   0.12,
		CameraPitch:        90,
		CameraOffset:       mgl32.Vec3{0, 0, 0},
	}
}
