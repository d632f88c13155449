// Package locomotion turns per-frame movement intent into a body displacement,
// a smoothed facing and an optional top-down camera follow.
//
// A frame has two ordered phases. Move (and ApplyGravity) must run before
// FollowCamera, since the camera tracks the position the body reached this frame.
// A Controller is not safe for concurrent use; drive it from one simulation goroutine.
package locomotion

import (
	"math"

	"Locomotion/internal/logger"
	"Locomotion/internal/smoothing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	worldForward = mgl32.Vec3{0, 0, 1}
	worldRight   = mgl32.Vec3{1, 0, 0}
	worldUp      = mgl32.Vec3{0, 1, 0}
)

// normalizeEpsilon matches the length under which a vector normalizes to zero.
const normalizeEpsilon = 1e-5

// State is everything the controller mutates between frames.
type State struct {
	CurrentSpeed     float32
	RotationVelocity float32
	VerticalVelocity float32
	JumpRequested    bool
	CameraVelocity   mgl32.Vec3
	Yaw              float32 // degrees in [0, 360)
}

// CameraBasis is the optional camera orientation used for camera-relative movement.
type CameraBasis struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
}

// CameraPose is a camera position plus euler angles (pitch, yaw, roll) in degrees.
type CameraPose struct {
	Position mgl32.Vec3
	Euler    mgl32.Vec3
}

// Input is the intent sampled by the host for one frame.
type Input struct {
	DeltaTime  float32
	Move       mgl32.Vec2 // x = strafe, y = forward
	SprintHeld bool
	SprintAxis float32 // analog sprint, counts as held above SprintAxisThreshold
	Grounded   bool    // only read by Tick
	Jump       bool    // press edge, latched until a grounded frame consumes it
	Camera     *CameraBasis
}

// Output is the motion command for the host.
type Output struct {
	Displacement mgl32.Vec3 // already scaled by DeltaTime
	Yaw          float32
	Moving       bool // input was outside the dead zone
}

type Controller struct {
	cfg   Config
	state State
}

func New(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) State() State {
	return c.state
}

// SetYaw overrides the current facing, e.g. when the host teleports the body.
func (c *Controller) SetYaw(yaw float32) {
	c.state.Yaw = wrapYaw(yaw)
}

// RequestJump latches a jump press. Presses before the latch is consumed collapse into one.
func (c *Controller) RequestJump() {
	c.state.JumpRequested = true
}

// Tick runs a whole frame for hosts that report grounded up front:
// Move, then ApplyGravity with in.Grounded.
func (c *Controller) Tick(in Input) Output {
	out := c.Move(in)
	c.ApplyGravity(in.Grounded, in.DeltaTime)
	return out
}

// Move runs the movement phase. The vertical part of the displacement uses the
// vertical velocity from before this frame's gravity phase.
// A non-positive or NaN DeltaTime only latches the jump edge.
func (c *Controller) Move(in Input) Output {
	if in.Jump {
		c.RequestJump()
	}

	dt := in.DeltaTime
	if !(dt > 0) {
		return Output{Yaw: c.state.Yaw}
	}

	raw := mgl32.Vec3{in.Move.X(), 0, in.Move.Y()}
	dir := normalizeOrZero(raw)

	sprinting := in.SprintHeld || in.SprintAxis > SprintAxisThreshold
	targetSpeed := c.cfg.WalkSpeed
	if sprinting {
		targetSpeed = c.cfg.SprintSpeed
	}
	// Only exact-zero input zeroes the target; the dead zone below is a separate check.
	if raw.Len() == 0 {
		targetSpeed = 0
	}

	c.state.CurrentSpeed = smoothing.Lerp(c.state.CurrentSpeed, targetSpeed, c.cfg.Acceleration*dt)

	vertical := worldUp.Mul(c.state.VerticalVelocity)

	if dir.Len() < DeadZone {
		c.state.CurrentSpeed = smoothing.Lerp(c.state.CurrentSpeed, 0, c.cfg.Acceleration*dt)
		return Output{Displacement: vertical.Mul(dt), Yaw: c.state.Yaw}
	}

	moveDir := normalizeOrZero(c.basisDirection(dir, in.Camera))

	targetAngle := mgl32.RadToDeg(float32(math.Atan2(float64(moveDir.X()), float64(moveDir.Z()))))
	yaw := smoothing.SmoothDampAngle(c.state.Yaw, targetAngle, &c.state.RotationVelocity,
		c.cfg.RotationSmoothTime, smoothing.Infinity, dt)
	c.state.Yaw = wrapYaw(yaw)

	horizontal := moveDir.Mul(c.state.CurrentSpeed)
	return Output{
		Displacement: horizontal.Add(vertical).Mul(dt),
		Yaw:          c.state.Yaw,
		Moving:       true,
	}
}

// basisDirection maps a normalized input onto world axes (top-down mode or no
// camera) or onto the camera's forward/right flattened onto the ground plane.
func (c *Controller) basisDirection(dir mgl32.Vec3, cam *CameraBasis) mgl32.Vec3 {
	if c.cfg.UseTopDownCamera || cam == nil {
		return worldForward.Mul(dir.Z()).Add(worldRight.Mul(dir.X()))
	}

	forward := cam.Forward
	forward[1] = 0
	forward = normalizeOrZero(forward)
	right := cam.Right
	right[1] = 0
	right = normalizeOrZero(right)

	return forward.Mul(dir.Z()).Add(right.Mul(dir.X()))
}

// ApplyGravity runs the grounded/airborne step for one frame. A non-positive or NaN dt is skipped.
func (c *Controller) ApplyGravity(grounded bool, dt float32) {
	if !(dt > 0) {
		return
	}

	if grounded {
		if c.state.VerticalVelocity < 0 {
			c.state.VerticalVelocity = GroundStickVelocity
		}

		if c.state.JumpRequested {
			c.state.VerticalVelocity = c.JumpVelocity()
			c.state.JumpRequested = false
			logger.Log.Debug("Jump consumed", zap.Float32("velocity", c.state.VerticalVelocity))
		}
	}

	c.state.VerticalVelocity += c.cfg.Gravity * dt
}

// JumpVelocity is the launch speed that peaks at JumpHeight under Gravity.
// A configuration with a positive gravity or negative height yields 0.
func (c *Controller) JumpVelocity() float32 {
	product := c.cfg.JumpHeight * -2 * c.cfg.Gravity
	if product <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(product)))
}

// FollowCamera smooths the camera toward a point CameraHeight above target plus
// CameraOffset, with a fixed pitch and zero yaw. It reports false and returns
// the pose unchanged when top-down mode is off or dt is not positive; a nil cam
// yields the zero pose.
func (c *Controller) FollowCamera(target mgl32.Vec3, cam *CameraPose, dt float32) (CameraPose, bool) {
	if cam == nil {
		return CameraPose{}, false
	}
	if !c.cfg.UseTopDownCamera || !(dt > 0) {
		return *cam, false
	}

	goal := target.Add(worldUp.Mul(c.cfg.CameraHeight)).Add(c.cfg.CameraOffset)
	pos := smoothing.SmoothDampVec3(cam.Position, goal, &c.state.CameraVelocity,
		c.cfg.CameraSmoothTime, smoothing.Infinity, dt)

	return CameraPose{
		Position: pos,
		Euler:    mgl32.Vec3{c.cfg.CameraPitch, 0, 0},
	}, true
}

// wrapYaw maps degrees into [0, 360). Repeat may return exactly 360 after
// float rounding, which is folded back to 0.
func wrapYaw(yaw float32) float32 {
	y := smoothing.Repeat(yaw, 360)
	if y >= 360 {
		return 0
	}
	return y
}

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= normalizeEpsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
