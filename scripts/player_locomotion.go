package scripts

import (
	"Locomotion/internal/behaviour"
	"Locomotion/internal/body"
	"Locomotion/internal/input"
	"Locomotion/internal/locomotion"
	"Locomotion/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// PlayerLocomotion moves its game object from the Move/Jump/Sprint actions and
// keeps a top-down camera over it.
type PlayerLocomotion struct {
	behaviour.BaseComponent
	Config          locomotion.Config
	Actions         *input.Actions
	Body            *body.CharacterBody
	CameraTransform *behaviour.Transform

	controller  *locomotion.Controller
	unsubscribe func()
}

func init() {
	behaviour.RegisterScript("PlayerLocomotion", func() behaviour.Component {
		return NewPlayerLocomotion(locomotion.DefaultConfig(), input.NewActions(), nil)
	})
}

func NewPlayerLocomotion(cfg locomotion.Config, actions *input.Actions, b *body.CharacterBody) *PlayerLocomotion {
	return &PlayerLocomotion{Config: cfg, Actions: actions, Body: b}
}

func (p *PlayerLocomotion) Awake() {
	p.controller = locomotion.New(p.Config)
	if obj := p.GetGameObject(); obj != nil {
		p.controller.SetYaw(obj.Transform.Yaw())
	}
}

func (p *PlayerLocomotion) OnEnable() {
	if p.Actions == nil {
		return
	}
	p.Actions.EnableAll()
	if p.Actions.Jump != nil {
		p.unsubscribe = p.Actions.Jump.OnPerformed(func(*input.ButtonAction) {
			p.controller.RequestJump()
		})
	}
}

func (p *PlayerLocomotion) OnDisable() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	if p.Actions != nil {
		p.Actions.DisableAll()
	}
}

func (p *PlayerLocomotion) Start() {
	obj := p.GetGameObject()
	if p.Body == nil {
		p.Body = body.NewCharacterBody(body.FlatGround{}, obj.Transform.Position)
		logger.Log.Info("No body assigned, using flat ground", zap.String("object", obj.Name))
	}
	obj.Transform.SetPosition(p.Body.Position)

	if p.CameraTransform != nil {
		return
	}
	if scene := obj.Scene(); scene != nil {
		if cam := scene.MainCamera(); cam != nil {
			p.CameraTransform = cam.Transform
			logger.Log.Info("Using main camera", zap.String("object", obj.Name), zap.String("camera", cam.Name))
			return
		}
	}
	logger.Log.Warn("No camera found, camera follow disabled", zap.String("object", obj.Name))
}

func (p *PlayerLocomotion) Update(dt float32) {
	in := locomotion.Input{DeltaTime: dt}
	if p.Actions != nil {
		if p.Actions.Move != nil {
			in.Move = p.Actions.Move.ReadValue()
		}
		if p.Actions.Sprint != nil {
			in.SprintAxis = p.Actions.Sprint.ReadValue()
		}
	}
	if p.CameraTransform != nil {
		in.Camera = &locomotion.CameraBasis{
			Forward: p.CameraTransform.Forward(),
			Right:   p.CameraTransform.Right(),
		}
	}

	out := p.controller.Move(in)
	p.Body.Move(out.Displacement)
	p.controller.ApplyGravity(p.Body.IsGrounded(), dt)

	transform := p.GetGameObject().Transform
	transform.SetPosition(p.Body.Position)
	transform.SetYaw(out.Yaw)
}

func (p *PlayerLocomotion) LateUpdate(dt float32) {
	if p.CameraTransform == nil {
		return
	}
	pose := locomotion.CameraPose{
		Position: p.CameraTransform.Position,
		Euler:    p.CameraTransform.EulerAngles,
	}
	next, ok := p.controller.FollowCamera(p.GetGameObject().Transform.Position, &pose, dt)
	if !ok {
		return
	}
	p.CameraTransform.SetPosition(next.Position)
	p.CameraTransform.SetEuler(next.Euler.X(), next.Euler.Y(), next.Euler.Z())
}

func (p *PlayerLocomotion) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (p *PlayerLocomotion) GetTypeName() string {
	return "PlayerLocomotion"
}

// Controller exposes the underlying controller state, e.g. for a debug overlay.
func (p *PlayerLocomotion) Controller() *locomotion.Controller {
	return p.controller
}

// Teleport moves the body and the object without any smoothing.
func (p *PlayerLocomotion) Teleport(position mgl32.Vec3) {
	if p.Body != nil {
		p.Body.Teleport(position)
		position = p.Body.Position
	}
	p.GetGameObject().Transform.SetPosition(position)
}
