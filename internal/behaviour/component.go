package behaviour

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()                 // Called when component is first attached
	OnEnable()              // Called every time the component becomes enabled
	OnDisable()             // Called every time the component becomes disabled
	Start()                 // Called before first Update (after all Awakes)
	Update(dt float32)      // Called every frame
	FixedUpdate(dt float32) // Called at fixed time intervals
	LateUpdate(dt float32)  // Called every frame after every Update ran
	OnDestroy()             // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)

	started() bool
	markStarted()
	setEnabledFlag(bool)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
	hasStarted bool
}

func (c *BaseComponent) Awake()                 {}
func (c *BaseComponent) OnEnable()              {}
func (c *BaseComponent) OnDisable()             {}
func (c *BaseComponent) Start()                 {}
func (c *BaseComponent) Update(dt float32)      {}
func (c *BaseComponent) FixedUpdate(dt float32) {}
func (c *BaseComponent) LateUpdate(dt float32)  {}
func (c *BaseComponent) OnDestroy()             {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

// SetEnabled only flips the flag. Use GameObject.SetComponentEnabled to get
// OnEnable/OnDisable callbacks.
func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

func (c *BaseComponent) started() bool          { return c.hasStarted }
func (c *BaseComponent) markStarted()           { c.hasStarted = true }
func (c *BaseComponent) setEnabledFlag(on bool) { c.enabled = on }

// GameObject represents an object in the scene
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	manager    *ComponentManager
}

// Transform holds position and rotation as euler angles in degrees.
// Axes: +X right, +Y up, +Z forward. Yaw turns about +Y, positive pitch looks down.
type Transform struct {
	Position    mgl32.Vec3
	EulerAngles mgl32.Vec3 // pitch, yaw, roll
	Scale       mgl32.Vec3
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

// SetEuler sets the rotation with every angle wrapped to [0, 360).
func (t *Transform) SetEuler(pitch, yaw, roll float32) {
	t.EulerAngles = mgl32.Vec3{wrapDegrees(pitch), wrapDegrees(yaw), wrapDegrees(roll)}
}

func (t *Transform) SetYaw(yaw float32) {
	t.EulerAngles[1] = wrapDegrees(yaw)
}

func (t *Transform) Yaw() float32 {
	return t.EulerAngles.Y()
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

func (t *Transform) Forward() mgl32.Vec3 {
	pitch, yaw := t.radians()
	return mgl32.Vec3{
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(-math.Sin(pitch)),
		float32(math.Cos(yaw) * math.Cos(pitch)),
	}
}

// Right ignores roll.
func (t *Transform) Right() mgl32.Vec3 {
	_, yaw := t.radians()
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(-math.Sin(yaw))}
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Forward().Cross(t.Right())
}

func (t *Transform) radians() (pitch, yaw float64) {
	return float64(mgl32.DegToRad(t.EulerAngles.X())), float64(mgl32.DegToRad(t.EulerAngles.Y()))
}

func wrapDegrees(deg float32) float32 {
	d := math.Mod(float64(deg), 360)
	if d < 0 {
		d += 360
	}
	return float32(d)
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
}

// AddComponent attaches and enables a component: Awake then OnEnable.
func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	obj.Components = append(obj.Components, component)
	component.Awake()
	component.setEnabledFlag(true)
	component.OnEnable()
}

// SetComponentEnabled toggles a component and fires OnEnable/OnDisable on transitions.
func (obj *GameObject) SetComponentEnabled(component Component, enabled bool) {
	if component.GetEnabled() == enabled {
		return
	}
	component.setEnabledFlag(enabled)
	if enabled {
		component.OnEnable()
	} else {
		component.OnDisable()
	}
}

// GetComponent returns the first component matching the predicate.
func (obj *GameObject) GetComponent(match func(Component) bool) Component {
	for _, comp := range obj.Components {
		if comp != nil && match(comp) {
			return comp
		}
	}
	return nil
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			if comp.GetEnabled() {
				comp.setEnabledFlag(false)
				comp.OnDisable()
			}
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// Scene returns the manager the object is registered with, or nil.
func (obj *GameObject) Scene() *ComponentManager {
	return obj.manager
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() && !comp.started() {
			comp.markStarted()
			comp.Start()
		}
	}
}

func (obj *GameObject) internalUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(dt)
		}
	}
}

func (obj *GameObject) internalFixedUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate(dt)
		}
	}
}

func (obj *GameObject) internalLateUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.LateUpdate(dt)
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.setEnabledFlag(false)
			comp.OnDisable()
		}
		comp.OnDestroy()
	}
	obj.Active = false
}
