package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript ComponentType = "Script"
	ComponentTypeCamera ComponentType = "Camera"
	ComponentTypeCustom ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// CameraComponent marks a game object as a camera. The main camera is what
// movement scripts use as their basis when they have no explicit camera.
type CameraComponent struct {
	BaseComponent
	IsMain bool
}

func NewCameraComponent(isMain bool) *CameraComponent {
	return &CameraComponent{IsMain: isMain}
}

func (c *CameraComponent) Awake() {
	if c.IsMain && c.GetGameObject() != nil {
		c.GetGameObject().Tag = MainCameraTag
	}
}

func (c *CameraComponent) GetComponentType() ComponentType {
	return ComponentTypeCamera
}

func (c *CameraComponent) GetTypeName() string {
	return "CameraComponent"
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

// OfType matches components of the given category, for GameObject.GetComponent.
func OfType(kind ComponentType) func(Component) bool {
	return func(c Component) bool {
		return GetComponentCategory(c) == kind
	}
}
