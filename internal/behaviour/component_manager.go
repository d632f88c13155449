package behaviour

// MainCameraTag marks the object whose transform scripts fall back to when no
// camera is assigned explicitly.
const MainCameraTag = "MainCamera"

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager.
// Start runs lazily on the next UpdateAll so every object of a scene can be
// registered before any of them looks the others up.
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	obj.manager = cm
	cm.gameObjects = append(cm.gameObjects, obj)
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			obj.Destroy()
			obj.manager = nil
			return
		}
	}
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// MainCamera returns the first active object tagged MainCamera, or nil.
func (cm *ComponentManager) MainCamera() *GameObject {
	for _, obj := range cm.FindGameObjectsWithTag(MainCameraTag) {
		if obj.Active {
			return obj
		}
	}
	return nil
}

// UpdateAll starts pending components and calls Update on all active GameObjects
func (cm *ComponentManager) UpdateAll(dt float32) {
	// Process destroyed objects
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	for _, obj := range cm.gameObjects {
		obj.internalStart()
	}

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalUpdate(dt)
		}
	}
}

// LateUpdateAll calls LateUpdate on all active GameObjects. It must run after UpdateAll.
func (cm *ComponentManager) LateUpdateAll(dt float32) {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalLateUpdate(dt)
		}
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll(dt float32) {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate(dt)
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
		obj.manager = nil
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
}
