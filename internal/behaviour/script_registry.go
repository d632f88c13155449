package behaviour

import (
	"sort"

	"Locomotion/internal/logger"

	"go.uber.org/zap"
)

// ScriptConstructor builds a fresh, unattached script with its default settings.
type ScriptConstructor func() Component

var scriptRegistry = make(map[string]ScriptConstructor)

// RegisterScript makes a script constructible by name. Scripts call it from init.
// Registering a name twice keeps the last constructor.
func RegisterScript(name string, constructor ScriptConstructor) {
	if _, exists := scriptRegistry[name]; exists {
		logger.Log.Warn("Script registered twice, replacing constructor", zap.String("script", name))
	}
	scriptRegistry[name] = constructor
}

// GetAvailableScripts returns the registered script names, sorted.
func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateScript builds the script registered under name, or nil if there is none.
func CreateScript(name string) Component {
	constructor, exists := scriptRegistry[name]
	if !exists {
		logger.Log.Warn("Unknown script", zap.String("script", name))
		return nil
	}
	return constructor()
}
