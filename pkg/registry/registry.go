package registry

import (
	"encoding/json"
	"sync"
)

// DecodeFunc parses a raw result object into the typed response model for a
// task type. It returns *adcp.SchemaValidationError when the object does not
// match the model.
type DecodeFunc func(raw json.RawMessage) (any, error)

// responseModels holds the registered decode functions, keyed by task type.
// It is populated during init and only read afterwards, so unsynchronized
// concurrent lookups are safe; the mutex covers late registrations.
var (
	responseModels = make(map[string]DecodeFunc)
	registryMu     sync.RWMutex
)

// RegisterResponse adds or updates the response model for a task type. It
// should typically be called during initialization (e.g. in init functions).
func RegisterResponse(taskType string, decode DecodeFunc) {
	registryMu.Lock()
	responseModels[taskType] = decode
	registryMu.Unlock()
}

// LookupResponse retrieves the decode function registered for a task type.
// Returns the function and a boolean indicating whether it was found.
func LookupResponse(taskType string) (DecodeFunc, bool) {
	registryMu.RLock()
	decode, found := responseModels[taskType]
	registryMu.RUnlock()
	return decode, found
}

// TaskTypes returns the task types with a registered response model.
func TaskTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	taskTypes := make([]string, 0, len(responseModels))
	for taskType := range responseModels {
		taskTypes = append(taskTypes, taskType)
	}
	return taskTypes
}
