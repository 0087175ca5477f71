package webhook

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
	"github.com/adcontextprotocol/adcp-go/pkg/registry"
)

/*
decodeResult attempts typed decoding of the extracted result object for the
given task type. Decode failures never propagate: an agent returning
slightly malformed or forward-incompatible data must not crash the caller's
webhook handler, so the raw object is kept instead and the caller can still
inspect its fields.
*/
func decodeResult(taskType string, result map[string]any) *adcp.Payload {
	if result == nil {
		return nil
	}

	decode, found := registry.LookupResponse(taskType)
	if !found {
		log.Debug("no response model registered", "task_type", taskType)
		return adcp.NewRawPayload(result)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return adcp.NewRawPayload(result)
	}

	typed, err := decode(raw)
	if err != nil {
		log.Debug("typed decode failed, keeping raw payload", "task_type", taskType, "error", err)
		return adcp.NewRawPayload(result)
	}

	return adcp.NewTypedPayload(typed)
}

// firstErrorMessage inspects the errors list an agent may embed in a result
// object and returns the first entry's message. The builder surfaces it only
// for failed and needs-input statuses.
func firstErrorMessage(result map[string]any) string {
	if result == nil {
		return ""
	}

	entries, ok := result["errors"].([]any)
	if !ok || len(entries) == 0 {
		return ""
	}

	entry, ok := entries[0].(map[string]any)
	if !ok {
		return ""
	}

	message, _ := entry["message"].(string)
	return message
}
