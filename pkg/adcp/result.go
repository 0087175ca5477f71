package adcp

import "encoding/json"

/*
Payload is the task result payload attached to a TaskResult: either a
strongly-typed response model, or the raw JSON object it was extracted from
when typed decoding was not possible. Exactly one of Typed or Raw is
populated, so consumers branch on IsTyped instead of threading decode errors
through the pipeline.
*/
type Payload struct {
	Typed any
	Raw   map[string]any
}

// NewTypedPayload wraps a successfully decoded response model.
func NewTypedPayload(typed any) *Payload {
	return &Payload{Typed: typed}
}

// NewRawPayload wraps a result object that could not be decoded into its
// registered response model.
func NewRawPayload(raw map[string]any) *Payload {
	return &Payload{Raw: raw}
}

// IsTyped reports whether typed decoding succeeded for this payload.
func (payload *Payload) IsTyped() bool {
	return payload != nil && payload.Typed != nil
}

// Value returns the typed model when present, otherwise the raw object.
func (payload *Payload) Value() any {
	if payload == nil {
		return nil
	}
	if payload.Typed != nil {
		return payload.Typed
	}
	return payload.Raw
}

func (payload *Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(payload.Value())
}

/*
TaskResult is the single transport-agnostic outcome of a webhook delivery.
A TaskResult is constructed fresh per delivery and never mutated afterwards;
it is owned solely by the caller that handled the webhook.
*/
type TaskResult struct {
	// Success is true iff the task completed and no error was extracted.
	Success bool `json:"success"`

	Status TaskStatus `json:"status"`

	// Data carries the typed or raw result payload, nil when the delivery had
	// none. In-progress statuses may carry partial or progress data here.
	Data *Payload `json:"data,omitempty"`

	// Error holds the human-readable error message for failed or
	// needs-input deliveries, empty otherwise. A completed delivery never
	// surfaces payload errors here; callers inspect Data themselves.
	Error string `json:"error,omitempty"`

	// Metadata always contains task_id and operation_id, plus context_id and
	// message when the delivery supplied them.
	Metadata map[string]any `json:"metadata"`
}
