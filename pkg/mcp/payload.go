package mcp

import (
	"time"

	v "github.com/cohesivestack/valgo"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
)

/*
WebhookPayload is the MCP-style webhook wire object: a flat JSON object with
snake_case keys. The status field holds the wire spelling of the task state;
needs-input is hyphenated here.
*/
type WebhookPayload struct {
	TaskID      string         `json:"task_id"`
	TaskType    string         `json:"task_type,omitempty"`
	Status      string         `json:"status"`
	Timestamp   string         `json:"timestamp"`
	Result      map[string]any `json:"result,omitempty"`
	OperationID string         `json:"operation_id,omitempty"`
	Message     string         `json:"message,omitempty"`
	ContextID   string         `json:"context_id,omitempty"`
	Domain      string         `json:"domain,omitempty"`
}

/*
NewWebhookPayload constructs a payload for the given task snapshot, ready to
be sent as JSON. Optional fields are set on the returned value and omitted
from the wire when empty. An empty timestamp defaults to the current UTC
time.
*/
func NewWebhookPayload(taskID, taskType string, status adcp.TaskStatus, timestamp string) *WebhookPayload {
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	return &WebhookPayload{
		TaskID:    taskID,
		TaskType:  taskType,
		Status:    StatusForWire(status),
		Timestamp: timestamp,
	}
}

// Validate checks the required fields of an inbound payload.
func (payload *WebhookPayload) Validate() error {
	val := v.Is(
		v.String(payload.TaskID, "task_id").Not().Blank(),
		v.String(payload.Status, "status").Not().Blank(),
		v.String(payload.Timestamp, "timestamp").Not().Blank(),
	)

	if !val.Valid() {
		return &adcp.WebhookValidationError{Message: val.Error().Error()}
	}

	return nil
}

// StatusForWire maps a canonical status to its MCP wire spelling.
func StatusForWire(status adcp.TaskStatus) string {
	if status == adcp.TaskStatusNeedsInput {
		return "input-required"
	}
	return string(status)
}
