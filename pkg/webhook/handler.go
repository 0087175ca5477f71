package webhook

import (
	"bytes"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/adcontextprotocol/adcp-go/pkg/a2a"
	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
	"github.com/adcontextprotocol/adcp-go/pkg/mcp"
)

/*
Handler normalizes webhook deliveries from either transport into one
canonical adcp.TaskResult. A Handler holds only the shared webhook secret;
every call is a pure computation over its inputs, so concurrent use needs no
locking. There are no retries anywhere in the pipeline: redelivery is the
sender's responsibility.
*/
type Handler struct {
	secret string
}

// NewHandler constructs a Handler. The secret may be empty when no MCP
// delivery is expected to carry a signature.
func NewHandler(secret string) *Handler {
	return &Handler{secret: secret}
}

/*
HandleWebhook ingests a raw transport-tagged payload and produces the
canonical task result. operationID is caller-supplied and passed through to
the result metadata verbatim. signature is only meaningful for MCP-style
deliveries and ignored otherwise.

Callers always receive either a complete TaskResult or one of
*adcp.WebhookValidationError, *adcp.WebhookSignatureError,
*adcp.UnknownStatusError. Typed decode failures degrade to a raw payload
instead of failing the call.
*/
func (handler *Handler) HandleWebhook(raw []byte, taskType, operationID, signature string) (*adcp.TaskResult, error) {
	transport, err := DetectTransport(raw)
	if err != nil {
		return nil, err
	}

	switch transport {
	case adcp.TransportMCP:
		return handler.handleMCP(raw, taskType, operationID, signature)
	default:
		return handler.handleA2A(raw, taskType, operationID)
	}
}

/*
DetectTransport picks the pipeline from the payload shape: a string status
field is the MCP-style convention, an object status is the task protocol.
Anything else is rejected, never guessed.
*/
func DetectTransport(raw []byte) (adcp.Transport, error) {
	var probe struct {
		Status json.RawMessage `json:"status"`
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", &adcp.WebhookValidationError{Message: "payload is not a JSON object: " + err.Error()}
	}

	status := bytes.TrimSpace(probe.Status)

	switch {
	case len(status) == 0:
		return "", &adcp.WebhookValidationError{Message: "payload has no status field"}
	case status[0] == '"':
		return adcp.TransportMCP, nil
	case status[0] == '{':
		return adcp.TransportA2A, nil
	default:
		return "", &adcp.WebhookValidationError{Message: "status field is neither a string nor an object"}
	}
}

func (handler *Handler) handleMCP(raw []byte, taskType, operationID, signature string) (*adcp.TaskResult, error) {
	var payload mcp.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &adcp.WebhookValidationError{Message: err.Error()}
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	if signature != "" {
		if handler.secret == "" {
			return nil, &adcp.WebhookValidationError{Message: "signature presented but no webhook secret configured"}
		}

		// Verification re-serializes the parsed object canonically, so the
		// sender's own key order on the wire does not matter.
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, &adcp.WebhookValidationError{Message: err.Error()}
		}
		if err := Verify(body, handler.secret, signature); err != nil {
			return nil, err
		}
	}

	status, err := MapStatus(adcp.TransportMCP, payload.Status)
	if err != nil {
		return nil, err
	}

	return handler.build(adcp.TransportMCP, status, extractMCP(&payload), taskType, payload.TaskID, operationID), nil
}

func (handler *Handler) handleA2A(raw []byte, taskType, operationID string) (*adcp.TaskResult, error) {
	task, err := a2a.NewTaskFromRequest(raw)
	if err != nil {
		return nil, &adcp.WebhookValidationError{Message: err.Error()}
	}

	if task.ID == "" {
		// Status update events carry task_id instead of id.
		var event a2a.TaskStatusUpdateEvent
		if err := json.Unmarshal(raw, &event); err != nil || event.TaskID == "" {
			return nil, &adcp.WebhookValidationError{Message: "task payload has no id"}
		}
		task = event.Task()
	}

	status, err := MapStatus(adcp.TransportA2A, string(task.Status.State))
	if err != nil {
		return nil, err
	}

	return handler.build(adcp.TransportA2A, status, extractA2A(task, status), taskType, task.ID, operationID), nil
}

/*
build assembles the canonical result. The top-level error is populated only
for failed and needs-input statuses; a completed delivery with an errors
list inside its data keeps that list in the payload without surfacing it
here.
*/
func (handler *Handler) build(
	transport adcp.Transport,
	status adcp.TaskStatus,
	ext extraction,
	taskType string,
	taskID string,
	operationID string,
) *adcp.TaskResult {
	result := &adcp.TaskResult{
		Status: status,
		Data:   decodeResult(taskType, ext.Result),
		Metadata: map[string]any{
			"task_id":      taskID,
			"operation_id": operationID,
		},
	}

	if status == adcp.TaskStatusFailed || status == adcp.TaskStatusNeedsInput {
		result.Error = firstErrorMessage(ext.Result)
	}

	result.Success = status == adcp.TaskStatusCompleted && result.Error == ""

	if ext.ContextID != "" {
		result.Metadata["context_id"] = ext.ContextID
	}
	if ext.Message != "" {
		result.Metadata["message"] = ext.Message
	}

	log.Debug("webhook delivery normalized",
		"transport", transport,
		"task", taskID,
		"task_type", taskType,
		"status", status,
		"success", result.Success,
	)

	return result
}
