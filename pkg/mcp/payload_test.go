package mcp

import (
	"encoding/json"
	"testing"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
)

func TestNewWebhookPayload(t *testing.T) {
	payload := NewWebhookPayload("task_1", adcp.TaskTypeGetProducts, adcp.TaskStatusCompleted, "2025-01-15T10:00:00Z")
	payload.Result = map[string]any{"products": []any{}}
	payload.Message = "Found 0 products"

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if wire["task_id"] != "task_1" || wire["status"] != "completed" {
		t.Fatalf("unexpected wire object: %v", wire)
	}
	// Unset optional fields stay off the wire.
	for _, key := range []string{"operation_id", "context_id", "domain"} {
		if _, present := wire[key]; present {
			t.Fatalf("optional field %s serialized while empty", key)
		}
	}
}

func TestNewWebhookPayloadDefaultsTimestamp(t *testing.T) {
	payload := NewWebhookPayload("task_2", adcp.TaskTypeSyncCreatives, adcp.TaskStatusWorking, "")
	if payload.Timestamp == "" {
		t.Fatal("timestamp not defaulted")
	}
}

func TestStatusForWire(t *testing.T) {
	if got := StatusForWire(adcp.TaskStatusNeedsInput); got != "input-required" {
		t.Fatalf("needs-input wire spelling = %q", got)
	}
	if got := StatusForWire(adcp.TaskStatusCompleted); got != "completed" {
		t.Fatalf("completed wire spelling = %q", got)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	valid := NewWebhookPayload("task_3", adcp.TaskTypeGetProducts, adcp.TaskStatusCompleted, "2025-01-15T10:00:00Z")
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	for _, payload := range []*WebhookPayload{
		{Status: "completed", Timestamp: "2025-01-15T10:00:00Z"},
		{TaskID: "task_3", Timestamp: "2025-01-15T10:00:00Z"},
		{TaskID: "task_3", Status: "completed"},
	} {
		err := payload.Validate()
		if err == nil {
			t.Fatalf("payload %+v passed validation", payload)
		}
		if _, ok := err.(*adcp.WebhookValidationError); !ok {
			t.Fatalf("expected *adcp.WebhookValidationError, got %T", err)
		}
	}
}
