package a2a

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
)

func TestWebhookPayloadTerminal(t *testing.T) {
	result := map[string]any{"products": []any{}}

	payload := NewWebhookPayload("task_1", "ctx_1", adcp.TaskStatusCompleted, "2025-01-15T10:00:00Z", result, "done")

	task, ok := payload.(*Task)
	if !ok {
		t.Fatalf("terminal status produced %T, want *Task", payload)
	}

	if task.ID != "task_1" || task.ContextID != "ctx_1" {
		t.Fatalf("unexpected identifiers: %+v", task)
	}
	if task.Status.State != TaskStateCompleted {
		t.Fatalf("state = %s, want completed", task.Status.State)
	}
	if len(task.Artifacts) != 1 {
		t.Fatalf("artifacts = %d, want 1", len(task.Artifacts))
	}

	artifact := task.Artifacts[0]
	if artifact.ArtifactID != "task_1_result" {
		t.Fatalf("artifact id = %s", artifact.ArtifactID)
	}
	if len(artifact.Parts) != 2 {
		t.Fatalf("parts = %d, want data + text", len(artifact.Parts))
	}
	if artifact.Parts[0].Kind != PartKindData || artifact.Parts[1].Kind != PartKindText {
		t.Fatalf("unexpected part kinds: %+v", artifact.Parts)
	}
}

func TestWebhookPayloadIntermediate(t *testing.T) {
	payload := NewWebhookPayload("task_2", "ctx_2", adcp.TaskStatusWorking, "2025-01-15T10:00:00Z",
		map[string]any{"percentage": 50}, "halfway")

	event, ok := payload.(*TaskStatusUpdateEvent)
	if !ok {
		t.Fatalf("intermediate status produced %T, want *TaskStatusUpdateEvent", payload)
	}

	if event.Final {
		t.Fatal("intermediate event marked final")
	}
	if event.Status.State != TaskStateWorking {
		t.Fatalf("state = %s, want working", event.Status.State)
	}
	if event.Status.Message == nil || len(event.Status.Message.Parts) != 2 {
		t.Fatalf("payload not carried in status.message: %+v", event.Status)
	}
}

func TestWebhookPayloadStateSpelling(t *testing.T) {
	payload := NewWebhookPayload("task_3", "ctx_3", adcp.TaskStatusNeedsInput, "2025-01-15T10:00:00Z", nil, "need approval")

	event, ok := payload.(*TaskStatusUpdateEvent)
	if !ok {
		t.Fatalf("needs-input produced %T, want *TaskStatusUpdateEvent", payload)
	}
	if event.Status.State != TaskStateInputReq {
		t.Fatalf("state = %s, want input-required", event.Status.State)
	}

	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"input-required"`) {
		t.Fatalf("wire spelling not hyphenated: %s", raw)
	}
}

func TestWebhookPayloadDefaultTimestamp(t *testing.T) {
	payload := NewWebhookPayload("task_4", "ctx_4", adcp.TaskStatusFailed, "", nil, "")

	task, ok := payload.(*Task)
	if !ok {
		t.Fatalf("failed status produced %T, want *Task", payload)
	}
	if task.Status.Timestamp == "" {
		t.Fatal("timestamp not defaulted")
	}
	if len(task.Artifacts) != 0 {
		t.Fatalf("empty result produced %d artifacts", len(task.Artifacts))
	}
}

func TestPartJSONRoundTrip(t *testing.T) {
	parts := []Part{
		NewTextPart("hello"),
		NewDataPart(map[string]any{"k": "v"}),
	}

	raw, err := json.Marshal(parts)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded []Part
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded[0].Kind != PartKindText || decoded[0].Text != "hello" {
		t.Fatalf("text part mangled: %+v", decoded[0])
	}
	if decoded[1].Kind != PartKindData || decoded[1].Data["k"] != "v" {
		t.Fatalf("data part mangled: %+v", decoded[1])
	}

	for _, part := range decoded {
		if err := part.Validate(); err != nil {
			t.Fatalf("round-tripped part invalid: %v", err)
		}
	}
}

func TestPartValidate(t *testing.T) {
	bad := []Part{
		{Kind: PartKindText},
		{Kind: PartKindData},
		{Kind: PartKindFile},
		{Kind: "audio"},
	}

	for _, part := range bad {
		if err := part.Validate(); err == nil {
			t.Fatalf("part %+v passed validation", part)
		}
	}
}
