package a2a

import (
	"time"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
)

/*
NewWebhookPayload builds the task-protocol object an agent delivers for a
task snapshot. Terminal statuses return a *Task carrying the result as an
artifact; intermediate statuses return a *TaskStatusUpdateEvent carrying it
inside status.message, per the protocol's rule that in-progress output is
reported as status messages.

An empty timestamp defaults to the current UTC time.
*/
func NewWebhookPayload(
	taskID string,
	contextID string,
	status adcp.TaskStatus,
	timestamp string,
	result map[string]any,
	message string,
) any {
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	var parts []Part
	if result != nil {
		parts = append(parts, NewDataPart(result))
	}
	if message != "" {
		parts = append(parts, NewTextPart(message))
	}

	if status.Terminal() {
		task := &Task{
			ID:        taskID,
			ContextID: contextID,
			Status: TaskStatus{
				State:     StateForStatus(status),
				Timestamp: timestamp,
			},
			Artifacts: []Artifact{},
		}
		if len(parts) > 0 {
			task.AddArtifact(NewArtifact(taskID+"_result", parts...))
		}
		return task
	}

	taskStatus := TaskStatus{
		State:     StateForStatus(status),
		Timestamp: timestamp,
	}
	if len(parts) > 0 {
		taskStatus.Message = NewMessage(taskID+"_msg", "agent", parts...)
	}

	return &TaskStatusUpdateEvent{
		TaskID:    taskID,
		ContextID: contextID,
		Status:    taskStatus,
		Final:     false,
	}
}

// StateForStatus maps a canonical status to its wire spelling. Only the
// needs-input state differs: underscore internally, hyphen on the wire.
func StateForStatus(status adcp.TaskStatus) TaskState {
	if status == adcp.TaskStatusNeedsInput {
		return TaskStateInputReq
	}
	return TaskState(status)
}
