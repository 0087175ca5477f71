package a2a

import "encoding/json"

/*
TaskState enumerates the mutually-exclusive states a task may be in on the
wire. The needs-input state is hyphenated here; the canonical model uses the
underscore spelling.
*/
type TaskState string

const (
	TaskStateSubmitted TaskState = "submitted"
	TaskStateWorking   TaskState = "working"
	TaskStateInputReq  TaskState = "input-required"
	TaskStateCompleted TaskState = "completed"
	TaskStateFailed    TaskState = "failed"
)

/*
Task is the task-protocol object an agent delivers for terminal statuses.
Results live in the artifacts list; the status message only carries
human-readable progress text.
*/
type Task struct {
	ID        string         `json:"id"`
	ContextID string         `json:"context_id,omitempty"`
	Status    TaskStatus     `json:"status"`
	Artifacts []Artifact     `json:"artifacts,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewTaskFromRequest(body []byte) (*Task, error) {
	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (task *Task) AddArtifact(artifact Artifact) {
	task.Artifacts = append(task.Artifacts, artifact)
}

type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
}

/*
TaskStatusUpdateEvent is sent when the agent wishes to inform the client of a
status transition. Intermediate statuses deliver their payload inside
Status.Message rather than as artifacts.
*/
type TaskStatusUpdateEvent struct {
	TaskID    string         `json:"task_id"`
	ContextID string         `json:"context_id,omitempty"`
	Status    TaskStatus     `json:"status"`
	Final     bool           `json:"final"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Task converts the event into the common Task shape so both terminal and
// intermediate deliveries flow through one extraction path.
func (event *TaskStatusUpdateEvent) Task() *Task {
	return &Task{
		ID:        event.TaskID,
		ContextID: event.ContextID,
		Status:    event.Status,
	}
}
