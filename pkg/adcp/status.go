package adcp

/*
TaskStatus enumerates the mutually-exclusive canonical states a task may be
in, independent of which transport reported them. The needs-input state uses
the underscore spelling internally; each transport maps its own spelling at
the boundary.
*/
type TaskStatus string

const (
	TaskStatusSubmitted  TaskStatus = "submitted"
	TaskStatusWorking    TaskStatus = "working"
	TaskStatusNeedsInput TaskStatus = "input_required"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Terminal reports whether the status is a final state for the task.
func (status TaskStatus) Terminal() bool {
	return status == TaskStatusCompleted || status == TaskStatusFailed
}

/*
Transport identifies which wire convention delivered a payload: the MCP-style
HTTP/dict convention or the task-protocol (task/artifact) convention.
*/
type Transport string

const (
	TransportMCP Transport = "mcp"
	TransportA2A Transport = "a2a"
)
